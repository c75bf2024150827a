// Package cli wires the pagewindow commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/sgaunet/pagewindow/pkg/config"
)

// NewRootCmd creates the root command with the serve and compute subcommands.
func NewRootCmd(version string) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "pagewindow",
		Short: "Compute the page numbers a paginated listing displays",
		Long: `pagewindow computes the window of page numbers shown around the current page
of a paginated listing, using either the "section" or the "center" strategy.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().StringVarP(&configFile, "config", "f", "", "configuration file (YAML)")

	loadConfig := func() (config.Config, error) {
		return config.Load(configFile)
	}

	cmd.AddCommand(newServeCmd(loadConfig))
	cmd.AddCommand(newComputeCmd(loadConfig))

	return cmd
}
