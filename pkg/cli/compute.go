package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sgaunet/pagewindow/pkg/config"
	"github.com/sgaunet/pagewindow/pkg/dto"
	"github.com/sgaunet/pagewindow/pkg/window"
)

type computeOptions struct {
	total    int64
	perPage  int
	page     int
	size     int
	strategy string
	asJSON   bool
}

func newComputeCmd(loadConfig func() (config.Config, error)) *cobra.Command {
	var opts computeOptions

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute one page window",
		Long: `Compute prints the first and last page numbers of the window for one listing.
Flags left unset fall back to the configuration (pagesize, window.size, window.strategy).`,
		Example: `  # 128 items, 10 per page, page 7, centered window of 5 pages
  pagewindow compute --total 128 --per-page 10 --page 7 --strategy center

  # JSON output
  pagewindow compute --total 320 --per-page 25 --page 7 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			req, err := opts.request(cmd, cfg)
			if err != nil {
				return err
			}
			w, err := window.Compute(req)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSONResult(cmd.OutOrStdout(), dto.NewWindowResult(w, req))
			}
			return writeTextResult(cmd.OutOrStdout(), w)
		},
	}

	cmd.Flags().Int64Var(&opts.total, "total", 0, "total number of items (required)")
	cmd.Flags().IntVar(&opts.perPage, "per-page", 0, "items per page (default from config)")
	cmd.Flags().IntVar(&opts.page, "page", 1, "current page, clamped into the valid range")
	cmd.Flags().IntVar(&opts.size, "size", 0, "number of pages in the window (default from config)")
	cmd.Flags().StringVar(&opts.strategy, "strategy", "", "window strategy: center or section (default from config)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("total")

	return cmd
}

// request merges the flags that were set with the configuration.
func (o computeOptions) request(cmd *cobra.Command, cfg config.Config) (window.Request, error) {
	req := window.Request{
		TotalItems:   o.total,
		ItemsPerPage: cfg.PageSize,
		CurrentPage:  o.page,
		Size:         cfg.Window.Size,
		Strategy:     cfg.Strategy(),
	}
	if cmd.Flags().Changed("per-page") {
		req.ItemsPerPage = o.perPage
	}
	if cmd.Flags().Changed("size") {
		if o.size > window.MaxSize {
			return req, fmt.Errorf("%w: --size must be <= %d, got %d", window.ErrInvalidConfiguration, window.MaxSize, o.size)
		}
		req.Size = o.size
	}
	if cmd.Flags().Changed("strategy") {
		s, err := window.ParseStrategy(o.strategy)
		if err != nil {
			return req, err
		}
		req.Strategy = s
	}
	return req, nil
}

func writeTextResult(out io.Writer, w window.Window) error {
	if w.Empty() {
		_, err := fmt.Fprintln(out, "no pages")
		return err
	}
	pages := w.Pages()
	labels := make([]string, len(pages))
	for i, p := range pages {
		labels[i] = strconv.Itoa(p)
	}
	_, err := fmt.Fprintf(out, "begin=%d end=%d current=%d last=%d\npages: %s\n",
		w.Begin, w.End, w.Current, w.LastPage, strings.Join(labels, " "))
	return err
}

func writeJSONResult(out io.Writer, result dto.WindowResult) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}
