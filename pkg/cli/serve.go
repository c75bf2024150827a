package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sgaunet/pagewindow/pkg/app"
	"github.com/sgaunet/pagewindow/pkg/config"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(loadConfig func() (config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the window calculator over HTTP",
		Example: `  # Serve with a configuration file
  pagewindow serve -f config.yaml

  # Query it
  curl 'http://localhost:8081/api/window?total=128&per_page=10&page=7&strategy=center'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			l := NewLogger(cfg.LogLevel, os.Stdout)

			ctx, cancelFunc := context.WithCancel(cmd.Context())
			defer cancelFunc()
			SetupCloseHandler(ctx, cancelFunc, l)

			return runServer(ctx, app.NewApp(cfg, l), l)
		},
	}
}

// runServer serves until ctx is done, then stops the server gracefully.
func runServer(ctx context.Context, s *app.App, l *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start(ctx)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	l.Info("stop the server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.StopServer(shutdownCtx); err != nil {
		return fmt.Errorf("error stopping the server: %w", err)
	}
	return <-errCh
}

// SetupCloseHandler cancels ctx on SIGINT or SIGTERM.
func SetupCloseHandler(ctx context.Context, cancelFunc context.CancelFunc, log *slog.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer signal.Stop(c)
		select {
		case s := <-c:
			log.Info("signal received", slog.String("signal", s.String()))
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}
