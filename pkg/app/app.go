// Package app serves the page window calculator over HTTP.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/sgaunet/pagewindow/pkg/config"
	"github.com/sgaunet/pagewindow/pkg/health"
	"github.com/sgaunet/pagewindow/pkg/window"
)

const readHeaderTimeout = 5 * time.Second

// App is the HTTP front of the window calculator.
type App struct {
	cfg    config.Config
	router *mux.Router
	srv    *http.Server
	health *health.Tracker
	log    *slog.Logger
}

// NewApp creates the app and its routes. The server is not started.
func NewApp(cfg config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	s := &App{
		cfg:    cfg,
		router: mux.NewRouter().StrictSlash(true),
		health: health.NewTracker(logger),
		log:    logger,
		srv: &http.Server{
			Addr:              cfg.Listen,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
	s.initRouter()
	return s
}

// Router returns the HTTP handler of the app.
func (s *App) Router() http.Handler {
	return s.router
}

// Health returns the readiness tracker of the app.
func (s *App) Health() *health.Tracker {
	return s.health
}

// Start listens on the configured address and serves until StopServer is called
// or the listener fails. It returns nil after a graceful stop.
func (s *App) Start(ctx context.Context) error {
	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.srv.Addr, err)
	}
	return s.Serve(ln)
}

// Serve serves requests on ln. See Start.
func (s *App) Serve(ln net.Listener) error {
	s.log.Info("listen", slog.String("addr", ln.Addr().String()))
	s.health.MarkReady()

	err := s.srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("http server stopped: %w", err)
}

// StopServer marks the app as draining and shuts the server down gracefully.
func (s *App) StopServer(ctx context.Context) error {
	s.health.MarkDraining()
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	return nil
}

// defaults returns the settings applied to requests omitting a parameter.
func (s *App) defaults() WindowDefaults {
	strategy := s.cfg.Strategy()
	if strategy == "" {
		strategy = window.DefaultStrategy
	}
	size := s.cfg.Window.Size
	if size == 0 {
		size = window.DefaultSize
	}
	pageSize := s.cfg.PageSize
	if pageSize == 0 {
		pageSize = config.DefaultPageSize
	}
	return WindowDefaults{PageSize: pageSize, Size: size, Strategy: strategy}
}
