package cli

import (
	"io"
	"log/slog"
)

// NewLogger initializes the logger for the given level name.
// Unknown levels fall back to info; debug also records the source location.
func NewLogger(debugLevel string, w io.Writer) *slog.Logger {
	handlerOptions := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	switch debugLevel {
	case "debug":
		handlerOptions.Level = slog.LevelDebug
		handlerOptions.AddSource = true
	case "info":
		handlerOptions.Level = slog.LevelInfo
	case "warn":
		handlerOptions.Level = slog.LevelWarn
	case "error":
		handlerOptions.Level = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(w, handlerOptions))
}
