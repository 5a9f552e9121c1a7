package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// New creates the structured production logger
func New() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// NewDevelopment creates a more verbose logger for development
func NewDevelopment() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// NewUpstreamErrorLog opens the append-only diagnostic log for upstream
// failures. Transport detail goes here, never into client responses.
// The returned closer must be called on shutdown.
func NewUpstreamErrorLog(path string) (*slog.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open upstream error log %s: %w", path, err)
	}

	log := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	return log, f, nil
}
