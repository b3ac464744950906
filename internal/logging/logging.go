// Package logging sets up the structured logger. A TUI owns the terminal,
// so records go to a file as JSON lines or nowhere at all.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Setup opens path for appending and returns a JSON logger writing to it.
// An empty path returns a logger that discards everything. The returned
// closer must be closed on exit.
func Setup(path string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: level,
	}))
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
