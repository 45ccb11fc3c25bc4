package logging

import (
	"io"
	"log/slog"
)

// NewDiscardLogger returns a logger that drops everything. Handy in tests
// and as a default when no logger is injected.
func NewDiscardLogger() Logger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
