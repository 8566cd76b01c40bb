package cli

import (
	"io"
	"log/slog"
)

// NewLogger builds the diagnostic logger. Diagnostics go to w (stderr in
// the binary) so that stdout carries results only.
func NewLogger(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
