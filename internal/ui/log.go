package ui

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger for diagnostics. Debug output appears
// only when verbose is set.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
