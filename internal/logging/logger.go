// Package logging builds the CLI's diagnostic logger. Library packages do
// not log; only cmd/md2adf creates loggers.
package logging

import (
	"io"
	"log/slog"
)

// New creates a text logger writing to w at the given level.
// It standardizes common keys (e.g., "error" -> "err") and drops the
// timestamp, which adds nothing to short-lived CLI runs.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			// Standardize 'error' key to 'err'
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
