package debug

import (
	"io"
	"log/slog"
)

// NewLogger returns a slog logger writing debug-level text records to w when verbose,
// and a logger that discards everything otherwise.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}))
}
