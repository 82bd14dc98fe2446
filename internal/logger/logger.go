// Package logger builds the structured JSON logger shared by the API, console and worker binaries.
package logger

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// New returns a JSON slog.Logger writing one object per line to w.
// The "time" attribute is renamed to "ts" and rendered in loc, matching the request log lines.
func New(w io.Writer, loc *time.Location, component string) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	if loc == nil {
		loc = time.UTC
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.String("ts", a.Value.Time().In(loc).Format(time.RFC3339Nano))
			}
			return a
		},
	})
	l := slog.New(h)
	if component != "" {
		l = l.With("component", component)
	}
	return l
}

// Discard returns a logger that drops everything. Handy for tests and optional wiring.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
