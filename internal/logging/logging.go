// Package logging builds the slog logger used by the commands.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// ParseLevel accepts debug, info, warn/warning and error in any case.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// New returns a colored tint logger when w is a terminal and a plain text
// logger otherwise. Records are also written as plain text to every file.
func New(w io.Writer, level slog.Leveler, files ...io.Writer) *slog.Logger {
	var console slog.Handler
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		console = newTerminalHandler(w, level)
	} else {
		console = newTextHandler(w, level)
	}

	if len(files) == 0 {
		return slog.New(console)
	}

	handlers := fanout{console}
	for _, f := range files {
		handlers = append(handlers, newTextHandler(f, level))
	}

	return slog.New(handlers)
}

func newTextHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				return slog.String(a.Key, strings.ToLower(a.Value.String()))
			}
			return a
		},
	})
}

func newTerminalHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		NoColor:    runtime.GOOS == "windows",
		Level:      level,
		TimeFormat: time.TimeOnly,
	})
}

// fanout hands every record to all of its handlers.
type fanout []slog.Handler

func (h fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, sh := range h {
		if sh.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, sh := range h {
		if sh.Enabled(ctx, r.Level) {
			errs = append(errs, sh.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (h fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, 0, len(h))
	for _, sh := range h {
		out = append(out, sh.WithAttrs(attrs))
	}
	return out
}

func (h fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, 0, len(h))
	for _, sh := range h {
		out = append(out, sh.WithGroup(name))
	}
	return out
}
