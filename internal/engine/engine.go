// Package engine resolves assignment groups into switch port tables.
//
// Every step records recoverable problems in a report.Report and carries on,
// so a single run surfaces all problems of a batch.
package engine

import (
	"context"
	"log/slog"

	"github.com/kurochkinivan/port_assigner/internal/report"
)

type Engine struct {
	log *slog.Logger
	rep *report.Report
}

func New(log *slog.Logger, rep *report.Report) *Engine {
	return &Engine{
		log: log,
		rep: rep,
	}
}

// step logs the start of a step and returns a func that logs its outcome.
func (e *Engine) step(ctx context.Context, name string) func() bool {
	e.log.InfoContext(ctx, "step started", slog.String("step", name))
	mark := e.rep.Len()

	return func() bool {
		failed := e.rep.Since(mark)
		if failed == 0 {
			e.log.InfoContext(ctx, "step passed", slog.String("step", name))
			return true
		}

		e.log.ErrorContext(ctx, "step failed",
			slog.String("step", name),
			slog.Int("issues", failed),
		)
		return false
	}
}
