package report

import (
	"context"
	"log/slog"
)

type Kind string

const (
	KindDuplicateDevice  Kind = "duplicate_device"
	KindDuplicateGroup   Kind = "duplicate_group"
	KindMissingKey       Kind = "missing_key"
	KindMissingDevice    Kind = "missing_device"
	KindCapacityExceeded Kind = "capacity_exceeded"
	KindPortCollision    Kind = "port_collision"
	KindUnmappedField    Kind = "unmapped_field"
	KindUnsupportedCell  Kind = "unsupported_cell"
	KindSentinelMisuse   Kind = "sentinel_misuse"
)

// Kinds lists every issue kind in reporting order.
var Kinds = []Kind{
	KindMissingKey,
	KindDuplicateGroup,
	KindDuplicateDevice,
	KindUnmappedField,
	KindUnsupportedCell,
	KindSentinelMisuse,
	KindMissingDevice,
	KindCapacityExceeded,
	KindPortCollision,
}

// Issue is a recoverable problem found during a run.
type Issue struct {
	Kind    Kind
	Message string
	Attrs   []slog.Attr
}

// Report accumulates soft errors of a run. A run passes when nothing was recorded.
type Report struct {
	log    *slog.Logger
	issues []Issue
}

func New(log *slog.Logger) *Report {
	return &Report{log: log}
}

// Soft logs the issue and records it. It never stops the run.
func (r *Report) Soft(ctx context.Context, kind Kind, msg string, attrs ...slog.Attr) {
	r.log.LogAttrs(ctx, slog.LevelError, msg, append([]slog.Attr{slog.String("kind", string(kind))}, attrs...)...)

	r.issues = append(r.issues, Issue{
		Kind:    kind,
		Message: msg,
		Attrs:   attrs,
	})
}

func (r *Report) Passed() bool {
	return len(r.issues) == 0
}

func (r *Report) Issues() []Issue {
	return r.issues
}

func (r *Report) Count(kind Kind) int {
	n := 0
	for _, issue := range r.issues {
		if issue.Kind == kind {
			n++
		}
	}
	return n
}

// Since returns how many issues were recorded after mark, a value previously
// returned by Len. Steps use it to log their own OK/NG summary.
func (r *Report) Since(mark int) int {
	return len(r.issues) - mark
}

func (r *Report) Len() int {
	return len(r.issues)
}
