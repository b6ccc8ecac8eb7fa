package columns

import (
	"context"
	"log/slog"

	"github.com/kurochkinivan/port_assigner/internal/domain"
	"github.com/kurochkinivan/port_assigner/internal/report"
)

type CellKind int

const (
	CellBlank CellKind = iota
	CellText
	CellNumber
	CellUnsupported
)

func (k CellKind) String() string {
	switch k {
	case CellBlank:
		return "blank"
	case CellText:
		return "text"
	case CellNumber:
		return "number"
	default:
		return "unsupported"
	}
}

// Cell is a typed spreadsheet cell. Numbers carry their decimal text in Value.
type Cell struct {
	Kind  CellKind
	Value string
}

// Row is one data row of a dataset, cells keyed by 1-based column.
type Row struct {
	Sheet  string
	Number int
	Cells  map[int]Cell
}

func (r Row) blank() bool {
	for _, c := range r.Cells {
		if c.Kind != CellBlank {
			return false
		}
	}
	return true
}

// Field is a binding whose name was found in a field table.
type Field[T any] struct {
	Binding
	set Setter[T]
}

// Resolve looks every binding up once. Unknown names are reported and dropped.
func Resolve[T any](ctx context.Context, rep *report.Report, bindings []Binding, table map[string]Setter[T]) []Field[T] {
	fields := make([]Field[T], 0, len(bindings))

	for _, b := range bindings {
		set, ok := table[b.Field]
		if !ok {
			rep.Soft(ctx, report.KindUnmappedField, "field is not mapped to any record property",
				slog.String("field", b.Field),
				slog.Int("column", b.Column),
			)
			continue
		}

		fields = append(fields, Field[T]{Binding: b, set: set})
	}

	return fields
}

// Decode builds one record per row. Rows with every bound cell blank are skipped.
func Decode[T any](ctx context.Context, log *slog.Logger, rep *report.Report, rows []Row, fields []Field[T]) []*T {
	records := make([]*T, 0, len(rows))

	for _, row := range rows {
		if row.blank() {
			log.DebugContext(ctx, "row is blank, skipping",
				slog.String("sheet", row.Sheet),
				slog.Int("row", row.Number),
			)
			continue
		}

		var record T

		for _, f := range fields {
			cell := row.Cells[f.Column]

			switch cell.Kind {
			case CellText, CellNumber:
				f.set(&record, cell.Value)

			case CellBlank:
				log.DebugContext(ctx, "cell is blank",
					slog.String("sheet", row.Sheet),
					slog.Int("row", row.Number),
					slog.String("field", f.Field),
				)

			default:
				rep.Soft(ctx, report.KindUnsupportedCell, "cell is not text, number or blank",
					slog.String("sheet", row.Sheet),
					slog.Int("row", row.Number),
					slog.Int("column", f.Column),
					slog.String("field", f.Field),
				)
			}
		}

		records = append(records, &record)
	}

	return records
}

// OutputColumn is an output binding with its resolved getter.
type OutputColumn struct {
	OutputBinding
	get Getter
}

func (c OutputColumn) Value(row domain.SlotRow) string {
	return c.get(row)
}

// ResolveOutput looks every output binding up once. Unknown names are reported and dropped.
func ResolveOutput(ctx context.Context, rep *report.Report, bindings []OutputBinding, table map[string]Getter) []OutputColumn {
	cols := make([]OutputColumn, 0, len(bindings))

	for _, b := range bindings {
		get, ok := table[b.Field]
		if !ok {
			rep.Soft(ctx, report.KindUnmappedField, "output field is not mapped to any device property",
				slog.String("field", b.Field),
				slog.Int("column", b.Column),
			)
			continue
		}

		cols = append(cols, OutputColumn{OutputBinding: b, get: get})
	}

	return cols
}
