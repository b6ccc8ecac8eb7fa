package tsv

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/port_assigner/internal/domain"
)

type Writer struct {
	log  *slog.Logger
	path string
}

func NewWriter(log *slog.Logger, path string) *Writer {
	return &Writer{
		log:  log,
		path: path,
	}
}

func (w *Writer) SaveResult(ctx context.Context, table *domain.ResultTable) (err error) {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", w.path, err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	cw := csv.NewWriter(f)
	cw.Comma = '\t'

	enc := csvutil.NewEncoder(cw)
	enc.AutoHeader = false

	if err := enc.EncodeHeader(domain.Slot{}); err != nil {
		return fmt.Errorf("failed to encode header: %w", err)
	}

	slots := table.Slots()
	for _, slot := range slots {
		if err := enc.Encode(slot); err != nil {
			return fmt.Errorf("failed to encode slot %s/%d/%d: %w", slot.Rack, slot.SwitchID, slot.Port, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush %q: %w", w.path, err)
	}

	w.log.DebugContext(ctx, "slot records written",
		slog.String("path", w.path),
		slog.Int("records", len(slots)),
	)

	return nil
}
