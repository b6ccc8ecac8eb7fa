package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kurochkinivan/port_assigner/internal/domain"
)

// DatabaseWriter replaces the stored result with the new one in a single
// transaction.
type DatabaseWriter struct {
	log        *slog.Logger
	slotsSaver SlotsSaver
	transactor Transactor
}

func NewDatabaseWriter(log *slog.Logger, slotsSaver SlotsSaver, transactor Transactor) *DatabaseWriter {
	return &DatabaseWriter{
		log:        log,
		slotsSaver: slotsSaver,
		transactor: transactor,
	}
}

func (w *DatabaseWriter) SaveResult(ctx context.Context, table *domain.ResultTable) error {
	slots := table.Slots()

	w.log.DebugContext(ctx, "saving result to database", slog.Int("slots", len(slots)))

	err := w.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		if err := w.slotsSaver.DeleteSlots(ctx); err != nil {
			return fmt.Errorf("failed to delete previous result: %w", err)
		}

		if len(slots) == 0 {
			return nil
		}

		if err := w.slotsSaver.SaveSlots(ctx, slots...); err != nil {
			return fmt.Errorf("failed to save slots: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	w.log.InfoContext(ctx, "result saved to database", slog.Int("slots", len(slots)))

	return nil
}
