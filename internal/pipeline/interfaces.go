package pipeline

import (
	"context"

	"github.com/kurochkinivan/port_assigner/internal/domain"
	"github.com/kurochkinivan/port_assigner/internal/report"
)

type GroupsSource interface {
	LoadGroups(ctx context.Context, rep *report.Report) ([]*domain.AssignmentGroup, error)
}

type PropertiesSource interface {
	LoadProperties(ctx context.Context, rep *report.Report) ([]*domain.Device, error)
}

type ResultSaver interface {
	SaveResult(ctx context.Context, table *domain.ResultTable) error
}

type SlotsSaver interface {
	DeleteSlots(ctx context.Context) error
	SaveSlots(ctx context.Context, slots ...domain.Slot) error
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
