package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kurochkinivan/port_assigner/internal/columns"
	"github.com/kurochkinivan/port_assigner/internal/domain"
	"github.com/kurochkinivan/port_assigner/internal/report"
	"github.com/kurochkinivan/port_assigner/internal/sheet"
)

// Dataset locates one table inside a workbook.
type Dataset struct {
	Path     string
	Sheet    string
	DataRow  int
	Bindings []columns.Binding
}

// GroupsLoader reads the assignment dataset.
type GroupsLoader struct {
	log     *slog.Logger
	dataset Dataset
	nothing string
}

func NewGroupsLoader(log *slog.Logger, dataset Dataset, nothing string) *GroupsLoader {
	if nothing == "" {
		nothing = columns.DefaultNothing
	}

	return &GroupsLoader{
		log:     log,
		dataset: dataset,
		nothing: nothing,
	}
}

func (l *GroupsLoader) LoadGroups(ctx context.Context, rep *report.Report) ([]*domain.AssignmentGroup, error) {
	fields := columns.Resolve(ctx, rep, l.dataset.Bindings, columns.AssignmentFields)

	rows, err := readDataset(l.log, l.dataset)
	if err != nil {
		return nil, err
	}

	return columns.DecodeGroups(ctx, l.log, rep, rows, fields, l.nothing), nil
}

// PropertiesLoader reads the device property dataset.
type PropertiesLoader struct {
	log     *slog.Logger
	dataset Dataset
}

func NewPropertiesLoader(log *slog.Logger, dataset Dataset) *PropertiesLoader {
	return &PropertiesLoader{
		log:     log,
		dataset: dataset,
	}
}

func (l *PropertiesLoader) LoadProperties(ctx context.Context, rep *report.Report) ([]*domain.Device, error) {
	fields := columns.Resolve(ctx, rep, l.dataset.Bindings, columns.DeviceFields)

	rows, err := readDataset(l.log, l.dataset)
	if err != nil {
		return nil, err
	}

	return columns.Decode(ctx, l.log, rep, rows, fields), nil
}

func readDataset(log *slog.Logger, ds Dataset) (_ []columns.Row, err error) {
	wb, err := sheet.Open(ds.Path)
	if err != nil {
		return nil, err
	}
	defer func() { err = errors.Join(err, wb.Close()) }()

	rows, err := wb.ReadRows(ds.Sheet, ds.DataRow, ds.Bindings)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	log.Debug("dataset read",
		slog.String("path", ds.Path),
		slog.String("sheet", ds.Sheet),
		slog.Int("rows", len(rows)),
	)

	return rows, nil
}
