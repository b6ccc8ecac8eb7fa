package pipeline_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/kurochkinivan/port_assigner/internal/domain"
	"github.com/kurochkinivan/port_assigner/internal/pipeline"
	"github.com/kurochkinivan/port_assigner/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func group() *domain.AssignmentGroup {
	return &domain.AssignmentGroup{
		GroupKey: "g1",
		Floor:    "2",
		RackName: "R1",
		Switches: []*domain.Device{domain.NewDevice("S1")},
		APs:      []*domain.Device{domain.NewDevice("A1"), domain.NewDevice("A2")},
		Printers: []*domain.Device{domain.NewDevice("P1")},
	}
}

func properties() []*domain.Device {
	return []*domain.Device{
		{DeviceNumber: "S1", Floor: "2", RackName: "R1", HostName: "sw-r1-01"},
		{DeviceNumber: "A1", Floor: "2", ModelName: "AP-505"},
		{DeviceNumber: "A2", Floor: "2", ModelName: "AP-505"},
		{DeviceNumber: "P1", Floor: "2", ModelName: "LBP-221", Rosette: "B2"},
	}
}

func TestPipeline_Run_HappyPath(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)

	mockGroups := NewMockGroupsSource(t)
	mockProps := NewMockPropertiesSource(t)
	mockSaver := NewMockResultSaver(t)

	mockGroups.EXPECT().LoadGroups(mock.Anything, mock.Anything).Return([]*domain.AssignmentGroup{group()}, nil)
	mockProps.EXPECT().LoadProperties(mock.Anything, mock.Anything).Return(properties(), nil)

	var saved *domain.ResultTable
	mockSaver.EXPECT().SaveResult(mock.Anything, mock.Anything).
		Run(func(_ context.Context, table *domain.ResultTable) { saved = table }).
		Return(nil)

	rep, err := pipeline.New(log, mockGroups, mockProps, mockSaver).Run(t.Context())
	require.NoError(t, err)
	assert.True(t, rep.Passed())

	require.NotNil(t, saved)
	require.Len(t, saved.Racks, 1)
	require.Len(t, saved.Racks[0].Switches, 1)

	sw := saved.Racks[0].Switches[0]
	assert.Equal(t, "sw-r1-01", sw.Switch.HostName)
	assert.Equal(t, "A1", sw.Ports[0].DeviceNumber)
	assert.Equal(t, "A2", sw.Ports[1].DeviceNumber)
	require.NotNil(t, sw.Ports[11])
	assert.Equal(t, "P1", sw.Ports[11].DeviceNumber)
	assert.Equal(t, "B201", sw.Ports[11].HostName)
	assert.Equal(t, "LBP-221", sw.Ports[11].ModelName)
	assert.Equal(t, 3, sw.Occupied())
}

func TestPipeline_Run_SoftIssuesStillSave(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)

	g := group()
	g.Others = []*domain.Device{domain.NewDevice("X1")}

	mockGroups := NewMockGroupsSource(t)
	mockProps := NewMockPropertiesSource(t)
	mockSaver := NewMockResultSaver(t)

	mockGroups.EXPECT().LoadGroups(mock.Anything, mock.Anything).Return([]*domain.AssignmentGroup{g}, nil)
	mockProps.EXPECT().LoadProperties(mock.Anything, mock.Anything).Return(properties(), nil)
	mockSaver.EXPECT().SaveResult(mock.Anything, mock.Anything).Return(nil)

	rep, err := pipeline.New(log, mockGroups, mockProps, mockSaver).Run(t.Context())
	require.NoError(t, err)
	assert.False(t, rep.Passed())
	assert.Equal(t, 1, rep.Count(report.KindMissingDevice))
}

func TestPipeline_Run_SourceError(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)
	errOpen := errors.New("no such file")

	mockGroups := NewMockGroupsSource(t)
	mockProps := NewMockPropertiesSource(t)
	mockSaver := NewMockResultSaver(t)

	mockGroups.EXPECT().LoadGroups(mock.Anything, mock.Anything).Return(nil, errOpen)

	_, err := pipeline.New(log, mockGroups, mockProps, mockSaver).Run(t.Context())
	require.ErrorIs(t, err, errOpen)
	assert.Contains(t, err.Error(), "failed to load assignment groups")
}

func TestPipeline_Run_SaveError(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)
	errDisk := errors.New("disk full")

	mockGroups := NewMockGroupsSource(t)
	mockProps := NewMockPropertiesSource(t)
	mockSaver := NewMockResultSaver(t)

	mockGroups.EXPECT().LoadGroups(mock.Anything, mock.Anything).Return([]*domain.AssignmentGroup{group()}, nil)
	mockProps.EXPECT().LoadProperties(mock.Anything, mock.Anything).Return(properties(), nil)
	mockSaver.EXPECT().SaveResult(mock.Anything, mock.Anything).Return(errDisk)

	_, err := pipeline.New(log, mockGroups, mockProps, mockSaver).Run(t.Context())
	require.ErrorIs(t, err, errDisk)
}

func TestPipeline_Run_WithReport(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)

	rep := report.New(log)
	rep.Soft(t.Context(), report.KindUnmappedField, "output field is not mapped")

	mockGroups := NewMockGroupsSource(t)
	mockProps := NewMockPropertiesSource(t)
	mockSaver := NewMockResultSaver(t)

	mockGroups.EXPECT().LoadGroups(mock.Anything, rep).Return([]*domain.AssignmentGroup{group()}, nil)
	mockProps.EXPECT().LoadProperties(mock.Anything, rep).Return(properties(), nil)
	mockSaver.EXPECT().SaveResult(mock.Anything, mock.Anything).Return(nil)

	got, err := pipeline.New(log, mockGroups, mockProps, mockSaver).WithReport(rep).Run(t.Context())
	require.NoError(t, err)
	assert.Same(t, rep, got)
	assert.False(t, got.Passed())
}
