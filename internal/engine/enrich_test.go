package engine_test

import (
	"log/slog"
	"testing"

	"github.com/kurochkinivan/port_assigner/internal/domain"
	"github.com/kurochkinivan/port_assigner/internal/engine"
	"github.com/kurochkinivan/port_assigner/internal/report"
	"github.com/stretchr/testify/assert"
)

func TestEngine_Enrich(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)
	rep := report.New(log)

	registry := engine.NewRegistry([]*domain.Device{
		{DeviceNumber: "D100", Floor: "3", RackName: "R3", RoomName: "301", DeviceName: "printer", Rosette: "B2"},
		{DeviceNumber: "SW1", Floor: "3", RackName: "R3", ModelName: "C9200", HostName: "sw-r3-01"},
		{DeviceNumber: "D150", Rosette: "A1"},
		{DeviceNumber: "D200", Floor: "3", PortName: "eth0", CableName: "Cat6", ConnectorName: "RJ45", Rosette: "B2", HostName: "ignored"},
	})

	group := &domain.AssignmentGroup{
		GroupKey: "g1",
		Floor:    "3",
		RackName: "R3",
		Switches: devices("SW1"),
		Printers: devices("D200"),
		Others:   devices("D100"),
	}

	enriched := engine.New(log, rep).Enrich(t.Context(), []*domain.AssignmentGroup{group}, registry)

	assert.Equal(t, 3, enriched)
	assert.True(t, rep.Passed())

	assert.Equal(t, &domain.Device{
		DeviceNumber: "D100",
		Floor:        "3",
		RackName:     "R3",
		RoomName:     "301",
		DeviceName:   "printer",
		Rosette:      "B2",
		HostName:     "B201",
	}, group.Others[0])

	assert.Equal(t, "B202", group.Printers[0].HostName)
	assert.Equal(t, "RJ45", group.Printers[0].ConnectorName)
	assert.Equal(t, "sw-r3-01", group.Switches[0].HostName)
	assert.Equal(t, "C9200", group.Switches[0].ModelName)
}

func TestEngine_Enrich_MissingDevice(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)
	rep := report.New(log)

	registry := engine.NewRegistry([]*domain.Device{
		{DeviceNumber: "SW1", HostName: "sw1"},
		{DeviceNumber: "AP1", HostName: "ap1"},
	})

	groups := []*domain.AssignmentGroup{
		{GroupKey: "g1", Switches: devices("SW1"), APs: devices("X1")},
		{GroupKey: "g2", APs: devices("AP1")},
	}

	enriched := engine.New(log, rep).Enrich(t.Context(), groups, registry)

	assert.Equal(t, 2, enriched)
	assert.False(t, rep.Passed())
	assert.Equal(t, 1, rep.Count(report.KindMissingDevice))

	assert.Equal(t, &domain.Device{DeviceNumber: "X1"}, groups[0].APs[0], "missing device keeps its defaults")
	assert.Equal(t, "ap1", groups[1].APs[0].HostName)
}
