package engine_test

import (
	"testing"

	"github.com/kurochkinivan/port_assigner/internal/domain"
	"github.com/kurochkinivan/port_assigner/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTable(t *testing.T) {
	t.Parallel()

	sw := func(id int, number string) *domain.SwitchAssignment {
		return &domain.SwitchAssignment{ID: id, Switch: domain.NewDevice(number)}
	}

	table := engine.BuildTable([]*domain.RackTable{
		{RackName: "R2", Switches: []*domain.SwitchAssignment{sw(1, "SW-A")}},
		{RackName: "R1", Switches: []*domain.SwitchAssignment{sw(1, "SW-B"), sw(2, "SW-C")}},
		{RackName: "R2", Switches: []*domain.SwitchAssignment{sw(1, "SW-D")}},
	})

	require.Len(t, table.Racks, 2)
	assert.Equal(t, "R2", table.Racks[0].RackName)
	assert.Equal(t, "R1", table.Racks[1].RackName)
	assert.Len(t, table.Racks[0].Switches, 2)
	assert.Equal(t, 4, table.SwitchCount())

	rows := table.Rows()
	require.Len(t, rows, 4*domain.PortsPerSwitch)

	assert.Equal(t, "R2", rows[0].RackName)
	assert.Equal(t, "SW-A", rows[0].Switch.DeviceNumber)
	assert.Equal(t, 1, rows[0].Port)
	assert.Equal(t, 12, rows[11].Port)
	assert.Equal(t, "SW-D", rows[12].Switch.DeviceNumber)
	assert.Equal(t, "R1", rows[24].RackName)
	assert.Equal(t, 2, rows[47].SwitchID)
	assert.Nil(t, rows[47].Occupant)
}

func TestBuildTable_RenumbersMergedSwitches(t *testing.T) {
	t.Parallel()

	sw := func(id int, number string) *domain.SwitchAssignment {
		return &domain.SwitchAssignment{ID: id, Switch: domain.NewDevice(number)}
	}

	table := engine.BuildTable([]*domain.RackTable{
		{RackName: "R", Switches: []*domain.SwitchAssignment{sw(1, "SW-A"), sw(2, "SW-B")}},
		{RackName: "R", Switches: []*domain.SwitchAssignment{sw(1, "SW-C")}},
	})

	require.Len(t, table.Racks, 1)

	var ids []int
	for _, s := range table.Racks[0].Switches {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []int{1, 2, 3}, ids)
	assert.Equal(t, "SW-C", table.Racks[0].Switches[2].Switch.DeviceNumber)
}
