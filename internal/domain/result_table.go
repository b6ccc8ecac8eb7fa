package domain

// RackTable is the port table of one rack.
type RackTable struct {
	RackName string
	Floor    string
	Switches []*SwitchAssignment
}

// ResultTable is the output of one run: racks in first-seen order.
type ResultTable struct {
	Racks []*RackTable
}

// SlotRow is a single port slot of the result table.
type SlotRow struct {
	RackName string
	SwitchID int
	Switch   *Device
	Port     int
	Occupant *Device // nil for an empty slot
}

// Rows flattens the table in rack, switch, port order.
func (t *ResultTable) Rows() []SlotRow {
	var rows []SlotRow
	for _, rack := range t.Racks {
		for _, sw := range rack.Switches {
			for i, occupant := range sw.Ports {
				rows = append(rows, SlotRow{
					RackName: rack.RackName,
					SwitchID: sw.ID,
					Switch:   sw.Switch,
					Port:     i + 1,
					Occupant: occupant,
				})
			}
		}
	}
	return rows
}

// SwitchCount counts the switches over all racks.
func (t *ResultTable) SwitchCount() int {
	n := 0
	for _, rack := range t.Racks {
		n += len(rack.Switches)
	}
	return n
}
