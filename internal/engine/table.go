package engine

import "github.com/kurochkinivan/port_assigner/internal/domain"

// BuildTable groups rack tables by rack name, in first-seen order. Switches
// appended to an already seen rack continue its switch numbering.
func BuildTable(racks []*domain.RackTable) *domain.ResultTable {
	table := &domain.ResultTable{}
	byName := make(map[string]*domain.RackTable, len(racks))

	for _, rack := range racks {
		if existing, ok := byName[rack.RackName]; ok {
			for _, sw := range rack.Switches {
				sw.ID = len(existing.Switches) + 1
				existing.Switches = append(existing.Switches, sw)
			}
			continue
		}

		merged := &domain.RackTable{
			RackName: rack.RackName,
			Floor:    rack.Floor,
			Switches: append([]*domain.SwitchAssignment(nil), rack.Switches...),
		}
		byName[rack.RackName] = merged
		table.Racks = append(table.Racks, merged)
	}

	return table
}
