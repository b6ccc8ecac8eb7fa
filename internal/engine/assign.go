package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/kurochkinivan/port_assigner/internal/domain"
	"github.com/kurochkinivan/port_assigner/internal/report"
)

var (
	ErrSlotTaken      = errors.New("port slot already taken")
	ErrPortOutOfRange = errors.New("port slot out of range")
)

// CapacityError means a rack holds more devices than its switches have ports.
type CapacityError struct {
	Requested int
	Capacity  int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%d devices requested, switches provide %d ports", e.Requested, e.Capacity)
}

// Assign lays the devices of one group out over its switches. Access points
// fill from port 1 upwards, every other category from port 12 downwards.
func Assign(g *domain.AssignmentGroup) ([]*domain.SwitchAssignment, error) {
	countSw := len(g.Switches)
	aps := g.APs
	others := g.PortDevices()

	capacity := countSw * domain.PortsPerSwitch
	if requested := len(aps) + len(others); requested > capacity {
		return nil, &CapacityError{Requested: requested, Capacity: capacity}
	}

	switches := make([]*domain.SwitchAssignment, countSw)
	for i, sw := range g.Switches {
		switches[i] = &domain.SwitchAssignment{ID: i + 1, Switch: sw}
	}

	for i, ap := range aps {
		sw, port := AscendingSlot(countSw, i+1)
		if err := place(switches, sw, port, ap); err != nil {
			return nil, err
		}
	}

	slices.Reverse(others)
	for i, d := range others {
		sw, port := DescendingSlot(countSw, i+1)
		if err := place(switches, sw, port, d); err != nil {
			return nil, err
		}
	}

	return switches, nil
}

// AscendingSlot returns the switch and port of the i-th (1-based) access point:
// port 1 of every switch first, then port 2, and so on. Without switches there
// is no slot and (0, 0) is returned.
func AscendingSlot(countSw, i int) (sw, port int) {
	if countSw < 1 {
		return 0, 0
	}

	sw = (i-1)%countSw + 1
	port = (i + countSw - 1) / countSw
	return sw, port
}

// DescendingSlot returns the switch and port of the i-th (1-based) device of the
// reversed non-AP list: port 12 of every switch from the last switch down to
// the first, then port 11, and so on. Like AscendingSlot it returns (0, 0)
// without switches.
func DescendingSlot(countSw, i int) (sw, port int) {
	if countSw < 1 {
		return 0, 0
	}

	q := i / countSw
	r := i % countSw

	if countSw == 1 {
		sw = 1
	} else {
		sw = countSw - r + 1
		if sw > countSw {
			sw -= countSw
		}
	}

	if sw == 1 {
		q--
	}

	return sw, domain.PortsPerSwitch - q
}

func place(switches []*domain.SwitchAssignment, sw, port int, d *domain.Device) error {
	if sw < 1 || sw > len(switches) || port < 1 || port > domain.PortsPerSwitch {
		return fmt.Errorf("%w: device %q to switch %d port %d", ErrPortOutOfRange, d.DeviceNumber, sw, port)
	}

	slot := &switches[sw-1].Ports[port-1]
	if *slot != nil {
		return fmt.Errorf("%w: device %q to switch %d port %d held by %q",
			ErrSlotTaken, d.DeviceNumber, sw, port, (*slot).DeviceNumber)
	}

	*slot = d

	return nil
}

// AssignAll assigns every group. A rack that cannot be assigned is reported
// and left out of the result; the remaining racks are still assigned.
func (e *Engine) AssignAll(ctx context.Context, groups []*domain.AssignmentGroup) []*domain.RackTable {
	done := e.step(ctx, "assign ports")
	defer done()

	racks := make([]*domain.RackTable, 0, len(groups))

	for _, g := range groups {
		switches, err := Assign(g)

		var capErr *CapacityError
		switch {
		case err == nil:
			racks = append(racks, &domain.RackTable{
				RackName: g.RackName,
				Floor:    g.Floor,
				Switches: switches,
			})

		case errors.As(err, &capErr):
			e.rep.Soft(ctx, report.KindCapacityExceeded, "devices exceed switch capacity, rack skipped",
				slog.String("rack", g.RackName),
				slog.String("floor", g.Floor),
				slog.Int("requested", capErr.Requested),
				slog.Int("capacity", capErr.Capacity),
			)

		default:
			e.rep.Soft(ctx, report.KindPortCollision, "port layout is inconsistent, rack skipped",
				slog.String("rack", g.RackName),
				slog.String("floor", g.Floor),
				slog.String("err", err.Error()),
			)
		}
	}

	return racks
}
