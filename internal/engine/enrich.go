package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kurochkinivan/port_assigner/internal/domain"
	"github.com/kurochkinivan/port_assigner/internal/report"
)

// Enrich copies registry metadata into every device referenced by groups and
// derives host names. It returns how many devices were enriched.
func (e *Engine) Enrich(ctx context.Context, groups []*domain.AssignmentGroup, registry *Registry) int {
	done := e.step(ctx, "enrich devices")
	defer done()

	positions := rosettePositions(registry)

	enriched := 0
	for _, g := range groups {
		for _, d := range g.Devices() {
			src, ok := registry.Lookup(d.DeviceNumber)
			if !ok {
				e.rep.Soft(ctx, report.KindMissingDevice, "device not found in property data",
					slog.String("device_number", d.DeviceNumber),
					slog.String("floor", g.Floor),
					slog.String("rack", g.RackName),
				)
				continue
			}

			d.CopyMetadata(src)
			d.HostName = hostName(src, positions)
			enriched++
		}
	}

	return enriched
}

// rosettePositions numbers devices sharing a rosette from 1, in registry order.
func rosettePositions(registry *Registry) map[string]int {
	counters := make(map[string]int)
	positions := make(map[string]int)

	for _, d := range registry.All() {
		if d.Rosette == "" {
			continue
		}

		counters[d.Rosette]++
		positions[d.DeviceNumber] = counters[d.Rosette]
	}

	return positions
}

func hostName(src *domain.Device, positions map[string]int) string {
	if src.Rosette == "" {
		return src.HostName
	}
	return fmt.Sprintf("%s%02d", src.Rosette, positions[src.DeviceNumber])
}
