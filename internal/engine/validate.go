package engine

import (
	"context"
	"log/slog"

	"github.com/kurochkinivan/port_assigner/internal/domain"
	"github.com/kurochkinivan/port_assigner/internal/report"
)

// UniqueGroups drops groups without a key and groups whose key was already seen.
func (e *Engine) UniqueGroups(ctx context.Context, groups []*domain.AssignmentGroup) []*domain.AssignmentGroup {
	done := e.step(ctx, "check group keys")
	defer done()

	seen := make(map[string]struct{}, len(groups))
	unique := make([]*domain.AssignmentGroup, 0, len(groups))

	for _, g := range groups {
		if g.GroupKey == "" {
			e.rep.Soft(ctx, report.KindMissingKey, "assignment row has no group key, skipping",
				slog.String("floor", g.Floor),
				slog.String("rack", g.RackName),
			)
			continue
		}

		if _, ok := seen[g.GroupKey]; ok {
			e.rep.Soft(ctx, report.KindDuplicateGroup, "group key already used, skipping",
				slog.String("group_key", g.GroupKey),
				slog.String("floor", g.Floor),
				slog.String("rack", g.RackName),
			)
			continue
		}

		seen[g.GroupKey] = struct{}{}
		unique = append(unique, g)
	}

	return unique
}

// CheckAssignmentDuplicates reports every device identifier used more than
// once across all categories of all groups.
func (e *Engine) CheckAssignmentDuplicates(ctx context.Context, groups []*domain.AssignmentGroup) bool {
	done := e.step(ctx, "check assignment duplicates")

	seen := make(map[string]*domain.AssignmentGroup)

	for _, g := range groups {
		for _, d := range g.Devices() {
			first, ok := seen[d.DeviceNumber]
			if !ok {
				seen[d.DeviceNumber] = g
				continue
			}

			e.rep.Soft(ctx, report.KindDuplicateDevice, "device is assigned more than once",
				slog.String("device_number", d.DeviceNumber),
				slog.String("floor", g.Floor),
				slog.String("rack", g.RackName),
				slog.String("first_rack", first.RackName),
			)
		}
	}

	return done()
}

// CheckRegistryDuplicates reports identifiers repeated in the property rows,
// and rows that have no identifier at all.
func (e *Engine) CheckRegistryDuplicates(ctx context.Context, rows []*domain.Device) bool {
	done := e.step(ctx, "check registry duplicates")

	seen := make(map[string]struct{}, len(rows))

	for i, d := range rows {
		if d.DeviceNumber == "" {
			e.rep.Soft(ctx, report.KindMissingKey, "property row has no device number",
				slog.Int("record", i+1),
			)
			continue
		}

		if _, ok := seen[d.DeviceNumber]; ok {
			e.rep.Soft(ctx, report.KindDuplicateDevice, "device number repeated in property data",
				slog.String("device_number", d.DeviceNumber),
				slog.Int("record", i+1),
			)
			continue
		}

		seen[d.DeviceNumber] = struct{}{}
	}

	return done()
}
