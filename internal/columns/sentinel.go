package columns

import (
	"context"
	"log/slog"

	"github.com/kurochkinivan/port_assigner/internal/domain"
	"github.com/kurochkinivan/port_assigner/internal/report"
)

// DefaultNothing marks an empty category in the assignment dataset.
const DefaultNothing = "zero"

// DropNothing is the only place that knows about the "nothing" word of the
// assignment dataset. A category consisting of that single word becomes empty.
// The word inside a longer list is reported and removed.
func DropNothing(ctx context.Context, rep *report.Report, group *domain.AssignmentGroup, nothing string) {
	for _, c := range domain.Categories {
		list := group.Category(c)

		if len(*list) == 1 && (*list)[0].DeviceNumber == nothing {
			*list = nil
			continue
		}

		kept := (*list)[:0]
		for _, d := range *list {
			if d.DeviceNumber == nothing {
				rep.Soft(ctx, report.KindSentinelMisuse, "empty-category marker mixed with devices",
					slog.String("group_key", group.GroupKey),
					slog.String("rack", group.RackName),
					slog.String("category", string(c)),
				)
				continue
			}
			kept = append(kept, d)
		}
		*list = kept
	}
}

// DecodeGroups decodes assignment rows and translates the "nothing" word.
func DecodeGroups(
	ctx context.Context,
	log *slog.Logger,
	rep *report.Report,
	rows []Row,
	fields []Field[domain.AssignmentGroup],
	nothing string,
) []*domain.AssignmentGroup {
	groups := Decode(ctx, log, rep, rows, fields)
	for _, g := range groups {
		DropNothing(ctx, rep, g, nothing)
	}
	return groups
}
