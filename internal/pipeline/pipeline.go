// Package pipeline runs one batch: load both datasets, check them, enrich,
// assign ports and hand the result table to a saver.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kurochkinivan/port_assigner/internal/domain"
	"github.com/kurochkinivan/port_assigner/internal/engine"
	"github.com/kurochkinivan/port_assigner/internal/report"
)

type Pipeline struct {
	log    *slog.Logger
	groups GroupsSource
	props  PropertiesSource
	saver  ResultSaver
	rep    *report.Report
}

func New(log *slog.Logger, groups GroupsSource, props PropertiesSource, saver ResultSaver) *Pipeline {
	return &Pipeline{
		log:    log,
		groups: groups,
		props:  props,
		saver:  saver,
	}
}

// WithReport makes Run record into rep instead of a fresh report, so issues
// found while setting up sinks end up in the same place.
func (p *Pipeline) WithReport(rep *report.Report) *Pipeline {
	p.rep = rep
	return p
}

// Run returns the report of a completed run. An error means the run stopped
// early and nothing was saved.
func (p *Pipeline) Run(ctx context.Context) (*report.Report, error) {
	rep := p.rep
	if rep == nil {
		rep = report.New(p.log)
	}
	eng := engine.New(p.log, rep)

	groups, err := p.groups.LoadGroups(ctx, rep)
	if err != nil {
		return rep, fmt.Errorf("failed to load assignment groups: %w", err)
	}
	p.log.InfoContext(ctx, "assignment groups loaded", slog.Int("groups", len(groups)))
	traceGroups(ctx, p.log, groups)

	groups = eng.UniqueGroups(ctx, groups)
	eng.CheckAssignmentDuplicates(ctx, groups)

	rows, err := p.props.LoadProperties(ctx, rep)
	if err != nil {
		return rep, fmt.Errorf("failed to load device properties: %w", err)
	}
	p.log.InfoContext(ctx, "device properties loaded", slog.Int("devices", len(rows)))

	eng.CheckRegistryDuplicates(ctx, rows)

	registry := engine.NewRegistry(rows)
	traceRegistry(ctx, p.log, registry)

	enriched := eng.Enrich(ctx, groups, registry)
	p.log.InfoContext(ctx, "devices enriched", slog.Int("devices", enriched))

	table := engine.BuildTable(eng.AssignAll(ctx, groups))
	traceTable(ctx, p.log, table)

	if err := p.saver.SaveResult(ctx, table); err != nil {
		return rep, fmt.Errorf("failed to save result: %w", err)
	}

	p.log.InfoContext(ctx, "result saved",
		slog.Int("racks", len(table.Racks)),
		slog.Int("switches", table.SwitchCount()),
	)

	return rep, nil
}

func traceGroups(ctx context.Context, log *slog.Logger, groups []*domain.AssignmentGroup) {
	if !log.Enabled(ctx, slog.LevelDebug) {
		return
	}

	for _, g := range groups {
		attrs := []slog.Attr{
			slog.String("group_key", g.GroupKey),
			slog.String("floor", g.Floor),
			slog.String("rack", g.RackName),
		}
		for _, c := range domain.Categories {
			attrs = append(attrs, slog.String(string(c), domain.Numbers(*g.Category(c))))
		}

		log.LogAttrs(ctx, slog.LevelDebug, "assignment group", attrs...)
	}
}

func traceRegistry(ctx context.Context, log *slog.Logger, registry *engine.Registry) {
	if !log.Enabled(ctx, slog.LevelDebug) {
		return
	}

	for _, d := range registry.All() {
		log.DebugContext(ctx, "device",
			slog.String("device_number", d.DeviceNumber),
			slog.String("floor", d.Floor),
			slog.String("rack", d.RackName),
			slog.String("room", d.RoomName),
			slog.String("model", d.ModelName),
			slog.String("rosette", d.Rosette),
			slog.String("host_name", d.HostName),
		)
	}
}

func traceTable(ctx context.Context, log *slog.Logger, table *domain.ResultTable) {
	if !log.Enabled(ctx, slog.LevelDebug) {
		return
	}

	for _, rack := range table.Racks {
		for _, sw := range rack.Switches {
			log.DebugContext(ctx, "switch ports",
				slog.String("rack", rack.RackName),
				slog.Int("switch_id", sw.ID),
				slog.String("switch", sw.Switch.DeviceNumber),
				slog.String("ports", sw.PortNumbers()),
			)
		}
	}
}
