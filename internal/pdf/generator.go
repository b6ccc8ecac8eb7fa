package pdf

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/port_assigner/internal/domain"
)

const (
	titleHeight  = 12
	switchHeight = 9
	slotHeight   = 6
)

var (
	headerText = props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Center}
	cellText   = props.Text{Size: 8, Align: align.Left}
	portText   = props.Text{Size: 8, Align: align.Center}
)

// Generator renders the result table as a PDF, one block per switch.
type Generator struct {
	log      *slog.Logger
	path     string
	location *time.Location
	now      func() time.Time
}

func NewGenerator(log *slog.Logger, path string, location *time.Location) *Generator {
	if location == nil {
		location = time.Local
	}

	return &Generator{
		log:      log,
		path:     path,
		location: location,
		now:      time.Now,
	}
}

func (g *Generator) SaveResult(ctx context.Context, table *domain.ResultTable) error {
	cfg := config.NewBuilder().
		WithLeftMargin(10).
		WithRightMargin(10).
		WithTopMargin(10).
		Build()

	m := maroto.New(cfg)

	m.AddRows(text.NewRow(titleHeight, "Port assignment "+g.now().In(g.location).Format("2006/01/02 15:04"), props.Text{
		Size:  14,
		Style: fontstyle.Bold,
		Align: align.Center,
	}))

	for _, rack := range table.Racks {
		for _, sw := range rack.Switches {
			m.AddRows(switchRows(rack, sw)...)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate pdf: %w", err)
	}

	if err := doc.Save(g.path); err != nil {
		return fmt.Errorf("failed to save pdf %q: %w", g.path, err)
	}

	g.log.DebugContext(ctx, "pdf report written",
		slog.String("path", g.path),
		slog.Int("switches", table.SwitchCount()),
	)

	return nil
}

func switchRows(rack *domain.RackTable, sw *domain.SwitchAssignment) []core.Row {
	title := fmt.Sprintf("Rack %s / switch #%d %s", rack.RackName, sw.ID, sw.Switch.DeviceNumber)
	if sw.Switch.HostName != "" {
		title += " (" + sw.Switch.HostName + ")"
	}

	rows := []core.Row{
		text.NewRow(switchHeight, title, props.Text{Size: 11, Style: fontstyle.Bold, Top: 3}),
		header(),
	}

	for i, d := range sw.Ports {
		rows = append(rows, slot(i+1, d))
	}

	return rows
}

func header() core.Row {
	return grid(slotHeight, headerText, headerText, "Port", "Device", "Host", "Room", "Model", "Name")
}

func slot(port int, d *domain.Device) core.Row {
	if d == nil {
		return grid(slotHeight, portText, cellText, strconv.Itoa(port), "", "", "", "", "")
	}
	return grid(slotHeight, portText, cellText, strconv.Itoa(port), d.DeviceNumber, d.HostName, d.RoomName, d.ModelName, d.DeviceName)
}

// grid lays values out over the 12-column grid as 1, 3, 2, 2, 2, 2.
func grid(height float64, first, rest props.Text, values ...string) core.Row {
	sizes := []int{1, 3, 2, 2, 2, 2}

	cols := make([]core.Col, 0, len(values))
	for i, v := range values {
		ps := rest
		if i == 0 {
			ps = first
		}
		cols = append(cols, text.NewCol(sizes[i], v, ps))
	}

	return row.New(height).Add(cols...)
}
