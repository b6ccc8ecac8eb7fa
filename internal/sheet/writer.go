package sheet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/kurochkinivan/port_assigner/internal/columns"
	"github.com/kurochkinivan/port_assigner/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	defaultSheet   = "Sheet1"
	timestampCell  = "A1"
	timestampFmt   = "2006/01/02 15:04"
	maxSheetName   = 31
	minColumnWidth = 6
)

// Layout describes where things go on every switch worksheet.
type Layout struct {
	HeaderRow int
	Font      string
	Location  *time.Location
}

// Writer writes the result table as one worksheet per switch.
type Writer struct {
	log        *slog.Logger
	path       string
	layout     Layout
	switchCols []columns.OutputColumn
	portCols   []columns.OutputColumn
	now        func() time.Time
}

func NewWriter(
	log *slog.Logger,
	path string,
	layout Layout,
	switchCols []columns.OutputColumn,
	portCols []columns.OutputColumn,
) *Writer {
	if layout.Location == nil {
		layout.Location = time.Local
	}

	return &Writer{
		log:        log,
		path:       path,
		layout:     layout,
		switchCols: switchCols,
		portCols:   portCols,
		now:        time.Now,
	}
}

// WithClock replaces the clock used for the timestamp cell.
func (w *Writer) WithClock(now func() time.Time) *Writer {
	w.now = now
	return w
}

func (w *Writer) SaveResult(ctx context.Context, table *domain.ResultTable) (err error) {
	f := excelize.NewFile()
	defer func() { err = errors.Join(err, f.Close()) }()

	styles, err := w.newStyles(f)
	if err != nil {
		return err
	}

	names := make(map[string]struct{})
	stamp := w.now().In(w.layout.Location).Format(timestampFmt)
	rows := table.Rows()

	var first string
	for start := 0; start < len(rows); start += domain.PortsPerSwitch {
		slots := rows[start : start+domain.PortsPerSwitch]

		name := uniqueSheetName(sheetName(slots[0]), names)
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", name, err)
		}
		if first == "" {
			first = name
		}

		if err := w.writeSwitch(f, name, stamp, slots, styles); err != nil {
			return fmt.Errorf("failed to write sheet %q: %w", name, err)
		}

		w.log.DebugContext(ctx, "switch sheet written",
			slog.String("sheet", name),
			slog.String("rack", slots[0].RackName),
		)
	}

	if first != "" {
		if _, used := names[strings.ToLower(defaultSheet)]; !used {
			if err := f.DeleteSheet(defaultSheet); err != nil {
				return fmt.Errorf("failed to delete default sheet: %w", err)
			}
		}

		idx, err := f.GetSheetIndex(first)
		if err != nil {
			return fmt.Errorf("failed to look up sheet %q: %w", first, err)
		}
		f.SetActiveSheet(idx)
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("failed to save workbook %q: %w", w.path, err)
	}

	return nil
}

type styles struct {
	header int
	body   int
}

func (w *Writer) newStyles(f *excelize.File) (styles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Family: w.layout.Font, Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: border,
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return styles{}, fmt.Errorf("failed to create header style: %w", err)
	}

	body, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Family: w.layout.Font},
		Border: border,
	})
	if err != nil {
		return styles{}, fmt.Errorf("failed to create body style: %w", err)
	}

	return styles{header: header, body: body}, nil
}

func (w *Writer) writeSwitch(f *excelize.File, sheet, stamp string, slots []domain.SlotRow, st styles) error {
	if err := f.SetCellValue(sheet, timestampCell, stamp); err != nil {
		return fmt.Errorf("failed to set timestamp: %w", err)
	}

	widths := make(map[int]int)
	cols := append(append([]columns.OutputColumn(nil), w.switchCols...), w.portCols...)

	for _, col := range cols {
		if err := setCell(f, sheet, col.Column, w.layout.HeaderRow, col.Header, st.header); err != nil {
			return err
		}
		widths[col.Column] = max(widths[col.Column], utf8.RuneCountInString(col.Header))

		for i, slot := range slots {
			value := col.Value(slot)
			if err := setCell(f, sheet, col.Column, w.layout.HeaderRow+1+i, cellValue(col.Field, value), st.body); err != nil {
				return err
			}
			widths[col.Column] = max(widths[col.Column], utf8.RuneCountInString(value))
		}
	}

	for col, width := range widths {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(sheet, name, name, float64(max(width, minColumnWidth)+2)); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	topLeft, err := excelize.CoordinatesToCellName(1, w.layout.HeaderRow+1)
	if err != nil {
		return fmt.Errorf("failed to convert coordinates: %w", err)
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      w.layout.HeaderRow,
		TopLeftCell: topLeft,
		ActivePane:  "bottomLeft",
	})
}

func setCell(f *excelize.File, sheet string, col, row int, value any, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("failed to convert coordinates: %w", err)
	}

	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("failed to set cell %s: %w", cell, err)
	}

	return f.SetCellStyle(sheet, cell, cell, style)
}

// cellValue writes port numbers as numbers and everything else as text.
func cellValue(field, value string) any {
	if field == "portNumber" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return value
}

func sheetName(slot domain.SlotRow) string {
	if slot.Switch != nil && slot.Switch.DeviceNumber != "" {
		return slot.Switch.DeviceNumber
	}
	return fmt.Sprintf("%s-%d", slot.RackName, slot.SwitchID)
}

var sheetNameReplacer = strings.NewReplacer(
	":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_",
)

// uniqueSheetName makes name a legal worksheet name not present in used.
func uniqueSheetName(name string, used map[string]struct{}) string {
	base := truncate(sheetNameReplacer.Replace(name), maxSheetName)
	if base == "" {
		base = "switch"
	}

	candidate := base
	for n := 2; ; n++ {
		if _, ok := used[strings.ToLower(candidate)]; !ok {
			break
		}

		suffix := "~" + strconv.Itoa(n)
		candidate = truncate(base, maxSheetName-len(suffix)) + suffix
	}

	used[strings.ToLower(candidate)] = struct{}{}

	return candidate
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
