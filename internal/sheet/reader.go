package sheet

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/kurochkinivan/port_assigner/internal/columns"
	"github.com/xuri/excelize/v2"
)

var ErrSheetNotFound = errors.New("sheet not found")

// Workbook is an xlsx file opened for reading.
type Workbook struct {
	path string
	f    *excelize.File
}

func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %q: %w", path, err)
	}

	return &Workbook{path: path, f: f}, nil
}

func (w *Workbook) Close() error {
	return w.f.Close()
}

// ReadRows reads the bound columns of every row from firstRow to the last
// used row of sheet.
func (w *Workbook) ReadRows(sheet string, firstRow int, bindings []columns.Binding) ([]columns.Row, error) {
	idx, err := w.f.GetSheetIndex(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to look up sheet %q: %w", sheet, err)
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q in %q", ErrSheetNotFound, sheet, w.path)
	}

	all, err := w.f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows of sheet %q: %w", sheet, err)
	}
	lastRow := len(all)

	rows := make([]columns.Row, 0, max(lastRow-firstRow+1, 0))
	for r := firstRow; r <= lastRow; r++ {
		row := columns.Row{
			Sheet:  sheet,
			Number: r,
			Cells:  make(map[int]columns.Cell, len(bindings)),
		}

		for _, b := range bindings {
			cell, err := w.cell(sheet, b.Column, r)
			if err != nil {
				return nil, err
			}
			row.Cells[b.Column] = cell
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func (w *Workbook) cell(sheet string, col, row int) (columns.Cell, error) {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return columns.Cell{}, fmt.Errorf("failed to convert coordinates: %w", err)
	}

	typ, err := w.f.GetCellType(sheet, name)
	if err != nil {
		return columns.Cell{}, fmt.Errorf("failed to get type of cell %s: %w", name, err)
	}

	raw, err := w.f.GetCellValue(sheet, name, excelize.Options{RawCellValue: true})
	if err != nil {
		return columns.Cell{}, fmt.Errorf("failed to get value of cell %s: %w", name, err)
	}

	return classify(typ, raw), nil
}

// classify maps an excelize cell to the three kinds the decoders accept.
// Cells written without a type attribute hold plain numbers.
func classify(typ excelize.CellType, raw string) columns.Cell {
	if raw == "" {
		return columns.Cell{Kind: columns.CellBlank}
	}

	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return columns.Cell{Kind: columns.CellText, Value: raw}

	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if v, ok := decimal(raw); ok {
			return columns.Cell{Kind: columns.CellNumber, Value: v}
		}
	}

	return columns.Cell{Kind: columns.CellUnsupported, Value: raw}
}

// decimal renders a raw numeric value the way it reads in a sheet: integers
// without a fraction, everything else in its shortest form.
func decimal(raw string) (string, bool) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", false
	}

	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10), true
	}

	return strconv.FormatFloat(v, 'f', -1, 64), true
}
