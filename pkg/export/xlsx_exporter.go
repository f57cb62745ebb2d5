package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SheetRow is a worksheet row. Fill, when set, is a hex colour applied to the first cell.
type SheetRow struct {
	Cells []string
	Fill  string
}

// Sheet describes a single-worksheet workbook.
type Sheet struct {
	Name     string
	Title    string
	Headers  []string
	Rows     []SheetRow
	Numbered bool
}

// XLSXExporter renders sheets into xlsx workbooks.
type XLSXExporter struct{}

// NewXLSXExporter constructs an xlsx exporter.
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// Render writes the optional title in row 1, the headers below it and then the rows.
func (e *XLSXExporter) Render(sheet Sheet) ([]byte, error) {
	if len(sheet.Headers) == 0 {
		return nil, fmt.Errorf("xlsx requires at least one header")
	}

	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	name := sheet.Name
	if name == "" {
		name = "Sheet1"
	}
	if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	headers := sheet.Headers
	if sheet.Numbered {
		headers = append([]string{"No"}, headers...)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	row := 1
	if sheet.Title != "" {
		if err := setRow(f, name, row, []string{sheet.Title}); err != nil {
			return nil, err
		}
		if len(headers) > 1 {
			last, _ := excelize.CoordinatesToCellName(len(headers), row)
			if err := f.MergeCell(name, "A1", last); err != nil {
				return nil, fmt.Errorf("merge title: %w", err)
			}
		}
		if err := f.SetCellStyle(name, "A1", "A1", bold); err != nil {
			return nil, fmt.Errorf("style title: %w", err)
		}
		row += 2
	}

	if err := setRow(f, name, row, headers); err != nil {
		return nil, err
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(headers), row)
	if err := f.SetCellStyle(name, first, last, bold); err != nil {
		return nil, fmt.Errorf("style headers: %w", err)
	}
	row++

	fills := make(map[string]int)
	for i, r := range sheet.Rows {
		cells := r.Cells
		if sheet.Numbered {
			cells = append([]string{fmt.Sprint(i + 1)}, cells...)
		}
		if err := setRow(f, name, row, cells); err != nil {
			return nil, err
		}
		if r.Fill != "" {
			style, ok := fills[r.Fill]
			if !ok {
				style, err = f.NewStyle(&excelize.Style{
					Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#" + strings.TrimPrefix(r.Fill, "#")}},
				})
				if err != nil {
					return nil, fmt.Errorf("create fill style: %w", err)
				}
				fills[r.Fill] = style
			}
			col := 1
			if sheet.Numbered {
				col = 2
			}
			cell, _ := excelize.CoordinatesToCellName(col, row)
			if err := f.SetCellStyle(name, cell, cell, style); err != nil {
				return nil, fmt.Errorf("style row %d: %w", row, err)
			}
		}
		row++
	}

	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	if err := f.SetColWidth(name, "A", lastCol, 16); err != nil {
		return nil, fmt.Errorf("size columns: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("locate row %d: %w", row, err)
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}
