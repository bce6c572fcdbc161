package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Rana718/bankseed/internal/types"
	"github.com/xuri/excelize/v2"
)

// WriteWorkbook saves all tables into one .xlsx file, one sheet per table
// named after it, with a bold header row.
func WriteWorkbook(path string, tables []*types.Table) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create workbook directory: %w", err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	defaultSheet := f.GetSheetName(0)
	for i, t := range tables {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, t.Name); err != nil {
				return fmt.Errorf("failed to name sheet %s: %w", t.Name, err)
			}
		} else if _, err := f.NewSheet(t.Name); err != nil {
			return fmt.Errorf("failed to add sheet %s: %w", t.Name, err)
		}

		if err := writeSheet(f, t, header); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, t *types.Table, headerStyle int) error {
	stream, err := f.NewStreamWriter(t.Name)
	if err != nil {
		return fmt.Errorf("failed to open sheet %s: %w", t.Name, err)
	}

	cells := make([]interface{}, len(t.Columns))
	for i, col := range t.Columns {
		cells[i] = excelize.Cell{StyleID: headerStyle, Value: col}
	}
	if err := stream.SetRow("A1", cells); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", t.Name, err)
	}

	for r, row := range t.Rows {
		values := make([]interface{}, len(row))
		for i, v := range row {
			values[i] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := stream.SetRow(cell, values); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", r+1, t.Name, err)
		}
	}

	return stream.Flush()
}
