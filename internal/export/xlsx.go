// Package export renders the roster as an Excel workbook.
package export

import (
	"fmt"
	"io"

	"github.com/jacksmith/roster/internal/model"
	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the single worksheet in an exported workbook.
const SheetName = "Roster"

// columnWidths are per-column widths, in characters.
var columnWidths = [model.FieldCount]float64{14, 18, 8, 6, 14, 24}

// WriteXLSX writes a workbook with a bold header row followed by one row per
// record, in order.
func WriteXLSX(w io.Writer, headers []string, records []model.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	for i, width := range columnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	headerRow := make([]interface{}, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(SheetName, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	// Values are written as strings so IDs like "007" keep their zeros.
	for i, rec := range records {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		fields := rec.Fields()
		row := make([]interface{}, len(fields))
		for j, v := range fields {
			row[j] = v
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
