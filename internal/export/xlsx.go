package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/chdonahue/art-valuation/internal/catalog"
)

const sheetName = "Artworks"

// WriteXLSX writes the artwork table to path as an XLSX workbook with a
// single sheet, same columns and cell rendering as the CSV writer.
func WriteXLSX(path string, artworks []catalog.Artwork) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	for col, header := range catalog.Columns {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i := range artworks {
		row := Row(&artworks[i])
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("failed to write row %d: %w", i, err)
			}
		}
	}

	// Widen the free-text columns
	_ = f.SetColWidth(sheetName, "A", "B", 32) // title, description
	_ = f.SetColWidth(sheetName, "F", "F", 48) // sale of
	_ = f.SetColWidth(sheetName, "J", "K", 24) // artist, auction house

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}
