package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/chdonahue/art-valuation/internal/catalog"
)

// saleDateFormat is how sale dates render in the output table
const saleDateFormat = "2006-01-02"

// WriteCSV writes the artwork table to path as UTF-8 CSV with a header
// row. A write failure here is the one error class that aborts the whole
// run, since a partial table is useless.
func WriteCSV(path string, artworks []catalog.Artwork) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(catalog.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := range artworks {
		if err := w.Write(Row(&artworks[i])); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

// Row renders one artwork as output cells in catalog.Columns order.
// Missing fields render as empty cells; the derived sale attributes fill
// the final four columns.
func Row(a *catalog.Artwork) []string {
	row := make([]string, 0, len(catalog.Columns))
	for _, col := range catalog.Columns {
		switch col {
		case catalog.ColumnAuctionHouse:
			row = append(row, a.Sale.AuctionHouse)
		case catalog.ColumnSaleDate:
			if a.Sale.SaleDate != nil {
				row = append(row, a.Sale.SaleDate.Format(saleDateFormat))
			} else {
				row = append(row, "")
			}
		case catalog.ColumnLotNumber:
			row = append(row, a.Sale.LotNumber)
		case catalog.ColumnIsOnline:
			if a.Sale.IsOnline {
				row = append(row, "true")
			} else {
				row = append(row, "false")
			}
		default:
			row = append(row, a.Fields[col])
		}
	}
	return row
}
