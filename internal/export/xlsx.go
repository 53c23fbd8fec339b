package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// XLSX writes records as a single-sheet workbook.
func XLSX(w io.Writer, sheet string, records []Record) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if sheet != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	if len(records) > 0 {
		for col, field := range records[0] {
			cell, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				return fmt.Errorf("header cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, field.Key); err != nil {
				return fmt.Errorf("write header: %w", err)
			}
		}
		for row, rec := range records {
			for col, field := range rec {
				cell, err := excelize.CoordinatesToCellName(col+1, row+2)
				if err != nil {
					return fmt.Errorf("data cell: %w", err)
				}
				if err := f.SetCellValue(sheet, cell, field.Value); err != nil {
					return fmt.Errorf("write row: %w", err)
				}
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
