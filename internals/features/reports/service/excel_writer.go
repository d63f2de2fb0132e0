package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const excelColumnWidth = 15

// writeExcel renders the table as a single-sheet xlsx workbook.
func writeExcel(path string, table Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	f.SetCellValue(sheet, "A1", table.Title)
	f.SetCellValue(sheet, "A2", "Period: "+table.Period)

	headerRow := 4
	for i, h := range table.Headers {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return err
		}
		f.SetCellValue(sheet, cell, h)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(table.Headers), headerRow)
		first, _ := excelize.CoordinatesToCellName(1, headerRow)
		f.SetCellStyle(sheet, first, last, boldStyle)
	}

	for r, row := range table.Rows {
		for cIdx, cell := range row {
			name, err := excelize.CoordinatesToCellName(cIdx+1, headerRow+1+r)
			if err != nil {
				return err
			}
			f.SetCellValue(sheet, name, cell)
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(table.Headers))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, excelColumnWidth); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
