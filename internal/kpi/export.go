package kpi

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

var exportHeader = []string{
	"Date", "Grupo", "Site", "Cell", "Tech",
	"VolumeGB", "TputDLMB", "TputULMB", "Disp", "PRB_DL", "Users", "acc",
}

// WriteWorkbook writes a normalized table to a single-sheet workbook. The
// run uses it to persist the normalized 4G table before the merge step.
func WriteWorkbook(rows []Record, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, h := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for i, r := range rows {
		// Missing accessibility exports as an empty cell, not 0.
		var acc interface{} = ""
		if r.HasAcc {
			acc = r.Acc
		}
		values := []interface{}{
			r.Date.Format("2006-01-02 15:04:05"),
			r.Grupo, r.Site, r.Cell, r.Tech,
			r.VolumeGB, r.TputDLMB, r.TputULMB, r.Disp, r.PRBDL, r.Users, acc,
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("write row %d: %w", i+2, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}
