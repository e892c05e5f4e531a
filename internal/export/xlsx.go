package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"docklogger/internal/domain"
)

// TimesheetXLSX renders a user's worked shifts as an XLSX workbook.
func TimesheetXLSX(entries []domain.TimesheetEntry) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Timesheet"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{"Date", "Shift", "Hours", "Job", "Earnings", "Location", "Ship"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, e := range entries {
		write := func(col int, v interface{}) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, e.Date)
		write(2, string(e.ShiftType))
		write(3, e.Hours)
		write(4, e.JobName)
		if e.Earnings != nil {
			write(5, *e.Earnings)
		}
		write(6, e.Location)
		write(7, e.Ship)

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "B", 12)
	_ = f.SetColWidth(sheet, "C", "C", 8)
	_ = f.SetColWidth(sheet, "D", "D", 28)
	_ = f.SetColWidth(sheet, "E", "E", 12)
	_ = f.SetColWidth(sheet, "F", "G", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
