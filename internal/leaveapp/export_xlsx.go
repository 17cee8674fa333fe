package leaveapp

import (
	"context"
	"strconv"

	"github.com/xuri/excelize/v2"

	leaveapperrors "leavedesk/internal/leaveapp/errors"
)

const exportSheet = "Leave Applications"

var exportHeader = []string{
	"Employee", "Leave Type", "Start Date", "End Date", "Days", "Reason", "Status", "Comment",
}

// ExportXLSX renders the applications in the given status as a spreadsheet.
// Unlike the CSV export this is built locally, so managers get a workbook
// even when the HR core only speaks CSV.
func (s *service) ExportXLSX(ctx context.Context, status string, query HistoryQuery) ([]byte, error) {
	leaves, err := s.ByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	if len(leaves) == 0 {
		return nil, leaveapperrors.ErrExportEmpty
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, title); err != nil {
			return nil, err
		}
	}

	for row, leave := range leaves {
		values := []interface{}{
			leave.EmployeeName,
			leave.TypeName,
			leave.StartDate,
			leave.EndDate,
			leave.Days,
			leave.Reason,
			leave.Status,
			leave.Comment,
		}
		rowIndex := strconv.Itoa(row + 2)
		for col, v := range values {
			name, err := excelize.ColumnNumberToName(col + 1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheet, name+rowIndex, v); err != nil {
				return nil, err
			}
		}
	}

	f.SetActiveSheet(index)
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
