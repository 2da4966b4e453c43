package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExportExcel xuất bảng công ra file xlsx để chủ quán đối chiếu trả lương.
func (s *service) ExportExcel(ctx context.Context, q ListQuery) ([]byte, string, error) {
	rows, err := s.List(ctx, q)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Bảng công"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Mã ca", "Mã NV", "Tên", "Check-in", "Check-out", "Số giờ", "Đơn giá/giờ", "Lương cơ bản", "Thực lãnh", "Trạng thái", "Ghi chú"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	f.SetCellStyle(sheet, "A1", "K1", headerStyle)

	var totalSalary int64
	for i, rec := range rows {
		rowNum := i + 2
		checkOut := ""
		if rec.CheckOut != nil {
			checkOut = rec.CheckOut.Format("02/01/2006 15:04")
		}
		duration := ""
		if rec.DurationHours != nil {
			duration = fmt.Sprintf("%.2f", *rec.DurationHours)
		}
		var base any = ""
		if rec.BaseSalary != nil {
			base = *rec.BaseSalary
		}
		values := []any{
			rec.ShiftLabel,
			rec.UserID,
			rec.UserName,
			rec.CheckIn.Format("02/01/2006 15:04"),
			checkOut,
			duration,
			rec.SalaryPerHour,
			base,
			rec.Salary,
			rec.Status,
			rec.Note,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowNum)
			f.SetCellValue(sheet, cell, v)
		}
		totalSalary += rec.Salary
	}

	totalRow := len(rows) + 2
	cell, _ := excelize.CoordinatesToCellName(8, totalRow)
	f.SetCellValue(sheet, cell, "TỔNG")
	cell, _ = excelize.CoordinatesToCellName(9, totalRow)
	f.SetCellValue(sheet, cell, totalSalary)

	f.SetColWidth(sheet, "A", "A", 18)
	f.SetColWidth(sheet, "C", "E", 20)
	f.SetColWidth(sheet, "K", "K", 30)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("bang-cong-%s.xlsx", time.Now().Format("20060102-150405"))
	return buf.Bytes(), filename, nil
}
