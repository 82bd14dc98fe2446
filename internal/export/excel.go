package export

import (
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Bills"

func writeXLSX(w io.Writer, rows []Row, loc *time.Location) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return err
	}
	pct, err := f.NewStyle(&excelize.Style{NumFmt: 10})
	if err != nil {
		return err
	}

	for i, h := range Header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(Header), 1)
	if err := f.SetCellStyle(sheetName, "A1", last, bold); err != nil {
		return err
	}

	for i, r := range rows {
		row := i + 2
		values := []any{
			safeText(r.BillNo),
			safeText(r.AgentCode),
			safeText(r.AgentName),
			r.Month,
			r.OrderCount,
			r.TotalAmount.InexactFloat64(),
			r.TotalProfit.InexactFloat64(),
			r.CommissionRate.InexactFloat64(),
			r.CommissionAmount.InexactFloat64(),
			r.PaidAmount.InexactFloat64(),
			r.Status,
			formatTime(r.ConfirmedAt, loc),
			formatTime(r.PaidAt, loc),
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return err
		}
	}

	if n := len(rows); n > 0 {
		end := n + 1
		for _, col := range []string{"F", "G", "I", "J"} {
			if err := f.SetCellStyle(sheetName, col+"2", col+strconv.Itoa(end), money); err != nil {
				return err
			}
		}
		if err := f.SetCellStyle(sheetName, "H2", "H"+strconv.Itoa(end), pct); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(sheetName, "A", "M", 16); err != nil {
		return err
	}

	return f.Write(w)
}
