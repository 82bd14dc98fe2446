package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

func writeCSV(w io.Writer, rows []Row, loc *time.Location) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			safeText(r.BillNo),
			safeText(r.AgentCode),
			safeText(r.AgentName),
			r.Month,
			strconv.Itoa(r.OrderCount),
			r.TotalAmount.StringFixed(2),
			r.TotalProfit.StringFixed(2),
			r.CommissionRate.StringFixed(4),
			r.CommissionAmount.StringFixed(2),
			r.PaidAmount.StringFixed(2),
			r.Status,
			formatTime(r.ConfirmedAt, loc),
			formatTime(r.PaidAt, loc),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
