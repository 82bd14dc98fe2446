// Package export renders monthly bill listings as CSV or Excel workbooks.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ErrUnsupportedFormat is returned for formats other than csv and xlsx.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// ParseFormat accepts "csv" or "xlsx" (case-insensitive); empty means csv.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatCSV, nil
	case FormatCSV, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnsupportedFormat, s)
	}
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// FileName builds the download name of a monthly export, e.g. bills_2025-01.xlsx.
func (f Format) FileName(month string) string {
	return "bills_" + month + "." + string(f)
}

// Row is one exported bill.
type Row struct {
	BillNo           string
	AgentCode        string
	AgentName        string
	Month            string
	OrderCount       int
	TotalAmount      decimal.Decimal
	TotalProfit      decimal.Decimal
	CommissionRate   decimal.Decimal
	CommissionAmount decimal.Decimal
	PaidAmount       decimal.Decimal
	Status           string
	ConfirmedAt      *time.Time
	PaidAt           *time.Time
}

// Header is the column title row shared by all formats.
var Header = []string{
	"Bill No", "Agent Code", "Agent Name", "Month", "Orders", "Total Amount", "Total Profit",
	"Commission Rate", "Commission", "Paid", "Status", "Confirmed At", "Paid At",
}

const timeLayout = "2006-01-02 15:04:05"

// safeText keeps spreadsheet applications from evaluating user supplied text as a formula.
func safeText(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}

func formatTime(t *time.Time, loc *time.Location) string {
	if t == nil {
		return ""
	}
	return t.In(loc).Format(timeLayout)
}

// Write renders rows in format f to w. Timestamps are shown in loc.
func Write(w io.Writer, f Format, rows []Row, loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}
	switch f {
	case FormatCSV:
		return writeCSV(w, rows, loc)
	case FormatXLSX:
		return writeXLSX(w, rows, loc)
	default:
		return fmt.Errorf("%w %q", ErrUnsupportedFormat, string(f))
	}
}
