// Package model contains the domain entities and their lifecycle rules.
// Entities carry JSON tags for the HTTP layer but no persistence tags; SQL lives in repository/postgres.
package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidTransition is returned when a lifecycle move is not allowed from the current status.
var ErrInvalidTransition = errors.New("invalid status transition")

func transitionError(entity, from, to string) error {
	return fmt.Errorf("%w: %s cannot move from %q to %q", ErrInvalidTransition, entity, from, to)
}

// DateOf truncates t to midnight of its calendar day, keeping t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Scales of the NUMERIC columns money and rates are stored in.
const (
	MoneyScale = 2
	RateScale  = 4
)

// FitsScale reports whether d has no more than places decimal digits.
func FitsScale(d decimal.Decimal, places int32) bool {
	return d.Equal(d.Round(places))
}

// DaysBetween returns the number of calendar days from start to end (end exclusive).
// It is DST safe because both dates are normalized to UTC midnight first.
func DaysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours() / 24)
}

// Month identifies a billing month.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a "YYYY-MM" string.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// PreviousMonth returns the calendar month before the one containing t.
func PreviousMonth(t time.Time) Month {
	return MonthOf(time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, -1, 0))
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Compact returns the month as "YYYYMM", used in document numbers.
func (m Month) Compact() string {
	return fmt.Sprintf("%04d%02d", m.Year, int(m.Month))
}

// Start returns the first instant of the month in loc.
func (m Month) Start(loc *time.Location) time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, loc)
}

// End returns the first instant of the following month in loc (exclusive bound).
func (m Month) End(loc *time.Location) time.Time {
	return m.Start(loc).AddDate(0, 1, 0)
}
