// Package billing computes monthly agent commission: billing windows, night-based proration of order items
// and the commission amount. It is pure calculation with no persistence.
package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"hotelagent/internal/model"
)

// Window is a half-open range of calendar dates [Start, End).
// Dates are normalized to UTC midnight so values from different locations compare by calendar day.
type Window struct {
	Start time.Time
	End   time.Time
}

func civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NewWindow builds a window from two dates; End is exclusive.
func NewWindow(start, end time.Time) Window {
	return Window{Start: civil(start), End: civil(end)}
}

// Empty reports whether the window contains no day.
func (w Window) Empty() bool {
	return !w.Start.Before(w.End)
}

// Days returns the number of days in the window.
func (w Window) Days() int {
	if w.Empty() {
		return 0
	}
	return model.DaysBetween(w.Start, w.End)
}

// Intersect returns the overlap of w and o; the result may be empty.
func (w Window) Intersect(o Window) Window {
	out := w
	if o.Start.After(out.Start) {
		out.Start = o.Start
	}
	if o.End.Before(out.End) {
		out.End = o.End
	}
	return out
}

// MonthWindow returns the calendar window of a billing month.
func MonthWindow(m model.Month) Window {
	return NewWindow(m.Start(time.UTC), m.End(time.UTC))
}

// AgentWindow returns the agent validity window: valid_from up to and including expiry_date.
func AgentWindow(a *model.Agent) Window {
	return NewWindow(a.ValidFrom, a.ExpiryDate.AddDate(0, 0, 1))
}

// BillingWindow is the part of month m during which the agent was valid.
func BillingWindow(m model.Month, a *model.Agent) Window {
	return MonthWindow(m).Intersect(AgentWindow(a))
}

// NightsInside counts the nights of a stay that fall inside w.
// A night belongs to the date it starts on, so check-out day is never counted.
func NightsInside(checkIn, checkOut time.Time, w Window) int {
	return NewWindow(checkIn, checkOut).Intersect(w).Days()
}

// Prorate scales amount by inside/total nights, rounded to 2 decimal places.
func Prorate(amount decimal.Decimal, inside, total int) decimal.Decimal {
	if inside <= 0 || total <= 0 {
		return decimal.Zero
	}
	if inside >= total {
		return amount
	}
	return amount.Mul(decimal.NewFromInt(int64(inside))).Div(decimal.NewFromInt(int64(total))).Round(2)
}

// Totals are the prorated figures of one agent for one billing window.
type Totals struct {
	OrderCount  int
	TotalAmount decimal.Decimal
	TotalCost   decimal.Decimal
	TotalProfit decimal.Decimal
}

// Aggregate prorates every billable item into w and sums the results.
// Items of non-billable orders are ignored; an order counts once when any of its items contributes nights.
func Aggregate(items []model.BillableItem, w Window) Totals {
	t := Totals{TotalAmount: decimal.Zero, TotalCost: decimal.Zero, TotalProfit: decimal.Zero}
	if w.Empty() {
		return t
	}
	orders := make(map[string]struct{})
	for _, bi := range items {
		if !bi.OrderStatus.Billable() {
			continue
		}
		it := bi.Item
		total := it.Nights
		if total <= 0 {
			total = model.DaysBetween(it.CheckIn, it.CheckOut)
		}
		inside := NightsInside(it.CheckIn, it.CheckOut, w)
		if inside <= 0 {
			continue
		}
		orders[bi.OrderID] = struct{}{}
		t.TotalAmount = t.TotalAmount.Add(Prorate(it.Amount, inside, total))
		t.TotalCost = t.TotalCost.Add(Prorate(it.CostAmount, inside, total))
	}
	t.OrderCount = len(orders)
	t.TotalProfit = t.TotalAmount.Sub(t.TotalCost)
	return t
}

// CommissionBase picks the amount the rate applies to. Negative profit yields a zero base.
func CommissionBase(t Totals, basis model.CommissionBasis) decimal.Decimal {
	if basis == model.CommissionBasisProfit {
		if t.TotalProfit.IsNegative() {
			return decimal.Zero
		}
		return t.TotalProfit
	}
	return t.TotalAmount
}

// Commission returns base × rate rounded to 2 decimal places.
func Commission(base, rate decimal.Decimal) decimal.Decimal {
	return base.Mul(rate).Round(2)
}

// Result is a complete bill calculation.
type Result struct {
	Window Window
	Totals
	Basis  model.CommissionBasis
	Base   decimal.Decimal
	Rate   decimal.Decimal
	Amount decimal.Decimal
}

// Calculate runs the full bill computation for one agent and month.
func Calculate(m model.Month, a *model.Agent, items []model.BillableItem, basis model.CommissionBasis) Result {
	w := BillingWindow(m, a)
	t := Aggregate(items, w)
	base := CommissionBase(t, basis)
	return Result{
		Window: w,
		Totals: t,
		Basis:  basis,
		Base:   base,
		Rate:   a.CommissionRate,
		Amount: Commission(base, a.CommissionRate),
	}
}

// Apply copies the calculated figures onto bill. The period is always the full month.
func (r Result) Apply(b *model.AgentBill, m model.Month) {
	mw := MonthWindow(m)
	b.BillMonth = m.String()
	b.PeriodStart = mw.Start
	b.PeriodEnd = mw.End
	b.OrderCount = r.OrderCount
	b.TotalAmount = r.TotalAmount
	b.TotalCost = r.TotalCost
	b.TotalProfit = r.TotalProfit
	b.CommissionBasis = r.Basis
	b.CommissionBase = r.Base
	b.CommissionRate = r.Rate
	b.CommissionAmount = r.Amount
}
