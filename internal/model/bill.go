package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// BillStatus is the lifecycle state of a monthly agent bill.
type BillStatus string

// CommissionBasis selects which bill total the commission rate is applied to.
type CommissionBasis string

const (
	BillStatusPending   BillStatus = "pending"
	BillStatusConfirmed BillStatus = "confirmed"
	BillStatusPaid      BillStatus = "paid"
)

const (
	CommissionBasisRevenue CommissionBasis = "revenue"
	CommissionBasisProfit  CommissionBasis = "profit"
)

var ErrBillNotSettled = errors.New("bill commission is not fully paid")

// Valid reports whether s is a known bill status.
func (s BillStatus) Valid() bool {
	return s == BillStatusPending || s == BillStatusConfirmed || s == BillStatusPaid
}

// Valid reports whether b is a known commission basis.
func (b CommissionBasis) Valid() bool {
	return b == CommissionBasisRevenue || b == CommissionBasisProfit
}

// AgentBill is the monthly commission statement of an agent.
type AgentBill struct {
	ID               string          `json:"id"`
	BillNo           string          `json:"bill_no"`
	AgentID          string          `json:"agent_id"`
	BillMonth        string          `json:"bill_month"`
	PeriodStart      time.Time       `json:"period_start"`
	PeriodEnd        time.Time       `json:"period_end"`
	OrderCount       int             `json:"order_count"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	TotalCost        decimal.Decimal `json:"total_cost"`
	TotalProfit      decimal.Decimal `json:"total_profit"`
	CommissionBasis  CommissionBasis `json:"commission_basis"`
	CommissionBase   decimal.Decimal `json:"commission_base"`
	CommissionRate   decimal.Decimal `json:"commission_rate"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	PaidAmount       decimal.Decimal `json:"paid_amount"`
	Status           BillStatus      `json:"status"`
	ConfirmedBy      string          `json:"confirmed_by,omitempty"`
	ConfirmedAt      *time.Time      `json:"confirmed_at,omitempty"`
	PaidAt           *time.Time      `json:"paid_at,omitempty"`
	Remark           string          `json:"remark,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// Outstanding returns commission not yet paid; never negative.
func (b *AgentBill) Outstanding() decimal.Decimal {
	out := b.CommissionAmount.Sub(b.PaidAmount)
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}

// FullyPaid reports whether the paid amount covers the commission.
func (b *AgentBill) FullyPaid() bool {
	return b.PaidAmount.GreaterThanOrEqual(b.CommissionAmount)
}

// Regenerable reports whether the bill figures may still be recomputed.
func (b *AgentBill) Regenerable() bool {
	return b.Status == BillStatusPending
}

// Confirm locks the bill figures. Only pending bills can be confirmed.
func (b *AgentBill) Confirm(operator string, now time.Time) error {
	if b.Status != BillStatusPending {
		return transitionError("bill", string(b.Status), string(BillStatusConfirmed))
	}
	b.Status = BillStatusConfirmed
	b.ConfirmedBy = operator
	b.ConfirmedAt = &now
	return nil
}

// MarkPaid closes a confirmed bill whose commission has been fully paid.
func (b *AgentBill) MarkPaid(now time.Time) error {
	if b.Status != BillStatusConfirmed {
		return transitionError("bill", string(b.Status), string(BillStatusPaid))
	}
	if !b.FullyPaid() {
		return ErrBillNotSettled
	}
	b.Status = BillStatusPaid
	b.PaidAt = &now
	return nil
}

// ApplyPayment adds a completed payment to the bill and closes it once fully paid.
// It reports whether the bill moved to paid.
func (b *AgentBill) ApplyPayment(amount decimal.Decimal, now time.Time) (bool, error) {
	if b.Status != BillStatusConfirmed {
		return false, transitionError("bill", string(b.Status), string(BillStatusPaid))
	}
	b.PaidAmount = b.PaidAmount.Add(amount)
	if b.FullyPaid() {
		b.Status = BillStatusPaid
		b.PaidAt = &now
		return true, nil
	}
	return false, nil
}
