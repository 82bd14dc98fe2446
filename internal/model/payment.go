package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the lifecycle state of a commission payment.
type PaymentStatus string

// PaymentMethod is how a commission payment was settled.
type PaymentMethod string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

const (
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodAlipay       PaymentMethod = "alipay"
	PaymentMethodWechat       PaymentMethod = "wechat"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodOther        PaymentMethod = "other"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodBankTransfer, PaymentMethodAlipay, PaymentMethodWechat, PaymentMethodCash, PaymentMethodOther:
		return true
	}
	return false
}

// Payment is a commission payout recorded against a confirmed bill.
type Payment struct {
	ID             string          `json:"id"`
	PaymentNo      string          `json:"payment_no"`
	BillID         string          `json:"bill_id"`
	Amount         decimal.Decimal `json:"amount"`
	Method         PaymentMethod   `json:"method"`
	Status         PaymentStatus   `json:"status"`
	TransactionRef string          `json:"transaction_ref,omitempty"`
	Remark         string          `json:"remark,omitempty"`
	Operator       string          `json:"operator,omitempty"`
	PaidAt         *time.Time      `json:"paid_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// IsOpen reports whether the payment still reserves part of the bill balance.
func (p *Payment) IsOpen() bool {
	return p.Status == PaymentStatusPending
}

// Complete settles a pending payment.
func (p *Payment) Complete(ref string, now time.Time) error {
	if p.Status != PaymentStatusPending {
		return transitionError("payment", string(p.Status), string(PaymentStatusCompleted))
	}
	p.Status = PaymentStatusCompleted
	if ref != "" {
		p.TransactionRef = ref
	}
	p.PaidAt = &now
	return nil
}

// Fail marks a pending payment as failed.
func (p *Payment) Fail(reason string) error {
	if p.Status != PaymentStatusPending {
		return transitionError("payment", string(p.Status), string(PaymentStatusFailed))
	}
	p.Status = PaymentStatusFailed
	if reason != "" {
		p.Remark = reason
	}
	return nil
}

// Cancel withdraws a pending payment.
func (p *Payment) Cancel(reason string) error {
	if p.Status != PaymentStatusPending {
		return transitionError("payment", string(p.Status), string(PaymentStatusCancelled))
	}
	p.Status = PaymentStatusCancelled
	if reason != "" {
		p.Remark = reason
	}
	return nil
}
