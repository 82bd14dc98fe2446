package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"hotelagent/internal/metrics"
	"hotelagent/internal/model"
	"hotelagent/internal/repository"
)

// CreatePaymentInput carries a new payment against a bill.
type CreatePaymentInput struct {
	Amount         decimal.Decimal
	Method         model.PaymentMethod
	TransactionRef string
	Remark         string
	Operator       string
}

// ReconcileStatus classifies a bill against its payments.
type ReconcileStatus string

const (
	ReconcileSettled        ReconcileStatus = "settled"
	ReconcileOutstanding    ReconcileStatus = "outstanding"
	ReconcileOverpaid       ReconcileStatus = "overpaid"
	ReconcileStatusMismatch ReconcileStatus = "status_mismatch"
	ReconcileLedgerMismatch ReconcileStatus = "ledger_mismatch"
)

// ReconcileItem is the reconciliation line of one bill.
type ReconcileItem struct {
	BillID            string           `json:"bill_id"`
	BillNo            string           `json:"bill_no"`
	AgentID           string           `json:"agent_id"`
	BillStatus        model.BillStatus `json:"bill_status"`
	CommissionAmount  decimal.Decimal  `json:"commission_amount"`
	PaidAmount        decimal.Decimal  `json:"paid_amount"`
	CompletedPayments decimal.Decimal  `json:"completed_payments"`
	PendingPayments   decimal.Decimal  `json:"pending_payments"`
	Outstanding       decimal.Decimal  `json:"outstanding"`
	Result            ReconcileStatus  `json:"result"`
}

// ReconcileReport is the reconciliation of all bills of a month.
type ReconcileReport struct {
	Month  string                  `json:"month"`
	Counts map[ReconcileStatus]int `json:"counts"`
	Items  []ReconcileItem         `json:"items"`
}

// PaymentService defines the use cases for commission payments.
type PaymentService interface {
	// Create records a pending payment on a confirmed bill. The amount may not exceed the commission
	// still open after completed and pending payments.
	Create(ctx context.Context, billID string, in CreatePaymentInput) (*model.Payment, error)
	Get(ctx context.Context, id string) (*model.Payment, error)
	ListByBill(ctx context.Context, billID string) ([]model.Payment, error)

	// Complete settles a pending payment and adds it to the bill, closing the bill once fully paid.
	Complete(ctx context.Context, id, transactionRef, operator string) (*model.Payment, error)
	Fail(ctx context.Context, id, reason string) (*model.Payment, error)
	Cancel(ctx context.Context, id, reason string) (*model.Payment, error)

	Reconcile(ctx context.Context, m model.Month) (*ReconcileReport, error)
}

type paymentService struct {
	tx       repository.Transactor
	bills    repository.BillRepository
	payments repository.PaymentRepository
	audits   repository.AuditLogRepository
	cache    ReportCache
	metrics  *metrics.Metrics
	now      func() time.Time
}

// NewPaymentService constructs a new PaymentService.
func NewPaymentService(tx repository.Transactor, bills repository.BillRepository, payments repository.PaymentRepository, audits repository.AuditLogRepository, cache ReportCache, m *metrics.Metrics) PaymentService {
	return &paymentService{tx: tx, bills: bills, payments: payments, audits: audits, cache: cache, metrics: m, now: time.Now}
}

func (s *paymentService) Create(ctx context.Context, billID string, in CreatePaymentInput) (*model.Payment, error) {
	if !in.Amount.IsPositive() {
		return nil, invalid("payment amount must be greater than zero")
	}
	if !model.FitsScale(in.Amount, model.MoneyScale) {
		return nil, invalid("payment amount has more than 2 decimal places")
	}
	if !in.Method.Valid() {
		return nil, invalid("unknown payment method %q", in.Method)
	}

	var out *model.Payment
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		// The bill lock serializes concurrent payments against the same balance.
		b, err := s.bills.LockByID(ctx, billID)
		if err != nil {
			return notFound("bill", err)
		}
		if b.Status != model.BillStatusConfirmed {
			return invalid("payments require a confirmed bill, bill %s is %s", b.BillNo, b.Status)
		}
		totals, err := s.payments.TotalsByBill(ctx, b.ID)
		if err != nil {
			return err
		}
		available := b.CommissionAmount.Sub(b.PaidAmount).Sub(totals.Pending)
		if in.Amount.GreaterThan(available) {
			return fmt.Errorf("%w: requested %s, available %s", ErrAmountExceeded, in.Amount.StringFixed(2), available.StringFixed(2))
		}

		now := s.now().UTC()
		p := &model.Payment{
			ID:             newID(),
			PaymentNo:      documentNo("PM", now),
			BillID:         b.ID,
			Amount:         in.Amount,
			Method:         in.Method,
			Status:         model.PaymentStatusPending,
			TransactionRef: in.TransactionRef,
			Remark:         in.Remark,
			Operator:       in.Operator,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		out, err = s.payments.Create(ctx, p)
		return conflict(err)
	})
	if err != nil {
		return nil, err
	}
	s.metrics.PaymentTransition(string(model.PaymentStatusPending))
	return out, nil
}

func (s *paymentService) Get(ctx context.Context, id string) (*model.Payment, error) {
	if id == "" {
		return nil, invalid("id is required")
	}
	p, err := s.payments.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("payment", err)
	}
	return p, nil
}

func (s *paymentService) ListByBill(ctx context.Context, billID string) ([]model.Payment, error) {
	if _, err := s.bills.FindByID(ctx, billID); err != nil {
		return nil, notFound("bill", err)
	}
	return s.payments.ListByBill(ctx, billID)
}

func (s *paymentService) Complete(ctx context.Context, id, transactionRef, operator string) (*model.Payment, error) {
	if operator == "" {
		operator = SystemOperator
	}
	var (
		out   *model.Payment
		month string
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.payments.LockByID(ctx, id)
		if err != nil {
			return notFound("payment", err)
		}
		b, err := s.bills.LockByID(ctx, p.BillID)
		if err != nil {
			return notFound("bill", err)
		}
		now := s.now().UTC()
		if err := p.Complete(transactionRef, now); err != nil {
			return domainError(err)
		}
		if p.Amount.GreaterThan(b.Outstanding()) {
			return fmt.Errorf("%w: payment %s is %s, bill %s has %s outstanding",
				ErrAmountExceeded, p.PaymentNo, p.Amount.StringFixed(2), b.BillNo, b.Outstanding().StringFixed(2))
		}
		from := b.Status
		closed, err := b.ApplyPayment(p.Amount, now)
		if err != nil {
			return domainError(err)
		}
		p.UpdatedAt = now
		b.UpdatedAt = now
		if err := s.payments.Update(ctx, p); err != nil {
			return err
		}
		if err := s.bills.Update(ctx, b); err != nil {
			return err
		}

		remark := fmt.Sprintf("payment %s %s", p.PaymentNo, p.Amount.StringFixed(2))
		if err := writeAudit(ctx, s.audits, b.ID, model.AuditActionPayment, from, from, operator, remark, now); err != nil {
			return err
		}
		if closed {
			if err := writeAudit(ctx, s.audits, b.ID, model.AuditActionPaid, from, b.Status, operator, "fully paid", now); err != nil {
				return err
			}
		}
		out = p
		month = b.BillMonth
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.metrics.PaymentTransition(string(model.PaymentStatusCompleted))
	invalidateMonth(ctx, s.cache, month)
	return out, nil
}

func (s *paymentService) close(ctx context.Context, id string, fn func(p *model.Payment) error) (*model.Payment, error) {
	var out *model.Payment
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.payments.LockByID(ctx, id)
		if err != nil {
			return notFound("payment", err)
		}
		if err := fn(p); err != nil {
			return domainError(err)
		}
		p.UpdatedAt = s.now().UTC()
		if err := s.payments.Update(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.metrics.PaymentTransition(string(out.Status))
	return out, nil
}

func (s *paymentService) Fail(ctx context.Context, id, reason string) (*model.Payment, error) {
	return s.close(ctx, id, func(p *model.Payment) error { return p.Fail(reason) })
}

func (s *paymentService) Cancel(ctx context.Context, id, reason string) (*model.Payment, error) {
	return s.close(ctx, id, func(p *model.Payment) error { return p.Cancel(reason) })
}

// classify decides the reconciliation result of a bill given its completed payments.
func classify(b *model.AgentBill, completed decimal.Decimal) ReconcileStatus {
	switch {
	case !b.PaidAmount.Equal(completed):
		return ReconcileLedgerMismatch
	case b.PaidAmount.GreaterThan(b.CommissionAmount):
		return ReconcileOverpaid
	case b.Status == model.BillStatusPaid && !b.FullyPaid():
		return ReconcileStatusMismatch
	case b.Status == model.BillStatusConfirmed && b.FullyPaid():
		// Includes zero-commission bills still waiting for MarkPaid.
		return ReconcileStatusMismatch
	case b.Status == model.BillStatusPaid:
		return ReconcileSettled
	default:
		return ReconcileOutstanding
	}
}

func (s *paymentService) Reconcile(ctx context.Context, m model.Month) (*ReconcileReport, error) {
	bills, err := s.bills.ListByMonth(ctx, m.String())
	if err != nil {
		return nil, err
	}
	totals, err := s.payments.TotalsByMonth(ctx, m.String())
	if err != nil {
		return nil, err
	}

	rep := &ReconcileReport{
		Month:  m.String(),
		Counts: make(map[ReconcileStatus]int),
		Items:  make([]ReconcileItem, 0, len(bills)),
	}
	for i := range bills {
		b := &bills[i]
		t, ok := totals[b.ID]
		if !ok {
			t = repository.PaymentTotals{Completed: decimal.Zero, Pending: decimal.Zero}
		}
		result := classify(b, t.Completed)
		rep.Counts[result]++
		rep.Items = append(rep.Items, ReconcileItem{
			BillID:            b.ID,
			BillNo:            b.BillNo,
			AgentID:           b.AgentID,
			BillStatus:        b.Status,
			CommissionAmount:  b.CommissionAmount,
			PaidAmount:        b.PaidAmount,
			CompletedPayments: t.Completed,
			PendingPayments:   t.Pending,
			Outstanding:       b.Outstanding(),
			Result:            result,
		})
	}
	return rep, nil
}
