package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"hotelagent/internal/model"
)

// PaymentTotals are the summed payment amounts of one bill by state.
type PaymentTotals struct {
	Completed decimal.Decimal
	Pending   decimal.Decimal
}

// PaymentRepository defines data access for commission payments.
type PaymentRepository interface {
	Create(ctx context.Context, p *model.Payment) (*model.Payment, error)

	// FindByID returns a payment or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Payment, error)

	// LockByID is FindByID holding a row lock until the surrounding transaction ends.
	LockByID(ctx context.Context, id string) (*model.Payment, error)

	// ListByBill returns the payments of a bill, oldest first.
	ListByBill(ctx context.Context, billID string) ([]model.Payment, error)

	// Update persists status, reference, remark and paid_at.
	Update(ctx context.Context, p *model.Payment) error

	// TotalsByBill sums completed and pending payments of one bill.
	TotalsByBill(ctx context.Context, billID string) (PaymentTotals, error)

	// TotalsByMonth sums completed and pending payments for every bill of a month, keyed by bill ID.
	TotalsByMonth(ctx context.Context, month string) (map[string]PaymentTotals, error)
}
