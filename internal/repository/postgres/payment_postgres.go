package postgres

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"

	"hotelagent/internal/model"
	"hotelagent/internal/repository"
)

// PaymentPostgres is a PostgreSQL implementation of repository.PaymentRepository.
type PaymentPostgres struct {
	db *sql.DB
}

// NewPaymentPostgres creates a new PaymentPostgres repository.
func NewPaymentPostgres(db *sql.DB) *PaymentPostgres {
	return &PaymentPostgres{db: db}
}

var _ repository.PaymentRepository = (*PaymentPostgres)(nil)

const paymentColumns = `id, payment_no, bill_id, amount, method, status, transaction_ref, remark, operator, paid_at, created_at, updated_at`

func scanPayment(s scanner) (model.Payment, error) {
	var p model.Payment
	err := s.Scan(
		&p.ID,
		&p.PaymentNo,
		&p.BillID,
		&p.Amount,
		&p.Method,
		&p.Status,
		&p.TransactionRef,
		&p.Remark,
		&p.Operator,
		&p.PaidAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// Create inserts a payment row and returns the stored record.
func (r *PaymentPostgres) Create(ctx context.Context, p *model.Payment) (*model.Payment, error) {
	const q = `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + paymentColumns
	row := conn(ctx, r.db).QueryRowContext(ctx, q,
		p.ID,
		p.PaymentNo,
		p.BillID,
		p.Amount,
		string(p.Method),
		string(p.Status),
		p.TransactionRef,
		p.Remark,
		p.Operator,
		p.PaidAt,
		p.CreatedAt,
		p.UpdatedAt,
	)
	out, err := scanPayment(row)
	if err != nil {
		return nil, mapError(err)
	}
	return &out, nil
}

func (r *PaymentPostgres) find(ctx context.Context, id string, lock bool) (*model.Payment, error) {
	q := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	if lock {
		q += ` FOR UPDATE`
	}
	p, err := scanPayment(conn(ctx, r.db).QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByID fetches a payment by ID.
func (r *PaymentPostgres) FindByID(ctx context.Context, id string) (*model.Payment, error) {
	return r.find(ctx, id, false)
}

// LockByID fetches a payment with SELECT ... FOR UPDATE.
func (r *PaymentPostgres) LockByID(ctx context.Context, id string) (*model.Payment, error) {
	return r.find(ctx, id, true)
}

// ListByBill returns the payments recorded against a bill.
func (r *PaymentPostgres) ListByBill(ctx context.Context, billID string) ([]model.Payment, error) {
	const q = `SELECT ` + paymentColumns + ` FROM payments WHERE bill_id = $1 ORDER BY created_at, id`
	rows, err := conn(ctx, r.db).QueryContext(ctx, q, billID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update writes status, reference, remark and paid_at.
func (r *PaymentPostgres) Update(ctx context.Context, p *model.Payment) error {
	const q = `
		UPDATE payments
		SET status = $2, transaction_ref = $3, remark = $4, paid_at = $5, updated_at = $6
		WHERE id = $1`
	res, err := conn(ctx, r.db).ExecContext(ctx, q,
		p.ID,
		string(p.Status),
		p.TransactionRef,
		p.Remark,
		p.PaidAt,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// TotalsByBill sums completed and pending payment amounts of a bill.
func (r *PaymentPostgres) TotalsByBill(ctx context.Context, billID string) (repository.PaymentTotals, error) {
	const q = `
		SELECT COALESCE(SUM(amount) FILTER (WHERE status = 'completed'), 0),
		       COALESCE(SUM(amount) FILTER (WHERE status = 'pending'), 0)
		FROM payments
		WHERE bill_id = $1`
	var t repository.PaymentTotals
	if err := conn(ctx, r.db).QueryRowContext(ctx, q, billID).Scan(&t.Completed, &t.Pending); err != nil {
		return repository.PaymentTotals{}, err
	}
	return t, nil
}

// TotalsByMonth sums completed and pending payments per bill of a month.
// Bills without payments are absent from the result.
func (r *PaymentPostgres) TotalsByMonth(ctx context.Context, month string) (map[string]repository.PaymentTotals, error) {
	const q = `
		SELECT p.bill_id,
		       COALESCE(SUM(p.amount) FILTER (WHERE p.status = 'completed'), 0),
		       COALESCE(SUM(p.amount) FILTER (WHERE p.status = 'pending'), 0)
		FROM payments p
		JOIN agent_bills b ON b.id = p.bill_id
		WHERE b.bill_month = $1
		GROUP BY p.bill_id`
	rows, err := conn(ctx, r.db).QueryContext(ctx, q, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]repository.PaymentTotals)
	for rows.Next() {
		var id string
		var completed, pending decimal.Decimal
		if err := rows.Scan(&id, &completed, &pending); err != nil {
			return nil, err
		}
		out[id] = repository.PaymentTotals{Completed: completed, Pending: pending}
	}
	return out, rows.Err()
}
