package postgres

import (
	"context"
	"database/sql"

	"hotelagent/internal/model"
	"hotelagent/internal/repository"
)

// BillPostgres is a PostgreSQL implementation of repository.BillRepository.
type BillPostgres struct {
	db *sql.DB
}

// NewBillPostgres creates a new BillPostgres repository.
func NewBillPostgres(db *sql.DB) *BillPostgres {
	return &BillPostgres{db: db}
}

var _ repository.BillRepository = (*BillPostgres)(nil)

const billColumns = `id, bill_no, agent_id, bill_month, period_start, period_end, order_count,
	total_amount, total_cost, total_profit, commission_basis, commission_base, commission_rate, commission_amount,
	paid_amount, status, confirmed_by, confirmed_at, paid_at, remark, created_at, updated_at`

func scanBill(s scanner) (model.AgentBill, error) {
	var b model.AgentBill
	err := s.Scan(
		&b.ID,
		&b.BillNo,
		&b.AgentID,
		&b.BillMonth,
		&b.PeriodStart,
		&b.PeriodEnd,
		&b.OrderCount,
		&b.TotalAmount,
		&b.TotalCost,
		&b.TotalProfit,
		&b.CommissionBasis,
		&b.CommissionBase,
		&b.CommissionRate,
		&b.CommissionAmount,
		&b.PaidAmount,
		&b.Status,
		&b.ConfirmedBy,
		&b.ConfirmedAt,
		&b.PaidAt,
		&b.Remark,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	return b, err
}

func (r *BillPostgres) queryBills(ctx context.Context, q string, args ...any) ([]model.AgentBill, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.AgentBill, 0)
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a bill. The (agent_id, bill_month) unique key maps to repository.ErrDuplicate.
func (r *BillPostgres) Create(ctx context.Context, b *model.AgentBill) (*model.AgentBill, error) {
	const q = `
		INSERT INTO agent_bills (` + billColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING ` + billColumns
	row := conn(ctx, r.db).QueryRowContext(ctx, q,
		b.ID,
		b.BillNo,
		b.AgentID,
		b.BillMonth,
		dateArg(b.PeriodStart),
		dateArg(b.PeriodEnd),
		b.OrderCount,
		b.TotalAmount,
		b.TotalCost,
		b.TotalProfit,
		string(b.CommissionBasis),
		b.CommissionBase,
		b.CommissionRate,
		b.CommissionAmount,
		b.PaidAmount,
		string(b.Status),
		b.ConfirmedBy,
		b.ConfirmedAt,
		b.PaidAt,
		b.Remark,
		b.CreatedAt,
		b.UpdatedAt,
	)
	out, err := scanBill(row)
	if err != nil {
		return nil, mapError(err)
	}
	return &out, nil
}

func (r *BillPostgres) find(ctx context.Context, id string, lock bool) (*model.AgentBill, error) {
	q := `SELECT ` + billColumns + ` FROM agent_bills WHERE id = $1`
	if lock {
		q += ` FOR UPDATE`
	}
	b, err := scanBill(conn(ctx, r.db).QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// FindByID fetches a bill by ID.
func (r *BillPostgres) FindByID(ctx context.Context, id string) (*model.AgentBill, error) {
	return r.find(ctx, id, false)
}

// LockByID fetches a bill with SELECT ... FOR UPDATE.
func (r *BillPostgres) LockByID(ctx context.Context, id string) (*model.AgentBill, error) {
	return r.find(ctx, id, true)
}

// FindByAgentMonth fetches the bill of an agent for a month.
func (r *BillPostgres) FindByAgentMonth(ctx context.Context, agentID, month string) (*model.AgentBill, error) {
	const q = `SELECT ` + billColumns + ` FROM agent_bills WHERE agent_id = $1 AND bill_month = $2`
	b, err := scanBill(conn(ctx, r.db).QueryRowContext(ctx, q, agentID, month))
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// List returns a filtered page of bills, newest month first.
func (r *BillPostgres) List(ctx context.Context, f repository.BillFilter, pq repository.PageQuery) (*repository.PageResult[model.AgentBill], error) {
	var flt filter
	if f.AgentID != "" {
		flt.add("agent_id = $%d", f.AgentID)
	}
	if f.Month != "" {
		flt.add("bill_month = $%d", f.Month)
	}
	if f.Status != "" {
		flt.add("status = $%d", string(f.Status))
	}

	var total int
	if err := conn(ctx, r.db).QueryRowContext(ctx, `SELECT COUNT(*) FROM agent_bills`+flt.where(), flt.args...).Scan(&total); err != nil {
		return nil, err
	}

	limit, args := flt.page(pq)
	q := `SELECT ` + billColumns + ` FROM agent_bills` + flt.where() + ` ORDER BY bill_month DESC, bill_no` + limit
	items, err := r.queryBills(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return &repository.PageResult[model.AgentBill]{
		Items: items,
		Total: total,
	}, nil
}

// ListByMonth returns all bills of a month.
func (r *BillPostgres) ListByMonth(ctx context.Context, month string) ([]model.AgentBill, error) {
	const q = `SELECT ` + billColumns + ` FROM agent_bills WHERE bill_month = $1 ORDER BY bill_no`
	return r.queryBills(ctx, q, month)
}

// Update writes figures, status and lifecycle fields.
func (r *BillPostgres) Update(ctx context.Context, b *model.AgentBill) error {
	const q = `
		UPDATE agent_bills
		SET order_count = $2, total_amount = $3, total_cost = $4, total_profit = $5,
		    commission_basis = $6, commission_base = $7, commission_rate = $8, commission_amount = $9,
		    paid_amount = $10, status = $11, confirmed_by = $12, confirmed_at = $13, paid_at = $14,
		    remark = $15, updated_at = $16
		WHERE id = $1`
	res, err := conn(ctx, r.db).ExecContext(ctx, q,
		b.ID,
		b.OrderCount,
		b.TotalAmount,
		b.TotalCost,
		b.TotalProfit,
		string(b.CommissionBasis),
		b.CommissionBase,
		b.CommissionRate,
		b.CommissionAmount,
		b.PaidAmount,
		string(b.Status),
		b.ConfirmedBy,
		b.ConfirmedAt,
		b.PaidAt,
		b.Remark,
		b.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}
