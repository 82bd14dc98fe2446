package postgres

import (
	"context"
	"database/sql"
	"time"

	"hotelagent/internal/model"
	"hotelagent/internal/repository"
)

// OrderPostgres is a PostgreSQL implementation of repository.OrderRepository.
type OrderPostgres struct {
	db *sql.DB
}

// NewOrderPostgres creates a new OrderPostgres repository.
func NewOrderPostgres(db *sql.DB) *OrderPostgres {
	return &OrderPostgres{db: db}
}

var _ repository.OrderRepository = (*OrderPostgres)(nil)

const (
	orderColumns = `id, order_no, agent_id, hotel_name, guest_name, status, total_amount, total_cost, remark, confirmed_at, cancelled_at, created_at, updated_at`
	itemColumns  = `id, order_id, room_type, quantity, unit_price, cost_price, check_in, check_out, nights, amount, cost_amount, created_at`
)

func scanOrder(s scanner) (model.Order, error) {
	var o model.Order
	err := s.Scan(
		&o.ID,
		&o.OrderNo,
		&o.AgentID,
		&o.HotelName,
		&o.GuestName,
		&o.Status,
		&o.TotalAmount,
		&o.TotalCost,
		&o.Remark,
		&o.ConfirmedAt,
		&o.CancelledAt,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}

func itemDest(it *model.OrderItem) []any {
	return []any{
		&it.ID,
		&it.OrderID,
		&it.RoomType,
		&it.Quantity,
		&it.UnitPrice,
		&it.CostPrice,
		&it.CheckIn,
		&it.CheckOut,
		&it.Nights,
		&it.Amount,
		&it.CostAmount,
		&it.CreatedAt,
	}
}

// Create inserts the order row followed by its items.
// Callers wanting atomicity run it inside repository.Transactor.
func (r *OrderPostgres) Create(ctx context.Context, o *model.Order) (*model.Order, error) {
	const q = `
		INSERT INTO orders (id, order_no, agent_id, hotel_name, guest_name, status, total_amount, total_cost, remark, confirmed_at, cancelled_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + orderColumns
	row := conn(ctx, r.db).QueryRowContext(ctx, q,
		o.ID,
		o.OrderNo,
		o.AgentID,
		o.HotelName,
		o.GuestName,
		string(o.Status),
		o.TotalAmount,
		o.TotalCost,
		o.Remark,
		o.ConfirmedAt,
		o.CancelledAt,
		o.CreatedAt,
		o.UpdatedAt,
	)
	out, err := scanOrder(row)
	if err != nil {
		return nil, mapError(err)
	}
	out.Items = make([]model.OrderItem, 0, len(o.Items))
	for i := range o.Items {
		it := o.Items[i]
		it.OrderID = out.ID
		if err := r.AddItem(ctx, &it); err != nil {
			return nil, err
		}
		out.Items = append(out.Items, it)
	}
	return &out, nil
}

func (r *OrderPostgres) find(ctx context.Context, id string, lock bool) (*model.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	if lock {
		q += ` FOR UPDATE`
	}
	o, err := scanOrder(conn(ctx, r.db).QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, err
	}
	items, err := r.items(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *OrderPostgres) items(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	const q = `SELECT ` + itemColumns + ` FROM order_items WHERE order_id = $1 ORDER BY created_at, id`
	rows, err := conn(ctx, r.db).QueryContext(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.OrderItem, 0)
	for rows.Next() {
		var it model.OrderItem
		if err := rows.Scan(itemDest(&it)...); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID fetches an order and its items.
func (r *OrderPostgres) FindByID(ctx context.Context, id string) (*model.Order, error) {
	return r.find(ctx, id, false)
}

// LockByID fetches an order with SELECT ... FOR UPDATE.
func (r *OrderPostgres) LockByID(ctx context.Context, id string) (*model.Order, error) {
	return r.find(ctx, id, true)
}

// List returns a filtered page of orders without their items.
func (r *OrderPostgres) List(ctx context.Context, f repository.OrderFilter, pq repository.PageQuery) (*repository.PageResult[model.Order], error) {
	var flt filter
	if f.AgentID != "" {
		flt.add("agent_id = $%d", f.AgentID)
	}
	if f.Status != "" {
		flt.add("status = $%d", string(f.Status))
	}

	var total int
	if err := conn(ctx, r.db).QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`+flt.where(), flt.args...).Scan(&total); err != nil {
		return nil, err
	}

	limit, args := flt.page(pq)
	q := `SELECT ` + orderColumns + ` FROM orders` + flt.where() + ` ORDER BY created_at DESC, id DESC` + limit
	rows, err := conn(ctx, r.db).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Order]{
		Items: items,
		Total: total,
	}, nil
}

// Update writes status, totals and lifecycle timestamps.
func (r *OrderPostgres) Update(ctx context.Context, o *model.Order) error {
	const q = `
		UPDATE orders
		SET hotel_name = $2, guest_name = $3, status = $4, total_amount = $5, total_cost = $6,
		    remark = $7, confirmed_at = $8, cancelled_at = $9, updated_at = $10
		WHERE id = $1`
	res, err := conn(ctx, r.db).ExecContext(ctx, q,
		o.ID,
		o.HotelName,
		o.GuestName,
		string(o.Status),
		o.TotalAmount,
		o.TotalCost,
		o.Remark,
		o.ConfirmedAt,
		o.CancelledAt,
		o.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// AddItem inserts an order item.
func (r *OrderPostgres) AddItem(ctx context.Context, it *model.OrderItem) error {
	const q = `
		INSERT INTO order_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := conn(ctx, r.db).ExecContext(ctx, q,
		it.ID,
		it.OrderID,
		it.RoomType,
		it.Quantity,
		it.UnitPrice,
		it.CostPrice,
		dateArg(it.CheckIn),
		dateArg(it.CheckOut),
		it.Nights,
		it.Amount,
		it.CostAmount,
		it.CreatedAt,
	)
	return mapError(err)
}

// DeleteItem removes one item of an order.
func (r *OrderPostgres) DeleteItem(ctx context.Context, orderID, itemID string) error {
	const q = `DELETE FROM order_items WHERE id = $1 AND order_id = $2`
	res, err := conn(ctx, r.db).ExecContext(ctx, q, itemID, orderID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// ListBillableItems returns the agent's items of billable orders whose stay overlaps [start, end).
func (r *OrderPostgres) ListBillableItems(ctx context.Context, agentID string, start, end time.Time) ([]model.BillableItem, error) {
	q := `
		SELECT o.id, o.status, i.id, i.order_id, i.room_type, i.quantity, i.unit_price, i.cost_price,
		       i.check_in, i.check_out, i.nights, i.amount, i.cost_amount, i.created_at
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE o.agent_id = $1
		  AND o.status IN ` + billableStatuses + `
		  AND i.check_in < $3 AND i.check_out > $2
		ORDER BY i.check_in, i.id`
	rows, err := conn(ctx, r.db).QueryContext(ctx, q, agentID, dateArg(start), dateArg(end))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.BillableItem, 0)
	for rows.Next() {
		var bi model.BillableItem
		dest := append([]any{&bi.OrderID, &bi.OrderStatus}, itemDest(&bi.Item)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		out = append(out, bi)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// requireRow turns a zero-row update or delete into sql.ErrNoRows.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
