package repository

import (
	"context"
	"time"

	"hotelagent/internal/model"
)

// OrderFilter narrows order listings. Zero values mean "any".
type OrderFilter struct {
	AgentID string
	Status  model.OrderStatus
}

// OrderRepository defines data access for orders and their items.
type OrderRepository interface {
	// Create inserts the order together with its items.
	Create(ctx context.Context, o *model.Order) (*model.Order, error)

	// FindByID returns an order with its items or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Order, error)

	// LockByID is FindByID holding a row lock until the surrounding transaction ends.
	LockByID(ctx context.Context, id string) (*model.Order, error)

	// List returns a filtered page of orders without items.
	List(ctx context.Context, f OrderFilter, pq PageQuery) (*PageResult[model.Order], error)

	// Update persists status, totals and lifecycle timestamps.
	Update(ctx context.Context, o *model.Order) error

	// AddItem inserts a single item row.
	AddItem(ctx context.Context, it *model.OrderItem) error

	// DeleteItem removes an item of an order. It returns sql.ErrNoRows when nothing was deleted.
	DeleteItem(ctx context.Context, orderID, itemID string) error

	// ListBillableItems returns the agent's items of billable orders whose stay overlaps [start, end).
	ListBillableItems(ctx context.Context, agentID string, start, end time.Time) ([]model.BillableItem, error)
}
