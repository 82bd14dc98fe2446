package repository

import (
	"context"
	"time"

	"hotelagent/internal/model"
)

// BillFilter narrows bill listings. Zero values mean "any".
type BillFilter struct {
	AgentID string
	Month   string
	Status  model.BillStatus
}

// BillRepository defines data access for monthly agent bills.
type BillRepository interface {
	// Create inserts a bill. A second bill for the same agent and month yields ErrDuplicate.
	Create(ctx context.Context, b *model.AgentBill) (*model.AgentBill, error)

	// FindByID returns a bill or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.AgentBill, error)

	// LockByID is FindByID holding a row lock until the surrounding transaction ends.
	LockByID(ctx context.Context, id string) (*model.AgentBill, error)

	// FindByAgentMonth returns the bill of an agent for a "YYYY-MM" month or sql.ErrNoRows.
	FindByAgentMonth(ctx context.Context, agentID, month string) (*model.AgentBill, error)

	// List returns a filtered page of bills.
	List(ctx context.Context, f BillFilter, pq PageQuery) (*PageResult[model.AgentBill], error)

	// ListByMonth returns every bill of a month ordered by bill number.
	ListByMonth(ctx context.Context, month string) ([]model.AgentBill, error)

	// Update persists figures, status and lifecycle fields.
	Update(ctx context.Context, b *model.AgentBill) error
}

// AuditLogRepository defines data access for the bill audit trail.
type AuditLogRepository interface {
	Create(ctx context.Context, l *model.BillAuditLog) error
	ListByBill(ctx context.Context, billID string) ([]model.BillAuditLog, error)
	// Stats aggregates audit rows created in [from, to).
	Stats(ctx context.Context, from, to time.Time) (*model.AuditStats, error)
}
