package repository

import (
	"context"
	"time"

	"hotelagent/internal/model"
)

// AgentFilter narrows agent listings. Zero values mean "any".
type AgentFilter struct {
	Status  model.AgentStatus
	Level   model.AgentLevel
	Keyword string
}

// AgentRepository defines data access for agents.
type AgentRepository interface {
	// Create inserts a new agent and returns the stored row.
	Create(ctx context.Context, a *model.Agent) (*model.Agent, error)

	// FindByID returns an agent by ID or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Agent, error)

	// FindByIDs returns the agents with the given IDs keyed by ID. Unknown IDs are omitted.
	FindByIDs(ctx context.Context, ids []string) (map[string]model.Agent, error)

	// List returns a filtered page of agents ordered by newest first.
	List(ctx context.Context, f AgentFilter, pq PageQuery) (*PageResult[model.Agent], error)

	// Update persists all mutable fields of the agent.
	Update(ctx context.Context, a *model.Agent) (*model.Agent, error)

	// ListExpiringBefore returns active or frozen agents whose expiry date is before the given day.
	ListExpiringBefore(ctx context.Context, day time.Time) ([]model.Agent, error)

	// ListWithBillableOrders returns agents owning billable order items that overlap [start, end).
	ListWithBillableOrders(ctx context.Context, start, end time.Time) ([]model.Agent, error)
}
