package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"hotelagent/internal/model"
	"hotelagent/internal/repository"
)

// AgentPostgres is a PostgreSQL implementation of repository.AgentRepository.
type AgentPostgres struct {
	db *sql.DB
}

// NewAgentPostgres creates a new AgentPostgres repository.
func NewAgentPostgres(db *sql.DB) *AgentPostgres {
	return &AgentPostgres{db: db}
}

var _ repository.AgentRepository = (*AgentPostgres)(nil)

const agentColumns = `id, code, name, contact_name, phone, email, level, commission_rate, status, valid_from, expiry_date, created_at, updated_at`

func scanAgent(s scanner) (model.Agent, error) {
	var a model.Agent
	err := s.Scan(
		&a.ID,
		&a.Code,
		&a.Name,
		&a.ContactName,
		&a.Phone,
		&a.Email,
		&a.Level,
		&a.CommissionRate,
		&a.Status,
		&a.ValidFrom,
		&a.ExpiryDate,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

func (r *AgentPostgres) queryAgents(ctx context.Context, q string, args ...any) ([]model.Agent, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Agent, 0)
	for rows.Next() {
		a, err := scanAgent(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a new agent row and returns the stored record.
func (r *AgentPostgres) Create(ctx context.Context, a *model.Agent) (*model.Agent, error) {
	const q = `
		INSERT INTO agents (id, code, name, contact_name, phone, email, level, commission_rate, status, valid_from, expiry_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + agentColumns
	row := conn(ctx, r.db).QueryRowContext(ctx, q,
		a.ID,
		a.Code,
		a.Name,
		a.ContactName,
		a.Phone,
		a.Email,
		string(a.Level),
		a.CommissionRate,
		string(a.Status),
		dateArg(a.ValidFrom),
		dateArg(a.ExpiryDate),
		a.CreatedAt,
		a.UpdatedAt,
	)
	out, err := scanAgent(row)
	if err != nil {
		return nil, mapError(err)
	}
	return &out, nil
}

// FindByID fetches a single agent by its ID.
func (r *AgentPostgres) FindByID(ctx context.Context, id string) (*model.Agent, error) {
	const q = `SELECT ` + agentColumns + ` FROM agents WHERE id = $1`
	a, err := scanAgent(conn(ctx, r.db).QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByIDs fetches agents by ID and keys them by ID.
func (r *AgentPostgres) FindByIDs(ctx context.Context, ids []string) (map[string]model.Agent, error) {
	out := make(map[string]model.Agent, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	holders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		holders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	q := `SELECT ` + agentColumns + ` FROM agents WHERE id IN (` + strings.Join(holders, ", ") + `)`
	items, err := r.queryAgents(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	for _, a := range items {
		out[a.ID] = a
	}
	return out, nil
}

// List returns a filtered page of agents and the filtered total.
func (r *AgentPostgres) List(ctx context.Context, f repository.AgentFilter, pq repository.PageQuery) (*repository.PageResult[model.Agent], error) {
	var flt filter
	if f.Status != "" {
		flt.add("status = $%d", string(f.Status))
	}
	if f.Level != "" {
		flt.add("level = $%d", string(f.Level))
	}
	if kw := strings.TrimSpace(f.Keyword); kw != "" {
		flt.add("(code ILIKE $%[1]d OR name ILIKE $%[1]d OR contact_name ILIKE $%[1]d)", "%"+kw+"%")
	}

	var total int
	if err := conn(ctx, r.db).QueryRowContext(ctx, `SELECT COUNT(*) FROM agents`+flt.where(), flt.args...).Scan(&total); err != nil {
		return nil, err
	}

	limit, args := flt.page(pq)
	q := `SELECT ` + agentColumns + ` FROM agents` + flt.where() + ` ORDER BY created_at DESC, id DESC` + limit
	items, err := r.queryAgents(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Agent]{
		Items: items,
		Total: total,
	}, nil
}

// Update writes every mutable column and returns the stored record.
func (r *AgentPostgres) Update(ctx context.Context, a *model.Agent) (*model.Agent, error) {
	const q = `
		UPDATE agents
		SET name = $2, contact_name = $3, phone = $4, email = $5, level = $6, commission_rate = $7,
		    status = $8, valid_from = $9, expiry_date = $10, updated_at = $11
		WHERE id = $1
		RETURNING ` + agentColumns
	row := conn(ctx, r.db).QueryRowContext(ctx, q,
		a.ID,
		a.Name,
		a.ContactName,
		a.Phone,
		a.Email,
		string(a.Level),
		a.CommissionRate,
		string(a.Status),
		dateArg(a.ValidFrom),
		dateArg(a.ExpiryDate),
		a.UpdatedAt,
	)
	out, err := scanAgent(row)
	if err != nil {
		return nil, mapError(err)
	}
	return &out, nil
}

// ListExpiringBefore returns active or frozen agents with expiry_date < day.
func (r *AgentPostgres) ListExpiringBefore(ctx context.Context, day time.Time) ([]model.Agent, error) {
	const q = `
		SELECT ` + agentColumns + `
		FROM agents
		WHERE status IN ('active', 'frozen') AND expiry_date < $1
		ORDER BY expiry_date, code`
	return r.queryAgents(ctx, q, dateArg(day))
}

// ListWithBillableOrders returns agents that own billable stays overlapping [start, end).
func (r *AgentPostgres) ListWithBillableOrders(ctx context.Context, start, end time.Time) ([]model.Agent, error) {
	q := `
		SELECT ` + agentColumns + `
		FROM agents a
		WHERE EXISTS (
			SELECT 1 FROM orders o
			JOIN order_items i ON i.order_id = o.id
			WHERE o.agent_id = a.id
			  AND o.status IN ` + billableStatuses + `
			  AND i.check_in < $2 AND i.check_out > $1
		)
		ORDER BY a.code`
	return r.queryAgents(ctx, q, dateArg(start), dateArg(end))
}
