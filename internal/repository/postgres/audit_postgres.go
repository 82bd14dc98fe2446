package postgres

import (
	"context"
	"database/sql"
	"time"

	"hotelagent/internal/model"
	"hotelagent/internal/repository"
)

// AuditLogPostgres is a PostgreSQL implementation of repository.AuditLogRepository.
type AuditLogPostgres struct {
	db *sql.DB
}

// NewAuditLogPostgres creates a new AuditLogPostgres repository.
func NewAuditLogPostgres(db *sql.DB) *AuditLogPostgres {
	return &AuditLogPostgres{db: db}
}

var _ repository.AuditLogRepository = (*AuditLogPostgres)(nil)

// Create appends an audit row.
func (r *AuditLogPostgres) Create(ctx context.Context, l *model.BillAuditLog) error {
	const q = `
		INSERT INTO bill_audit_logs (id, bill_id, action, from_status, to_status, operator, remark, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := conn(ctx, r.db).ExecContext(ctx, q,
		l.ID,
		l.BillID,
		string(l.Action),
		string(l.FromStatus),
		string(l.ToStatus),
		l.Operator,
		l.Remark,
		l.CreatedAt,
	)
	return err
}

// ListByBill returns the audit trail of a bill, oldest first.
func (r *AuditLogPostgres) ListByBill(ctx context.Context, billID string) ([]model.BillAuditLog, error) {
	const q = `
		SELECT id, bill_id, action, from_status, to_status, operator, remark, created_at
		FROM bill_audit_logs
		WHERE bill_id = $1
		ORDER BY created_at, id`
	rows, err := conn(ctx, r.db).QueryContext(ctx, q, billID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.BillAuditLog, 0)
	for rows.Next() {
		var l model.BillAuditLog
		if err := rows.Scan(
			&l.ID,
			&l.BillID,
			&l.Action,
			&l.FromStatus,
			&l.ToStatus,
			&l.Operator,
			&l.Remark,
			&l.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Stats counts audit rows in [from, to) by action and by operator.
func (r *AuditLogPostgres) Stats(ctx context.Context, from, to time.Time) (*model.AuditStats, error) {
	const qAction = `
		SELECT action, COUNT(*) FROM bill_audit_logs
		WHERE created_at >= $1 AND created_at < $2
		GROUP BY action`
	const qOperator = `
		SELECT operator, COUNT(*) FROM bill_audit_logs
		WHERE created_at >= $1 AND created_at < $2
		GROUP BY operator`

	stats := &model.AuditStats{From: from, To: to}
	var err error
	if stats.ByAction, err = r.countBy(ctx, qAction, from, to); err != nil {
		return nil, err
	}
	if stats.ByOperator, err = r.countBy(ctx, qOperator, from, to); err != nil {
		return nil, err
	}
	for _, n := range stats.ByAction {
		stats.Total += n
	}
	return stats, nil
}

func (r *AuditLogPostgres) countBy(ctx context.Context, q string, from, to time.Time) (map[string]int, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, q, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return nil, err
		}
		out[key] = n
	}
	return out, rows.Err()
}
