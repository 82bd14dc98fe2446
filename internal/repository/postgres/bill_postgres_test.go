package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelagent/internal/model"
	"hotelagent/internal/repository"
)

var billCols = []string{"id", "bill_no", "agent_id", "bill_month", "period_start", "period_end", "order_count",
	"total_amount", "total_cost", "total_profit", "commission_basis", "commission_base", "commission_rate", "commission_amount",
	"paid_amount", "status", "confirmed_by", "confirmed_at", "paid_at", "remark", "created_at", "updated_at"}

func billRows(ids ...string) *sqlmock.Rows {
	now := time.Now().UTC()
	rows := sqlmock.NewRows(billCols)
	for _, id := range ids {
		rows.AddRow(id, "BL202501-SUN001", "agent-1", "2025-01",
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), 2,
			"1000.00", "780.00", "220.00", "revenue", "1000.00", "0.0800", "80.00",
			"0.00", "confirmed", "alice", now, nil, "", now, now)
	}
	return rows
}

func TestBillPostgres_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewBillPostgres(db)

	b := &model.AgentBill{
		ID:          "bill-1",
		BillNo:      "BL202501-SUN001",
		AgentID:     "agent-1",
		BillMonth:   "2025-01",
		PeriodStart: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		Status:      model.BillStatusPending,
	}

	t.Run("success", func(t *testing.T) {
		args := anyArgs(22)
		args[0], args[3], args[4], args[5], args[15] = "bill-1", "2025-01", "2025-01-01", "2025-02-01", "pending"
		mock.ExpectQuery("INSERT INTO agent_bills").
			WithArgs(args...).
			WillReturnRows(billRows("bill-1"))

		out, err := repo.Create(context.Background(), b)

		require.NoError(t, err)
		assert.Equal(t, "bill-1", out.ID)
		assert.True(t, out.CommissionAmount.Equal(decimal.RequireFromString("80")))
		assert.Equal(t, model.CommissionBasisRevenue, out.CommissionBasis)
		assert.Nil(t, out.PaidAt)
	})

	t.Run("same agent and month", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO agent_bills").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "agent_bills_agent_id_bill_month_key"})

		out, err := repo.Create(context.Background(), b)

		assert.Nil(t, out)
		assert.ErrorIs(t, err, repository.ErrDuplicate)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBillPostgres_Find(t *testing.T) {
	db, mock := newMock(t)
	repo := NewBillPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("FROM agent_bills WHERE id = \\$1$").WithArgs("bill-1").WillReturnRows(billRows("bill-1"))
	b, err := repo.FindByID(ctx, "bill-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", b.ConfirmedBy)
	require.NotNil(t, b.ConfirmedAt)

	mock.ExpectQuery("FROM agent_bills WHERE id = \\$1 FOR UPDATE").WithArgs("bill-1").WillReturnRows(billRows("bill-1"))
	_, err = repo.LockByID(ctx, "bill-1")
	require.NoError(t, err)

	mock.ExpectQuery("FROM agent_bills WHERE agent_id = \\$1 AND bill_month = \\$2").
		WithArgs("agent-1", "2025-02").
		WillReturnError(sql.ErrNoRows)
	_, err = repo.FindByAgentMonth(ctx, "agent-1", "2025-02")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBillPostgres_List(t *testing.T) {
	db, mock := newMock(t)
	repo := NewBillPostgres(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM agent_bills WHERE bill_month = \\$1 AND status = \\$2").
		WithArgs("2025-01", "confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery("ORDER BY bill_month DESC, bill_no LIMIT \\$3 OFFSET \\$4").
		WithArgs("2025-01", "confirmed", 20, 0).
		WillReturnRows(billRows("bill-1", "bill-2"))

	res, err := repo.List(context.Background(),
		repository.BillFilter{Month: "2025-01", Status: model.BillStatusConfirmed},
		repository.PageQuery{Limit: 20})

	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	assert.Len(t, res.Items, 2)
}

func TestBillPostgres_ListByMonth(t *testing.T) {
	db, mock := newMock(t)
	repo := NewBillPostgres(db)

	mock.ExpectQuery("FROM agent_bills WHERE bill_month = \\$1 ORDER BY bill_no").
		WithArgs("2025-01").
		WillReturnRows(billRows("bill-1"))

	items, err := repo.ListByMonth(context.Background(), "2025-01")

	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestBillPostgres_Update(t *testing.T) {
	db, mock := newMock(t)
	repo := NewBillPostgres(db)
	b := &model.AgentBill{ID: "bill-1", Status: model.BillStatusPaid}

	mock.ExpectExec("UPDATE agent_bills SET").WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Update(context.Background(), b))

	mock.ExpectExec("UPDATE agent_bills SET").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Update(context.Background(), b), sql.ErrNoRows)
}
