package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelagent/internal/model"
)

var paymentCols = []string{"id", "payment_no", "bill_id", "amount", "method", "status", "transaction_ref", "remark", "operator", "paid_at", "created_at", "updated_at"}

func paymentRows(id string, status model.PaymentStatus) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows(paymentCols).
		AddRow(id, "PM20250201100000beef", "bill-1", "50.00", "bank_transfer", string(status), "", "", "alice", nil, now, now)
}

func TestPaymentPostgres_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPaymentPostgres(db)

	p := &model.Payment{ID: "pay-1", BillID: "bill-1", Amount: decimal.RequireFromString("50"),
		Method: model.PaymentMethodBankTransfer, Status: model.PaymentStatusPending}

	args := anyArgs(12)
	args[0], args[2], args[4], args[5] = "pay-1", "bill-1", "bank_transfer", "pending"
	mock.ExpectQuery("INSERT INTO payments").
		WithArgs(args...).
		WillReturnRows(paymentRows("pay-1", model.PaymentStatusPending))

	out, err := repo.Create(context.Background(), p)

	require.NoError(t, err)
	assert.Equal(t, model.PaymentMethodBankTransfer, out.Method)
	assert.True(t, out.Amount.Equal(decimal.RequireFromString("50")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentPostgres_Find(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPaymentPostgres(db)

	mock.ExpectQuery("FROM payments WHERE id = \\$1 FOR UPDATE").
		WithArgs("pay-1").
		WillReturnRows(paymentRows("pay-1", model.PaymentStatusPending))
	p, err := repo.LockByID(context.Background(), "pay-1")
	require.NoError(t, err)
	assert.True(t, p.IsOpen())

	mock.ExpectQuery("FROM payments WHERE id = \\$1$").
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)
	_, err = repo.FindByID(context.Background(), "nope")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestPaymentPostgres_ListByBill(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPaymentPostgres(db)

	mock.ExpectQuery("FROM payments WHERE bill_id = \\$1").
		WithArgs("bill-1").
		WillReturnRows(paymentRows("pay-1", model.PaymentStatusCompleted))

	items, err := repo.ListByBill(context.Background(), "bill-1")

	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestPaymentPostgres_Update(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPaymentPostgres(db)
	paid := time.Now().UTC()

	mock.ExpectExec("UPDATE payments SET").
		WithArgs("pay-1", "completed", "TX-1", "", &paid, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), &model.Payment{ID: "pay-1", Status: model.PaymentStatusCompleted, TransactionRef: "TX-1", PaidAt: &paid})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentPostgres_TotalsByBill(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPaymentPostgres(db)

	mock.ExpectQuery("FILTER \\(WHERE status = 'completed'\\)").
		WithArgs("bill-1").
		WillReturnRows(sqlmock.NewRows([]string{"completed", "pending"}).AddRow("30.00", "20.00"))

	tot, err := repo.TotalsByBill(context.Background(), "bill-1")

	require.NoError(t, err)
	assert.True(t, tot.Completed.Equal(decimal.RequireFromString("30")))
	assert.True(t, tot.Pending.Equal(decimal.RequireFromString("20")))
}

func TestPaymentPostgres_TotalsByMonth(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPaymentPostgres(db)

	mock.ExpectQuery("JOIN agent_bills b ON b.id = p.bill_id WHERE b.bill_month = \\$1 GROUP BY p.bill_id").
		WithArgs("2025-01").
		WillReturnRows(sqlmock.NewRows([]string{"bill_id", "completed", "pending"}).
			AddRow("bill-1", "80.00", "0").
			AddRow("bill-2", "10.00", "5.00"))

	got, err := repo.TotalsByMonth(context.Background(), "2025-01")

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.True(t, got["bill-2"].Pending.Equal(decimal.RequireFromString("5")))
}
