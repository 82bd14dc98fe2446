package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentBill_ConfirmThenPay(t *testing.T) {
	now := time.Date(2025, 2, 3, 9, 0, 0, 0, time.UTC)
	b := &AgentBill{Status: BillStatusPending, CommissionAmount: dec("100"), PaidAmount: dec("0")}

	_, err := b.ApplyPayment(dec("10"), now)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.ErrorIs(t, b.MarkPaid(now), ErrInvalidTransition)

	require.NoError(t, b.Confirm("alice", now))
	assert.Equal(t, BillStatusConfirmed, b.Status)
	assert.Equal(t, "alice", b.ConfirmedBy)
	assert.ErrorIs(t, b.Confirm("alice", now), ErrInvalidTransition)
	assert.False(t, b.Regenerable())

	assert.ErrorIs(t, b.MarkPaid(now), ErrBillNotSettled)

	paid, err := b.ApplyPayment(dec("40"), now)
	require.NoError(t, err)
	assert.False(t, paid)
	assert.True(t, b.Outstanding().Equal(dec("60")))

	paid, err = b.ApplyPayment(dec("60"), now)
	require.NoError(t, err)
	assert.True(t, paid)
	assert.Equal(t, BillStatusPaid, b.Status)
	require.NotNil(t, b.PaidAt)
	assert.True(t, b.Outstanding().IsZero())
}

func TestAgentBill_MarkPaidZeroCommission(t *testing.T) {
	now := time.Now()
	b := &AgentBill{Status: BillStatusConfirmed, CommissionAmount: dec("0"), PaidAmount: dec("0")}
	require.NoError(t, b.MarkPaid(now))
	assert.Equal(t, BillStatusPaid, b.Status)
}

func TestAgentBill_OutstandingNeverNegative(t *testing.T) {
	b := &AgentBill{CommissionAmount: dec("10"), PaidAmount: dec("12")}
	assert.True(t, b.Outstanding().IsZero())
	assert.True(t, b.FullyPaid())
}
