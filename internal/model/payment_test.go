package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayment_Transitions(t *testing.T) {
	now := time.Date(2025, 2, 3, 9, 0, 0, 0, time.UTC)

	p := &Payment{Status: PaymentStatusPending, TransactionRef: "orig"}
	assert.True(t, p.IsOpen())
	require.NoError(t, p.Complete("", now))
	assert.Equal(t, "orig", p.TransactionRef)
	assert.Equal(t, now, *p.PaidAt)
	assert.False(t, p.IsOpen())
	assert.ErrorIs(t, p.Complete("x", now), ErrInvalidTransition)
	assert.ErrorIs(t, p.Fail("x"), ErrInvalidTransition)
	assert.ErrorIs(t, p.Cancel("x"), ErrInvalidTransition)

	f := &Payment{Status: PaymentStatusPending}
	require.NoError(t, f.Fail("bank rejected"))
	assert.Equal(t, PaymentStatusFailed, f.Status)
	assert.Equal(t, "bank rejected", f.Remark)

	c := &Payment{Status: PaymentStatusPending}
	require.NoError(t, c.Cancel(""))
	assert.Equal(t, PaymentStatusCancelled, c.Status)
}

func TestPaymentMethod_Valid(t *testing.T) {
	assert.True(t, PaymentMethodWechat.Valid())
	assert.False(t, PaymentMethod("cheque").Valid())
}
