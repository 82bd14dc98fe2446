package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestOrderItem_Calculate(t *testing.T) {
	it := OrderItem{
		Quantity:  2,
		UnitPrice: dec("300.50"),
		CostPrice: dec("250"),
		CheckIn:   day(2025, 1, 30),
		CheckOut:  day(2025, 2, 2),
	}
	require.NoError(t, it.Calculate())
	assert.Equal(t, 3, it.Nights)
	assert.True(t, it.Amount.Equal(dec("1803")), it.Amount.String())
	assert.True(t, it.CostAmount.Equal(dec("1500")), it.CostAmount.String())
}

func TestOrderItem_CalculateRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		item OrderItem
	}{
		{"zero quantity", OrderItem{Quantity: 0, CheckIn: day(2025, 1, 1), CheckOut: day(2025, 1, 2)}},
		{"negative price", OrderItem{Quantity: 1, UnitPrice: dec("-1"), CheckIn: day(2025, 1, 1), CheckOut: day(2025, 1, 2)}},
		{"same day", OrderItem{Quantity: 1, CheckIn: day(2025, 1, 1), CheckOut: day(2025, 1, 1)}},
		{"reversed dates", OrderItem{Quantity: 1, CheckIn: day(2025, 1, 3), CheckOut: day(2025, 1, 1)}},
		{"unit price below a cent", OrderItem{Quantity: 1, UnitPrice: dec("0.333"), CheckIn: day(2025, 1, 1), CheckOut: day(2025, 1, 4)}},
		{"cost price below a cent", OrderItem{Quantity: 1, UnitPrice: dec("10"), CostPrice: dec("9.999"), CheckIn: day(2025, 1, 1), CheckOut: day(2025, 1, 2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.item.Calculate(), ErrInvalidItem)
		})
	}
}

func TestOrderItem_AmountMatchesStoredPrice(t *testing.T) {
	it := OrderItem{Quantity: 1, UnitPrice: dec("0.33"), CostPrice: dec("0.30"), CheckIn: day(2025, 1, 1), CheckOut: day(2025, 1, 4)}
	require.NoError(t, it.Calculate())
	assert.True(t, it.Amount.Equal(dec("0.99")), it.Amount.String())
	assert.True(t, it.Amount.Equal(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity*it.Nights)))))
}

func TestOrder_ItemsKeepTotalsInSync(t *testing.T) {
	o := &Order{ID: "o1", Status: OrderStatusPending}

	a, err := o.AddItem(OrderItem{ID: "i1", Quantity: 1, UnitPrice: dec("100"), CostPrice: dec("80"), CheckIn: day(2025, 1, 1), CheckOut: day(2025, 1, 3)})
	require.NoError(t, err)
	assert.Equal(t, "o1", a.OrderID)
	_, err = o.AddItem(OrderItem{ID: "i2", Quantity: 1, UnitPrice: dec("50"), CostPrice: dec("45"), CheckIn: day(2025, 1, 1), CheckOut: day(2025, 1, 2)})
	require.NoError(t, err)

	assert.True(t, o.TotalAmount.Equal(dec("250")))
	assert.True(t, o.TotalCost.Equal(dec("205")))
	assert.True(t, o.Profit().Equal(dec("45")))

	require.NoError(t, o.RemoveItem("i1"))
	assert.True(t, o.TotalAmount.Equal(dec("50")))
	assert.ErrorIs(t, o.RemoveItem("missing"), ErrItemNotInList)

	require.NoError(t, o.TransitionTo(OrderStatusConfirmed, time.Now()))
	_, err = o.AddItem(OrderItem{Quantity: 1, CheckIn: day(2025, 1, 1), CheckOut: day(2025, 1, 2)})
	assert.ErrorIs(t, err, ErrOrderLocked)
	assert.ErrorIs(t, o.RemoveItem("i2"), ErrOrderLocked)
}

func TestOrder_TransitionTo(t *testing.T) {
	now := time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC)

	empty := &Order{Status: OrderStatusPending}
	assert.ErrorIs(t, empty.TransitionTo(OrderStatusConfirmed, now), ErrOrderEmpty)

	o := &Order{Status: OrderStatusPending, Items: []OrderItem{{ID: "i1"}}}
	assert.ErrorIs(t, o.TransitionTo(OrderStatusCompleted, now), ErrInvalidTransition)

	require.NoError(t, o.TransitionTo(OrderStatusConfirmed, now))
	require.NotNil(t, o.ConfirmedAt)
	assert.Equal(t, now, *o.ConfirmedAt)

	require.NoError(t, o.TransitionTo(OrderStatusCheckedIn, now))
	assert.ErrorIs(t, o.TransitionTo(OrderStatusCancelled, now), ErrInvalidTransition)
	require.NoError(t, o.TransitionTo(OrderStatusCompleted, now))
	assert.ErrorIs(t, o.TransitionTo(OrderStatusPending, now), ErrInvalidTransition)

	c := &Order{Status: OrderStatusConfirmed}
	require.NoError(t, c.TransitionTo(OrderStatusCancelled, now))
	require.NotNil(t, c.CancelledAt)
	assert.False(t, c.Status.Billable())
}

func TestOrderStatus_Billable(t *testing.T) {
	assert.False(t, OrderStatusPending.Billable())
	assert.True(t, OrderStatusConfirmed.Billable())
	assert.True(t, OrderStatusCheckedIn.Billable())
	assert.True(t, OrderStatusCompleted.Billable())
	assert.False(t, OrderStatusCancelled.Billable())
	assert.False(t, OrderStatus("unknown").Valid())
}
