package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of a booking order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCheckedIn OrderStatus = "checked_in"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var (
	ErrOrderLocked   = errors.New("order items can only change while the order is pending")
	ErrOrderEmpty    = errors.New("order has no items")
	ErrInvalidItem   = errors.New("invalid order item")
	ErrItemNotInList = errors.New("order item not found")
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusCheckedIn, OrderStatusCancelled},
	OrderStatusCheckedIn: {OrderStatusCompleted},
}

// BillableOrderStatuses are the statuses whose items are counted in monthly bills.
var BillableOrderStatuses = []OrderStatus{OrderStatusConfirmed, OrderStatusCheckedIn, OrderStatusCompleted}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusCheckedIn, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Billable reports whether orders in status s earn commission.
func (s OrderStatus) Billable() bool {
	for _, b := range BillableOrderStatuses {
		if s == b {
			return true
		}
	}
	return false
}

// OrderItem is a single room-stay line of an order.
type OrderItem struct {
	ID         string          `json:"id"`
	OrderID    string          `json:"order_id"`
	RoomType   string          `json:"room_type"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	CostPrice  decimal.Decimal `json:"cost_price"`
	CheckIn    time.Time       `json:"check_in"`
	CheckOut   time.Time       `json:"check_out"`
	Nights     int             `json:"nights"`
	Amount     decimal.Decimal `json:"amount"`
	CostAmount decimal.Decimal `json:"cost_amount"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Calculate validates the item and fills Nights, Amount and CostAmount.
func (it *OrderItem) Calculate() error {
	if it.Quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrInvalidItem)
	}
	if it.UnitPrice.IsNegative() || it.CostPrice.IsNegative() {
		return fmt.Errorf("%w: prices must not be negative", ErrInvalidItem)
	}
	if !FitsScale(it.UnitPrice, MoneyScale) || !FitsScale(it.CostPrice, MoneyScale) {
		return fmt.Errorf("%w: prices must have at most %d decimal places", ErrInvalidItem, MoneyScale)
	}
	it.CheckIn = DateOf(it.CheckIn)
	it.CheckOut = DateOf(it.CheckOut)
	nights := DaysBetween(it.CheckIn, it.CheckOut)
	if nights < 1 {
		return fmt.Errorf("%w: check-out must be after check-in", ErrInvalidItem)
	}
	it.Nights = nights
	units := decimal.NewFromInt(int64(it.Quantity * nights))
	it.Amount = it.UnitPrice.Mul(units).Round(2)
	it.CostAmount = it.CostPrice.Mul(units).Round(2)
	return nil
}

// Order is a hotel booking placed by an agent.
type Order struct {
	ID          string          `json:"id"`
	OrderNo     string          `json:"order_no"`
	AgentID     string          `json:"agent_id"`
	HotelName   string          `json:"hotel_name"`
	GuestName   string          `json:"guest_name"`
	Status      OrderStatus     `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	TotalCost   decimal.Decimal `json:"total_cost"`
	Remark      string          `json:"remark"`
	ConfirmedAt *time.Time      `json:"confirmed_at,omitempty"`
	CancelledAt *time.Time      `json:"cancelled_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Items       []OrderItem     `json:"items"`
}

// Profit returns revenue minus cost.
func (o *Order) Profit() decimal.Decimal {
	return o.TotalAmount.Sub(o.TotalCost)
}

// Recalculate sets the totals to the sum of the item amounts.
func (o *Order) Recalculate() {
	total, cost := decimal.Zero, decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Amount)
		cost = cost.Add(it.CostAmount)
	}
	o.TotalAmount = total
	o.TotalCost = cost
}

// AddItem calculates and appends an item to a pending order.
func (o *Order) AddItem(it OrderItem) (OrderItem, error) {
	if o.Status != OrderStatusPending {
		return OrderItem{}, ErrOrderLocked
	}
	if err := it.Calculate(); err != nil {
		return OrderItem{}, err
	}
	it.OrderID = o.ID
	o.Items = append(o.Items, it)
	o.Recalculate()
	return it, nil
}

// RemoveItem drops an item from a pending order.
func (o *Order) RemoveItem(itemID string) error {
	if o.Status != OrderStatusPending {
		return ErrOrderLocked
	}
	for i, it := range o.Items {
		if it.ID == itemID {
			o.Items = append(o.Items[:i], o.Items[i+1:]...)
			o.Recalculate()
			return nil
		}
	}
	return ErrItemNotInList
}

// CanTransition reports whether the order may move to next.
func (o *Order) CanTransition(next OrderStatus) bool {
	for _, s := range orderTransitions[o.Status] {
		if s == next {
			return true
		}
	}
	return false
}

// TransitionTo moves the order to next and stamps the relevant timestamp.
func (o *Order) TransitionTo(next OrderStatus, now time.Time) error {
	if !o.CanTransition(next) {
		return transitionError("order", string(o.Status), string(next))
	}
	if next == OrderStatusConfirmed && len(o.Items) == 0 {
		return ErrOrderEmpty
	}
	switch next {
	case OrderStatusConfirmed:
		o.ConfirmedAt = &now
	case OrderStatusCancelled:
		o.CancelledAt = &now
	}
	o.Status = next
	return nil
}

// BillableItem is an order item together with the order fields needed for billing.
type BillableItem struct {
	OrderID     string      `json:"order_id"`
	OrderStatus OrderStatus `json:"order_status"`
	Item        OrderItem   `json:"item"`
}
