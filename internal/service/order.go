package service

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"hotelagent/internal/model"
	"hotelagent/internal/repository"
)

// OrderItemInput carries one room-stay line.
type OrderItemInput struct {
	RoomType  string
	Quantity  int
	UnitPrice decimal.Decimal
	CostPrice decimal.Decimal
	CheckIn   time.Time
	CheckOut  time.Time
}

// CreateOrderInput carries a new order and its initial items.
type CreateOrderInput struct {
	AgentID   string
	HotelName string
	GuestName string
	Remark    string
	Items     []OrderItemInput
}

// OrderService defines the use cases for booking orders.
type OrderService interface {
	// Create stores a pending order for an active agent together with its items.
	Create(ctx context.Context, in CreateOrderInput) (*model.Order, error)
	Get(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context, f repository.OrderFilter, limit, offset int) (*ListResult[model.Order], error)

	// AddItem and RemoveItem only work on pending orders and keep the order totals in sync.
	AddItem(ctx context.Context, orderID string, in OrderItemInput) (*model.Order, error)
	RemoveItem(ctx context.Context, orderID, itemID string) (*model.Order, error)

	ChangeStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
}

type orderService struct {
	tx     repository.Transactor
	orders repository.OrderRepository
	agents repository.AgentRepository
	now    func() time.Time
}

// NewOrderService constructs a new OrderService.
func NewOrderService(tx repository.Transactor, orders repository.OrderRepository, agents repository.AgentRepository) OrderService {
	return &orderService{tx: tx, orders: orders, agents: agents, now: time.Now}
}

func newItem(in OrderItemInput, now time.Time) model.OrderItem {
	return model.OrderItem{
		ID:        newID(),
		RoomType:  strings.TrimSpace(in.RoomType),
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
		CostPrice: in.CostPrice,
		CheckIn:   civilDate(in.CheckIn),
		CheckOut:  civilDate(in.CheckOut),
		CreatedAt: now,
	}
}

func (s *orderService) Create(ctx context.Context, in CreateOrderInput) (*model.Order, error) {
	if in.AgentID == "" {
		return nil, invalid("agent_id is required")
	}
	if strings.TrimSpace(in.HotelName) == "" {
		return nil, invalid("hotel name is required")
	}
	agent, err := s.agents.FindByID(ctx, in.AgentID)
	if err != nil {
		return nil, notFound("agent", err)
	}
	if agent.Status != model.AgentStatusActive {
		return nil, invalid("agent %s is %s, orders require an active agent", agent.Code, agent.Status)
	}

	now := s.now().UTC()
	o := &model.Order{
		ID:          newID(),
		OrderNo:     documentNo("HO", now),
		AgentID:     agent.ID,
		HotelName:   strings.TrimSpace(in.HotelName),
		GuestName:   in.GuestName,
		Status:      model.OrderStatusPending,
		TotalAmount: decimal.Zero,
		TotalCost:   decimal.Zero,
		Remark:      in.Remark,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, itIn := range in.Items {
		if _, err := o.AddItem(newItem(itIn, now)); err != nil {
			return nil, domainError(err)
		}
	}

	var stored *model.Order
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		stored, err = s.orders.Create(ctx, o)
		return err
	})
	if err != nil {
		return nil, conflict(err)
	}
	return stored, nil
}

func (s *orderService) Get(ctx context.Context, id string) (*model.Order, error) {
	if id == "" {
		return nil, invalid("id is required")
	}
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("order", err)
	}
	return o, nil
}

func (s *orderService) List(ctx context.Context, f repository.OrderFilter, limit, offset int) (*ListResult[model.Order], error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, invalid("unknown order status %q", f.Status)
	}
	res, err := s.orders.List(ctx, f, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return &ListResult[model.Order]{Items: res.Items, Total: res.Total}, nil
}

// mutate loads the order under a row lock, applies fn and persists the order header.
func (s *orderService) mutate(ctx context.Context, id string, fn func(ctx context.Context, o *model.Order, now time.Time) error) (*model.Order, error) {
	var out *model.Order
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		o, err := s.orders.LockByID(ctx, id)
		if err != nil {
			return notFound("order", err)
		}
		now := s.now().UTC()
		if err := fn(ctx, o, now); err != nil {
			return err
		}
		o.UpdatedAt = now
		if err := s.orders.Update(ctx, o); err != nil {
			return err
		}
		out = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *orderService) AddItem(ctx context.Context, orderID string, in OrderItemInput) (*model.Order, error) {
	return s.mutate(ctx, orderID, func(ctx context.Context, o *model.Order, now time.Time) error {
		it, err := o.AddItem(newItem(in, now))
		if err != nil {
			return domainError(err)
		}
		return s.orders.AddItem(ctx, &it)
	})
}

func (s *orderService) RemoveItem(ctx context.Context, orderID, itemID string) (*model.Order, error) {
	return s.mutate(ctx, orderID, func(ctx context.Context, o *model.Order, _ time.Time) error {
		if err := o.RemoveItem(itemID); err != nil {
			return domainError(err)
		}
		return notFound("order item", s.orders.DeleteItem(ctx, orderID, itemID))
	})
}

func (s *orderService) ChangeStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, invalid("unknown order status %q", status)
	}
	return s.mutate(ctx, id, func(_ context.Context, o *model.Order, now time.Time) error {
		return domainError(o.TransitionTo(status, now))
	})
}
