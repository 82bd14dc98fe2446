package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hotelagent/internal/model"
	"hotelagent/internal/repository"
	"hotelagent/internal/service"
)

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) order(args mock.Arguments) (*model.Order, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) Create(ctx context.Context, in service.CreateOrderInput) (*model.Order, error) {
	return m.order(m.Called(ctx, in))
}

func (m *MockOrderService) Get(ctx context.Context, id string) (*model.Order, error) {
	return m.order(m.Called(ctx, id))
}

func (m *MockOrderService) List(ctx context.Context, f repository.OrderFilter, limit, offset int) (*service.ListResult[model.Order], error) {
	args := m.Called(ctx, f, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Order]), args.Error(1)
}

func (m *MockOrderService) AddItem(ctx context.Context, orderID string, in service.OrderItemInput) (*model.Order, error) {
	return m.order(m.Called(ctx, orderID, in))
}

func (m *MockOrderService) RemoveItem(ctx context.Context, orderID, itemID string) (*model.Order, error) {
	return m.order(m.Called(ctx, orderID, itemID))
}

func (m *MockOrderService) ChangeStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	return m.order(m.Called(ctx, id, status))
}
