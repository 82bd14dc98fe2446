package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"hotelagent/internal/model"
	"hotelagent/internal/repository"
)

type MockAgentRepository struct {
	mock.Mock
}

func (m *MockAgentRepository) Create(ctx context.Context, a *model.Agent) (*model.Agent, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Agent), args.Error(1)
}

func (m *MockAgentRepository) FindByID(ctx context.Context, id string) (*model.Agent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Agent), args.Error(1)
}

func (m *MockAgentRepository) FindByIDs(ctx context.Context, ids []string) (map[string]model.Agent, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]model.Agent), args.Error(1)
}

func (m *MockAgentRepository) List(ctx context.Context, f repository.AgentFilter, pq repository.PageQuery) (*repository.PageResult[model.Agent], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Agent]), args.Error(1)
}

func (m *MockAgentRepository) Update(ctx context.Context, a *model.Agent) (*model.Agent, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Agent), args.Error(1)
}

func (m *MockAgentRepository) ListExpiringBefore(ctx context.Context, day time.Time) ([]model.Agent, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Agent), args.Error(1)
}

func (m *MockAgentRepository) ListWithBillableOrders(ctx context.Context, start, end time.Time) ([]model.Agent, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Agent), args.Error(1)
}
