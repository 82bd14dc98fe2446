package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"hotelagent/internal/model"
	"hotelagent/internal/repository"
	"hotelagent/internal/service"
)

type MockAgentService struct {
	mock.Mock
}

func (m *MockAgentService) Create(ctx context.Context, in service.CreateAgentInput) (*model.Agent, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Agent), args.Error(1)
}

func (m *MockAgentService) Get(ctx context.Context, id string) (*model.Agent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Agent), args.Error(1)
}

func (m *MockAgentService) List(ctx context.Context, f repository.AgentFilter, limit, offset int) (*service.ListResult[model.Agent], error) {
	args := m.Called(ctx, f, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Agent]), args.Error(1)
}

func (m *MockAgentService) Update(ctx context.Context, id string, in service.UpdateAgentInput) (*model.Agent, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Agent), args.Error(1)
}

func (m *MockAgentService) ChangeLevel(ctx context.Context, id string, level model.AgentLevel) (*model.Agent, error) {
	args := m.Called(ctx, id, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Agent), args.Error(1)
}

func (m *MockAgentService) ChangeStatus(ctx context.Context, id string, action service.AgentStatusAction, expiry *time.Time) (*model.Agent, error) {
	args := m.Called(ctx, id, action, expiry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Agent), args.Error(1)
}

func (m *MockAgentService) CheckExpired(ctx context.Context, warnDays int, dryRun bool) (*service.CheckExpiredResult, error) {
	args := m.Called(ctx, warnDays, dryRun)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CheckExpiredResult), args.Error(1)
}
