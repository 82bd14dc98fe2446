package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"hotelagent/internal/model"
	"hotelagent/internal/repository"
)

type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) Create(ctx context.Context, b *model.AgentBill) (*model.AgentBill, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AgentBill), args.Error(1)
}

func (m *MockBillRepository) FindByID(ctx context.Context, id string) (*model.AgentBill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AgentBill), args.Error(1)
}

func (m *MockBillRepository) LockByID(ctx context.Context, id string) (*model.AgentBill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AgentBill), args.Error(1)
}

func (m *MockBillRepository) FindByAgentMonth(ctx context.Context, agentID, month string) (*model.AgentBill, error) {
	args := m.Called(ctx, agentID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AgentBill), args.Error(1)
}

func (m *MockBillRepository) List(ctx context.Context, f repository.BillFilter, pq repository.PageQuery) (*repository.PageResult[model.AgentBill], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.AgentBill]), args.Error(1)
}

func (m *MockBillRepository) ListByMonth(ctx context.Context, month string) ([]model.AgentBill, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AgentBill), args.Error(1)
}

func (m *MockBillRepository) Update(ctx context.Context, b *model.AgentBill) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Create(ctx context.Context, l *model.BillAuditLog) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockAuditLogRepository) ListByBill(ctx context.Context, billID string) ([]model.BillAuditLog, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BillAuditLog), args.Error(1)
}

func (m *MockAuditLogRepository) Stats(ctx context.Context, from, to time.Time) (*model.AuditStats, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuditStats), args.Error(1)
}
