package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hotelagent/internal/model"
	"hotelagent/internal/repository"
	"hotelagent/internal/service"
)

type MockAgentBillService struct {
	mock.Mock
}

func (m *MockAgentBillService) bill(args mock.Arguments) (*model.AgentBill, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AgentBill), args.Error(1)
}

func (m *MockAgentBillService) Generate(ctx context.Context, agentID string, month model.Month, force bool, operator string) (*service.GenerateResult, error) {
	args := m.Called(ctx, agentID, month, force, operator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GenerateResult), args.Error(1)
}

func (m *MockAgentBillService) GenerateMonthlyBills(ctx context.Context, month model.Month, force bool, operator string) (*service.GenerateSummary, error) {
	args := m.Called(ctx, month, force, operator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GenerateSummary), args.Error(1)
}

func (m *MockAgentBillService) Get(ctx context.Context, id string) (*model.AgentBill, error) {
	return m.bill(m.Called(ctx, id))
}

func (m *MockAgentBillService) List(ctx context.Context, f repository.BillFilter, limit, offset int) (*service.ListResult[model.AgentBill], error) {
	args := m.Called(ctx, f, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.AgentBill]), args.Error(1)
}

func (m *MockAgentBillService) Confirm(ctx context.Context, id, operator string) (*model.AgentBill, error) {
	return m.bill(m.Called(ctx, id, operator))
}

func (m *MockAgentBillService) MarkPaid(ctx context.Context, id, operator string) (*model.AgentBill, error) {
	return m.bill(m.Called(ctx, id, operator))
}

func (m *MockAgentBillService) AuditLogs(ctx context.Context, id string) ([]model.BillAuditLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BillAuditLog), args.Error(1)
}
