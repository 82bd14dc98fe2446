package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hotelagent/internal/model"
	"hotelagent/internal/service"
)

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) payment(args mock.Arguments) (*model.Payment, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockPaymentService) Create(ctx context.Context, billID string, in service.CreatePaymentInput) (*model.Payment, error) {
	return m.payment(m.Called(ctx, billID, in))
}

func (m *MockPaymentService) Get(ctx context.Context, id string) (*model.Payment, error) {
	return m.payment(m.Called(ctx, id))
}

func (m *MockPaymentService) ListByBill(ctx context.Context, billID string) ([]model.Payment, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Payment), args.Error(1)
}

func (m *MockPaymentService) Complete(ctx context.Context, id, transactionRef, operator string) (*model.Payment, error) {
	return m.payment(m.Called(ctx, id, transactionRef, operator))
}

func (m *MockPaymentService) Fail(ctx context.Context, id, reason string) (*model.Payment, error) {
	return m.payment(m.Called(ctx, id, reason))
}

func (m *MockPaymentService) Cancel(ctx context.Context, id, reason string) (*model.Payment, error) {
	return m.payment(m.Called(ctx, id, reason))
}

func (m *MockPaymentService) Reconcile(ctx context.Context, month model.Month) (*service.ReconcileReport, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReconcileReport), args.Error(1)
}
