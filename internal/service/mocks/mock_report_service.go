package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"hotelagent/internal/export"
	"hotelagent/internal/model"
	"hotelagent/internal/service"
)

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) MonthlyReport(ctx context.Context, month model.Month) (*service.MonthlyReport, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MonthlyReport), args.Error(1)
}

func (m *MockReportService) AuditStats(ctx context.Context, from, to time.Time) (*model.AuditStats, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuditStats), args.Error(1)
}

func (m *MockReportService) Export(ctx context.Context, month model.Month, f export.Format) (*service.ExportFile, error) {
	args := m.Called(ctx, month, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportFile), args.Error(1)
}

func (m *MockReportService) ExportToStorage(ctx context.Context, month model.Month, f export.Format) (*service.StoredExport, error) {
	args := m.Called(ctx, month, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StoredExport), args.Error(1)
}
