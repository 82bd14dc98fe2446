package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hotelagent/internal/export"
	"hotelagent/internal/model"
	repoMocks "hotelagent/internal/repository/mocks"
	"hotelagent/internal/storage"
	storeMocks "hotelagent/internal/storage/mocks"
)

type reportDeps struct {
	bills  *repoMocks.MockBillRepository
	agents *repoMocks.MockAgentRepository
	audits *repoMocks.MockAuditLogRepository
	cache  *memCache
}

func newTestReportService(store storage.Storage) (*reportService, reportDeps) {
	d := reportDeps{
		bills:  new(repoMocks.MockBillRepository),
		agents: new(repoMocks.MockAgentRepository),
		audits: new(repoMocks.MockAuditLogRepository),
		cache:  newMemCache(),
	}
	svc := NewReportService(d.bills, d.agents, d.audits, store, d.cache, ReportOptions{}).(*reportService)
	svc.now = fixedClock
	return svc, d
}

func monthBills() []model.AgentBill {
	confirmedAt := time.Date(2025, 2, 3, 8, 0, 0, 0, time.UTC)
	return []model.AgentBill{
		{ID: "b1", BillNo: "BL202501-AG01", AgentID: "a1", BillMonth: "2025-01", Status: model.BillStatusPending,
			OrderCount: 2, TotalAmount: dec("1000"), CommissionRate: dec("0.10"), CommissionAmount: dec("100"), PaidAmount: decimal.Zero},
		{ID: "b2", BillNo: "BL202501-AG02", AgentID: "a2", BillMonth: "2025-01", Status: model.BillStatusConfirmed,
			OrderCount: 1, TotalAmount: dec("500"), CommissionRate: dec("0.08"), CommissionAmount: dec("40"), PaidAmount: dec("15"), ConfirmedAt: &confirmedAt},
		{ID: "b3", BillNo: "BL202501-AG03", AgentID: "a1", BillMonth: "2025-01", Status: model.BillStatusPending,
			OrderCount: 3, TotalAmount: dec("300"), CommissionRate: dec("0.10"), CommissionAmount: dec("30"), PaidAmount: decimal.Zero},
	}
}

func TestReportService_MonthlyReport(t *testing.T) {
	ctx := context.Background()
	svc, d := newTestReportService(nil)
	d.bills.On("ListByMonth", ctx, "2025-01").Return(monthBills(), nil).Once()

	rep, err := svc.MonthlyReport(ctx, january)

	require.NoError(t, err)
	assert.False(t, rep.Cached)
	require.Len(t, rep.ByStatus, 3)

	pending := rep.ByStatus[0]
	assert.Equal(t, model.BillStatusPending, pending.Status)
	assert.Equal(t, 2, pending.Count)
	assert.Equal(t, 5, pending.OrderCount)
	assert.True(t, pending.Commission.Equal(dec("130")))

	confirmed := rep.ByStatus[1]
	assert.Equal(t, 1, confirmed.Count)
	assert.True(t, confirmed.Outstanding.Equal(dec("25")))

	paid := rep.ByStatus[2]
	assert.Equal(t, 0, paid.Count)
	assert.True(t, paid.Commission.IsZero())

	assert.Equal(t, 3, rep.Totals.Count)
	assert.True(t, rep.Totals.TotalAmount.Equal(dec("1800")))
	assert.True(t, rep.Totals.Paid.Equal(dec("15")))
	assert.True(t, rep.Totals.Outstanding.Equal(dec("155")))
	assert.Equal(t, 1, d.cache.sets)

	// Second call is served from the cache.
	again, err := svc.MonthlyReport(ctx, january)
	require.NoError(t, err)
	assert.True(t, again.Cached)
	assert.True(t, again.Totals.Commission.Equal(dec("170")))
	d.bills.AssertNumberOfCalls(t, "ListByMonth", 1)
}

func TestReportService_MonthlyReportInvalidatedDuringRead(t *testing.T) {
	ctx := context.Background()
	svc, d := newTestReportService(nil)
	stale := []model.AgentBill{monthBills()[0]}
	d.bills.On("ListByMonth", ctx, "2025-01").
		Run(func(mock.Arguments) { invalidateMonth(ctx, d.cache, "2025-01") }).
		Return(stale, nil).Once()
	d.bills.On("ListByMonth", ctx, "2025-01").Return(monthBills(), nil).Once()

	first, err := svc.MonthlyReport(ctx, january)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Totals.Count)
	assert.Equal(t, int64(1), d.cache.counters[reportGenKey("2025-01")])

	// The stale report sits under the old generation and is never served.
	second, err := svc.MonthlyReport(ctx, january)
	require.NoError(t, err)
	assert.False(t, second.Cached)
	assert.Equal(t, 3, second.Totals.Count)

	third, err := svc.MonthlyReport(ctx, january)
	require.NoError(t, err)
	assert.True(t, third.Cached)
	assert.Equal(t, 3, third.Totals.Count)
	d.bills.AssertNumberOfCalls(t, "ListByMonth", 2)
}

func TestReportService_MonthlyReportWithoutCache(t *testing.T) {
	ctx := context.Background()
	bills := new(repoMocks.MockBillRepository)
	bills.On("ListByMonth", ctx, "2025-01").Return([]model.AgentBill{}, nil)
	svc := NewReportService(bills, nil, nil, nil, nil, ReportOptions{})

	rep, err := svc.MonthlyReport(ctx, january)

	require.NoError(t, err)
	assert.Equal(t, 0, rep.Totals.Count)
	assert.Len(t, rep.ByStatus, 3)
}

func TestReportService_AuditStats(t *testing.T) {
	ctx := context.Background()
	svc, d := newTestReportService(nil)
	from := fixedNow.AddDate(0, 0, -30)
	d.audits.On("Stats", ctx, from, fixedNow).Return(&model.AuditStats{From: from, To: fixedNow, Total: 4}, nil)

	stats, err := svc.AuditStats(ctx, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)

	_, err = svc.AuditStats(ctx, fixedNow, fixedNow.Add(-time.Hour))
	assert.ErrorIs(t, err, ErrValidation)
	d.audits.AssertExpectations(t)
}

func agentsByID() map[string]model.Agent {
	return map[string]model.Agent{
		"a1": {ID: "a1", Code: "AG01", Name: "Sunrise Travel"},
		"a2": {ID: "a2", Code: "AG02", Name: "Moonlight Tours"},
	}
}

func TestReportService_Export(t *testing.T) {
	ctx := context.Background()
	svc, d := newTestReportService(nil)
	d.bills.On("ListByMonth", ctx, "2025-01").Return(monthBills(), nil)
	d.agents.On("FindByIDs", ctx, []string{"a1", "a2"}).Return(agentsByID(), nil)

	file, err := svc.Export(ctx, january, export.FormatCSV)

	require.NoError(t, err)
	assert.Equal(t, "bills_2025-01.csv", file.Name)
	assert.Equal(t, export.FormatCSV.ContentType(), file.ContentType)
	lines := strings.Split(strings.TrimSpace(string(file.Data)), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "Bill No,Agent Code"))
	assert.Contains(t, lines[2], "BL202501-AG02,AG02,Moonlight Tours")
	assert.Contains(t, lines[2], "2025-02-03 08:00:00")
	d.agents.AssertExpectations(t)
}

func TestReportService_ExportUnknownFormat(t *testing.T) {
	ctx := context.Background()
	svc, d := newTestReportService(nil)
	d.bills.On("ListByMonth", ctx, "2025-01").Return(monthBills(), nil)
	d.agents.On("FindByIDs", ctx, mock.Anything).Return(agentsByID(), nil)

	_, err := svc.Export(ctx, january, export.Format("pdf"))

	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, export.ErrUnsupportedFormat)
}

func TestReportService_ExportToStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("storage not configured", func(t *testing.T) {
		svc, d := newTestReportService(nil)

		_, err := svc.ExportToStorage(ctx, january, export.FormatCSV)

		assert.ErrorIs(t, err, ErrUnavailable)
		d.bills.AssertNotCalled(t, "ListByMonth", mock.Anything, mock.Anything)
	})

	t.Run("uploads and presigns", func(t *testing.T) {
		store := new(storeMocks.MockStorage)
		svc, d := newTestReportService(store)
		d.bills.On("ListByMonth", ctx, "2025-01").Return(monthBills(), nil)
		d.agents.On("FindByIDs", ctx, mock.Anything).Return(agentsByID(), nil)
		store.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "exports/bills/2025-01/") && strings.HasSuffix(key, ".xlsx")
		}), mock.Anything, mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
			return opt.Size > 0 && opt.ContentType == export.FormatXLSX.ContentType() && opt.Metadata["bill-month"] == "2025-01"
		})).Return(storage.ObjectInfo{Key: "exports/bills/2025-01/x.xlsx", Size: 2048}, nil)
		store.On("PresignGet", ctx, "exports/bills/2025-01/x.xlsx", storage.PresignOptions{Expiry: 15 * time.Minute, DownloadName: "bills_2025-01.xlsx"}).Return("https://minio.local/x.xlsx?sig=1", nil)

		got, err := svc.ExportToStorage(ctx, january, export.FormatXLSX)

		require.NoError(t, err)
		assert.Equal(t, "bills_2025-01.xlsx", got.Name)
		assert.Equal(t, int64(2048), got.Size)
		assert.Equal(t, "https://minio.local/x.xlsx?sig=1", got.URL)
		assert.Equal(t, fixedNow.Add(15*time.Minute), got.ExpiresAt)
		store.AssertExpectations(t)
	})

	t.Run("upload fails", func(t *testing.T) {
		store := new(storeMocks.MockStorage)
		svc, d := newTestReportService(store)
		d.bills.On("ListByMonth", ctx, "2025-01").Return([]model.AgentBill{}, nil)
		d.agents.On("FindByIDs", ctx, mock.Anything).Return(map[string]model.Agent{}, nil)
		store.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, errors.New("bucket gone"))

		_, err := svc.ExportToStorage(ctx, january, export.FormatCSV)

		assert.EqualError(t, err, "upload export: bucket gone")
		store.AssertNotCalled(t, "PresignGet", mock.Anything, mock.Anything, mock.Anything)
	})
}
