package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hotelagent/internal/model"
	"hotelagent/internal/service"
	serviceMocks "hotelagent/internal/service/mocks"
)

func TestRegisterRoutes(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	bills := new(serviceMocks.MockAgentBillService)
	reports := new(serviceMocks.MockReportService)
	payments := new(serviceMocks.MockPaymentService)
	svc := Services{
		Agents:   new(serviceMocks.MockAgentService),
		Orders:   new(serviceMocks.MockOrderService),
		Bills:    bills,
		Payments: payments,
		Reports:  reports,
	}

	gate := func(c *fiber.Ctx) error {
		if c.Get("Authorization") == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}
		return c.Next()
	}

	app := newTestApp()
	RegisterRoutes(app, db, svc, gate)

	get := func(path string, authed bool) *http.Response {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if authed {
			req.Header.Set("Authorization", "Bearer t")
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("health checks skip api middleware", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, get("/healthz", false).StatusCode)
	})

	t.Run("api requires middleware", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, get("/api/v1/bills/"+billID, false).StatusCode)
	})

	t.Run("static bill paths win over :id", func(t *testing.T) {
		reports.On("MonthlyReport", mock.Anything, january).Return(&service.MonthlyReport{Month: "2025-01"}, nil).Once()
		payments.On("Reconcile", mock.Anything, january).Return(&service.ReconcileReport{Month: "2025-01"}, nil).Once()

		assert.Equal(t, http.StatusOK, get("/api/v1/bills/report?month=2025-01", true).StatusCode)
		assert.Equal(t, http.StatusOK, get("/api/v1/bills/reconciliation?month=2025-01", true).StatusCode)
		bills.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("bill by id", func(t *testing.T) {
		bills.On("Get", mock.Anything, billID).Return(&model.AgentBill{ID: billID}, nil).Once()

		assert.Equal(t, http.StatusOK, get("/api/v1/bills/"+billID, true).StatusCode)
	})

	t.Run("unknown route", func(t *testing.T) {
		resp := get("/api/v1/invoices", true)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	reports.AssertExpectations(t)
	payments.AssertExpectations(t)
	bills.AssertExpectations(t)
}
