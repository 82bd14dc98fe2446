package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelagent/internal/http/middleware"
	"hotelagent/internal/service"
)

const (
	agentID   = "0b6f3c8e-6a7d-4f1e-9a52-0d1c2b3a4e5f"
	orderID   = "3f0a1e2d-4c5b-4a69-8b7c-9d0e1f2a3b4c"
	itemID    = "7c2d9e4f-1a3b-4c5d-8e6f-a0b1c2d3e4f5"
	billID    = "5e4d3c2b-1a09-4f8e-b7d6-c5b4a3928170"
	paymentID = "9a8b7c6d-5e4f-4a3b-9c2d-1e0f9a8b7c6d"
)

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(middleware.RequestID())
	return app
}

// withOperator simulates an authenticated request.
func withOperator(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(middleware.OperatorLocalKey, name)
		return c.Next()
	}
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			r = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			r = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, r)
	if r != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var body errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func decodeMap(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})
}

func TestLiveness(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", Liveness())

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"request error", badRequest("INVALID_MONTH", "month is required"), 400, "INVALID_MONTH", "month is required"},
		{"not found", fmt.Errorf("bill %w", service.ErrNotFound), 404, "NOT_FOUND", "bill not found"},
		{"validation", fmt.Errorf("%w: amount must be positive", service.ErrValidation), 400, "VALIDATION_ERROR", "validation failed: amount must be positive"},
		{"transition", fmt.Errorf("%w: bill cannot move", service.ErrInvalidTransition), 400, "INVALID_TRANSITION", "invalid status transition: bill cannot move"},
		{"amount exceeded", fmt.Errorf("%w: available 20.00", service.ErrAmountExceeded), 400, "AMOUNT_EXCEEDED", ""},
		{"conflict", fmt.Errorf("%w: agent code AG01 exists", service.ErrConflict), 409, "CONFLICT", ""},
		{"unavailable", fmt.Errorf("object storage %w", service.ErrUnavailable), 503, "SERVICE_UNAVAILABLE", ""},
		{"unexpected", errors.New("pq: connection reset by peer"), 500, "INTERNAL_ERROR", "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp()
			app.Get("/x", func(c *fiber.Ctx) error { return respondError(c, tt.err) })

			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			req.Header.Set(middleware.RequestIDHeader, "rid-1")
			resp, err := app.Test(req)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			body := decodeError(t, resp)
			assert.Equal(t, "rid-1", body.RequestID)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, body.Error.Message)
			}
		})
	}
}

func TestErrorHandler(t *testing.T) {
	app := newTestApp()
	app.Get("/secure", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
	})
	app.Get("/panic-ish", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})

	resp := doJSON(t, app, http.MethodGet, "/unknown", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)

	resp = doJSON(t, app, http.MethodGet, "/secure", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
	assert.Equal(t, "missing bearer token", body.Error.Message)

	resp = doJSON(t, app, http.MethodGet, "/panic-ish", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "internal server error", decodeError(t, resp).Error.Message)
}

func TestBind(t *testing.T) {
	app := newTestApp()
	app.Post("/levels", func(c *fiber.Ctx) error {
		var req changeLevelRequest
		if err := bind(c, &req); err != nil {
			return respondError(c, err)
		}
		return c.SendString(req.Level)
	})

	resp := doJSON(t, app, http.MethodPost, "/levels", `{"level":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Error.Code)

	resp = doJSON(t, app, http.MethodPost, "/levels", map[string]string{"level": "D"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "level must be one of [A B C]", body.Error.Message)

	resp = doJSON(t, app, http.MethodPost, "/levels", nil)
	assert.Equal(t, "level is required", decodeError(t, resp).Error.Message)

	resp = doJSON(t, app, http.MethodPost, "/levels", map[string]string{"level": "B"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDateField(t *testing.T) {
	d, err := dateField("check_in", "2025-01-10")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-10", d.Format(dateLayout))

	_, err = dateField("check_in", "2025-02-30")
	var rerr *requestError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "VALIDATION_ERROR", rerr.code)
	assert.Equal(t, "check_in must be a date formatted as 2006-01-02", rerr.message)

	none, err := optionalDate("expiry_date", nil)
	assert.NoError(t, err)
	assert.Nil(t, none)

	bad := "31/12/2025"
	_, err = optionalDate("expiry_date", &bad)
	assert.EqualError(t, err, "expiry_date must be a date formatted as 2006-01-02")
}

func TestOrderItemRequest_Input(t *testing.T) {
	req := orderItemRequest{RoomType: "Deluxe", Quantity: 1, CheckIn: "2025-01-10", CheckOut: "2025-01-12"}
	in, err := req.input()
	require.NoError(t, err)
	assert.Equal(t, 2, in.CheckOut.Day()-in.CheckIn.Day())

	req.CheckOut = "2025-13-01"
	_, err = req.input()
	assert.EqualError(t, err, "check_out must be a date formatted as 2006-01-02")
}

func TestOperator(t *testing.T) {
	app := newTestApp()
	app.Get("/anon", func(c *fiber.Ctx) error { return c.SendString(operator(c, c.Query("op"))) })
	app.Get("/auth", withOperator("finance.lead"), func(c *fiber.Ctx) error {
		return c.SendString(operator(c, c.Query("op")))
	})

	read := func(path string) string {
		resp := doJSON(t, app, http.MethodGet, path, nil)
		b, _ := io.ReadAll(resp.Body)
		return string(b)
	}
	assert.Equal(t, "admin", read("/anon"))
	assert.Equal(t, "ops", read("/anon?op=ops"))
	assert.Equal(t, "finance.lead", read("/auth?op=ops"))
}
