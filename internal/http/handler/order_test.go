package handler

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hotelagent/internal/model"
	"hotelagent/internal/repository"
	"hotelagent/internal/service"
	serviceMocks "hotelagent/internal/service/mocks"
)

func TestCreateOrder(t *testing.T) {
	mockSvc := new(serviceMocks.MockOrderService)
	app := newTestApp()
	app.Post("/orders", CreateOrder(mockSvc))

	body := `{
		"agent_id": "` + agentID + `",
		"hotel_name": "Grand Harbour",
		"guest_name": "R. Tan",
		"items": [
			{"room_type": "deluxe", "quantity": 2, "unit_price": "150.00", "cost_price": 120, "check_in": "2025-01-30", "check_out": "2025-02-02"}
		]
	}`

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(in service.CreateOrderInput) bool {
			if in.AgentID != agentID || in.HotelName != "Grand Harbour" || len(in.Items) != 1 {
				return false
			}
			it := in.Items[0]
			return it.Quantity == 2 &&
				it.UnitPrice.Equal(decimal.NewFromInt(150)) &&
				it.CostPrice.Equal(decimal.NewFromInt(120)) &&
				it.CheckIn.Equal(time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC)) &&
				it.CheckOut.Equal(time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC))
		})).Return(&model.Order{ID: orderID, OrderNo: "HO20250110093000ab12"}, nil).Once()

		resp := doJSON(t, app, http.MethodPost, "/orders", body)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "HO20250110093000ab12", decodeMap(t, resp)["order_no"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("item without room type", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/orders", `{"agent_id":"`+agentID+`","hotel_name":"H","items":[{"quantity":1,"check_in":"2025-01-01","check_out":"2025-01-02"}]}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "items[0].room_type is required", decodeError(t, resp).Error.Message)
	})

	t.Run("frozen agent", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: agent AG01 is frozen, orders require an active agent", service.ErrValidation)).Once()

		resp := doJSON(t, app, http.MethodPost, "/orders", body)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION_ERROR", decodeError(t, resp).Error.Code)
	})
}

func TestListOrders(t *testing.T) {
	mockSvc := new(serviceMocks.MockOrderService)
	app := newTestApp()
	app.Get("/orders", ListOrders(mockSvc))

	mockSvc.On("List", mock.Anything, repository.OrderFilter{AgentID: agentID, Status: model.OrderStatusConfirmed}, 10, 0).
		Return(&service.ListResult[model.Order]{Items: []model.Order{}, Total: 0}, nil).Once()

	resp := doJSON(t, app, http.MethodGet, "/orders?agent_id="+agentID+"&status=confirmed", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestGetOrder(t *testing.T) {
	mockSvc := new(serviceMocks.MockOrderService)
	app := newTestApp()
	app.Get("/orders/:id", GetOrder(mockSvc))

	mockSvc.On("Get", mock.Anything, orderID).Return(&model.Order{ID: orderID, Status: model.OrderStatusPending}, nil).Once()

	resp := doJSON(t, app, http.MethodGet, "/orders/"+orderID, nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pending", decodeMap(t, resp)["status"])
}

func TestAddOrderItem(t *testing.T) {
	mockSvc := new(serviceMocks.MockOrderService)
	app := newTestApp()
	app.Post("/orders/:id/items", AddOrderItem(mockSvc))

	mockSvc.On("AddItem", mock.Anything, orderID, mock.MatchedBy(func(in service.OrderItemInput) bool {
		return in.RoomType == "suite" && in.Quantity == 1
	})).Return(nil, fmt.Errorf("%w: %w", service.ErrValidation, model.ErrOrderLocked)).Once()

	resp := doJSON(t, app, http.MethodPost, "/orders/"+orderID+"/items",
		`{"room_type":"suite","quantity":1,"unit_price":"300","cost_price":"250","check_in":"2025-03-01","check_out":"2025-03-03"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestRemoveOrderItem(t *testing.T) {
	mockSvc := new(serviceMocks.MockOrderService)
	app := newTestApp()
	app.Delete("/orders/:id/items/:itemId", RemoveOrderItem(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("RemoveItem", mock.Anything, orderID, itemID).Return(&model.Order{ID: orderID}, nil).Once()

		resp := doJSON(t, app, http.MethodDelete, "/orders/"+orderID+"/items/"+itemID, nil)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid item id", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, "/orders/"+orderID+"/items/42", nil)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "invalid itemId format", decodeError(t, resp).Error.Message)
	})
}

func TestChangeOrderStatus(t *testing.T) {
	mockSvc := new(serviceMocks.MockOrderService)
	app := newTestApp()
	app.Post("/orders/:id/status", ChangeOrderStatus(mockSvc))

	t.Run("confirm", func(t *testing.T) {
		mockSvc.On("ChangeStatus", mock.Anything, orderID, model.OrderStatusConfirmed).
			Return(&model.Order{ID: orderID, Status: model.OrderStatusConfirmed}, nil).Once()

		resp := doJSON(t, app, http.MethodPost, "/orders/"+orderID+"/status", map[string]string{"status": "confirmed"})

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("back to pending is not a target", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/orders/"+orderID+"/status", map[string]string{"status": "pending"})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION_ERROR", decodeError(t, resp).Error.Code)
		mockSvc.AssertNumberOfCalls(t, "ChangeStatus", 1)
	})
}
