package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"hotelagent/internal/model"
	"hotelagent/internal/repository"
	"hotelagent/internal/service"
)

type orderItemRequest struct {
	RoomType  string          `json:"room_type" validate:"required,max=64"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	CostPrice decimal.Decimal `json:"cost_price"`
	CheckIn   string          `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut  string          `json:"check_out" validate:"required,datetime=2006-01-02"`
}

func (r orderItemRequest) input() (service.OrderItemInput, error) {
	in := service.OrderItemInput{
		RoomType:  r.RoomType,
		Quantity:  r.Quantity,
		UnitPrice: r.UnitPrice,
		CostPrice: r.CostPrice,
	}
	var err error
	if in.CheckIn, err = dateField("check_in", r.CheckIn); err != nil {
		return in, err
	}
	if in.CheckOut, err = dateField("check_out", r.CheckOut); err != nil {
		return in, err
	}
	return in, nil
}

type createOrderRequest struct {
	AgentID   string             `json:"agent_id" validate:"required,uuid"`
	HotelName string             `json:"hotel_name" validate:"required,max=128"`
	GuestName string             `json:"guest_name" validate:"max=128"`
	Remark    string             `json:"remark" validate:"max=512"`
	Items     []orderItemRequest `json:"items" validate:"dive"`
}

type changeOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed checked_in completed cancelled"`
}

// CreateOrder godoc
// @Summary Create a pending order with its items
// @Tags orders
// @Accept json
// @Produce json
// @Param body body createOrderRequest true "Order"
// @Success 201 {object} model.Order
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /orders [post]
func CreateOrder(svc service.OrderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createOrderRequest
		if err := bind(c, &req); err != nil {
			return respondError(c, err)
		}

		in := service.CreateOrderInput{
			AgentID:   req.AgentID,
			HotelName: req.HotelName,
			GuestName: req.GuestName,
			Remark:    req.Remark,
		}
		for _, it := range req.Items {
			item, err := it.input()
			if err != nil {
				return respondError(c, err)
			}
			in.Items = append(in.Items, item)
		}

		o, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(o)
	}
}

// ListOrders godoc
// @Summary List orders
// @Tags orders
// @Produce json
// @Param agent_id query string false "Agent ID"
// @Param status query string false "Order status"
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} service.ListResult[model.Order]
// @Router /orders [get]
func ListOrders(svc service.OrderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := pagination(c)
		if err != nil {
			return respondError(c, err)
		}
		f := repository.OrderFilter{
			AgentID: c.Query("agent_id"),
			Status:  model.OrderStatus(c.Query("status")),
		}

		res, err := svc.List(c.UserContext(), f, limit, offset)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

// GetOrder godoc
// @Summary Get order with items
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} model.Order
// @Failure 404 {object} errorPayload
// @Router /orders/{id} [get]
func GetOrder(svc service.OrderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		o, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(o)
	}
}

// AddOrderItem godoc
// @Summary Add an item to a pending order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param body body orderItemRequest true "Item"
// @Success 200 {object} model.Order
// @Router /orders/{id}/items [post]
func AddOrderItem(svc service.OrderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		var req orderItemRequest
		if err := bind(c, &req); err != nil {
			return respondError(c, err)
		}

		item, err := req.input()
		if err != nil {
			return respondError(c, err)
		}

		o, err := svc.AddItem(c.UserContext(), id, item)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(o)
	}
}

// RemoveOrderItem godoc
// @Summary Remove an item from a pending order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Param itemId path string true "Item ID"
// @Success 200 {object} model.Order
// @Router /orders/{id}/items/{itemId} [delete]
func RemoveOrderItem(svc service.OrderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		itemID, err := idParam(c, "itemId")
		if err != nil {
			return respondError(c, err)
		}

		o, err := svc.RemoveItem(c.UserContext(), id, itemID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(o)
	}
}

// ChangeOrderStatus godoc
// @Summary Move an order through its lifecycle
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param body body changeOrderStatusRequest true "Target status"
// @Success 200 {object} model.Order
// @Router /orders/{id}/status [post]
func ChangeOrderStatus(svc service.OrderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		var req changeOrderStatusRequest
		if err := bind(c, &req); err != nil {
			return respondError(c, err)
		}

		o, err := svc.ChangeStatus(c.UserContext(), id, model.OrderStatus(req.Status))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(o)
	}
}
