package handler

import (
	"github.com/gofiber/fiber/v2"

	"hotelagent/internal/model"
	"hotelagent/internal/repository"
	"hotelagent/internal/service"
)

type generateBillsRequest struct {
	Month    string `json:"month" validate:"required"`
	AgentID  string `json:"agent_id" validate:"omitempty,uuid"`
	Force    bool   `json:"force"`
	Operator string `json:"operator" validate:"max=64"`
}

type billActionRequest struct {
	Operator string `json:"operator" validate:"max=64"`
}

// ListBills godoc
// @Summary List bills
// @Tags bills
// @Produce json
// @Param agent_id query string false "Agent ID"
// @Param month query string false "YYYY-MM"
// @Param status query string false "pending, confirmed or paid"
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} service.ListResult[model.AgentBill]
// @Router /bills [get]
func ListBills(svc service.AgentBillService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := pagination(c)
		if err != nil {
			return respondError(c, err)
		}
		f := repository.BillFilter{
			AgentID: c.Query("agent_id"),
			Status:  model.BillStatus(c.Query("status")),
		}
		if s := c.Query("month"); s != "" {
			m, err := parseMonth(s)
			if err != nil {
				return respondError(c, err)
			}
			f.Month = m.String()
		}

		res, err := svc.List(c.UserContext(), f, limit, offset)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

// GenerateBills godoc
// @Summary Generate monthly bills for one agent or all agents
// @Tags bills
// @Accept json
// @Produce json
// @Param body body generateBillsRequest true "Month, optional agent and force flag"
// @Success 200 {object} service.GenerateSummary
// @Router /bills/generate [post]
func GenerateBills(svc service.AgentBillService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req generateBillsRequest
		if err := bind(c, &req); err != nil {
			return respondError(c, err)
		}
		m, err := parseMonth(req.Month)
		if err != nil {
			return respondError(c, err)
		}
		op := operator(c, req.Operator)

		if req.AgentID != "" {
			res, err := svc.Generate(c.UserContext(), req.AgentID, m, req.Force, op)
			if err != nil {
				return respondError(c, err)
			}
			return c.JSON(res)
		}

		sum, err := svc.GenerateMonthlyBills(c.UserContext(), m, req.Force, op)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(sum)
	}
}

// GetBill godoc
// @Summary Get bill
// @Tags bills
// @Produce json
// @Param id path string true "Bill ID"
// @Success 200 {object} model.AgentBill
// @Failure 404 {object} errorPayload
// @Router /bills/{id} [get]
func GetBill(svc service.AgentBillService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		b, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(b)
	}
}

// ConfirmBill godoc
// @Summary Confirm a pending bill
// @Tags bills
// @Accept json
// @Produce json
// @Param id path string true "Bill ID"
// @Success 200 {object} model.AgentBill
// @Router /bills/{id}/confirm [post]
func ConfirmBill(svc service.AgentBillService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		var req billActionRequest
		if err := bind(c, &req); err != nil {
			return respondError(c, err)
		}

		b, err := svc.Confirm(c.UserContext(), id, operator(c, req.Operator))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(b)
	}
}

// MarkBillPaid godoc
// @Summary Close a confirmed bill that needs no further payment
// @Tags bills
// @Accept json
// @Produce json
// @Param id path string true "Bill ID"
// @Success 200 {object} model.AgentBill
// @Router /bills/{id}/mark-paid [post]
func MarkBillPaid(svc service.AgentBillService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		var req billActionRequest
		if err := bind(c, &req); err != nil {
			return respondError(c, err)
		}

		b, err := svc.MarkPaid(c.UserContext(), id, operator(c, req.Operator))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(b)
	}
}

// BillAuditLogs godoc
// @Summary Audit trail of a bill
// @Tags bills
// @Produce json
// @Param id path string true "Bill ID"
// @Success 200 {array} model.BillAuditLog
// @Router /bills/{id}/audit-logs [get]
func BillAuditLogs(svc service.AgentBillService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		logs, err := svc.AuditLogs(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"data": logs})
	}
}
