package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"hotelagent/internal/model"
	"hotelagent/internal/repository"
	"hotelagent/internal/service"
)

type createAgentRequest struct {
	Code           string           `json:"code" validate:"omitempty,max=20"`
	Name           string           `json:"name" validate:"required,max=128"`
	ContactName    string           `json:"contact_name" validate:"max=64"`
	Phone          string           `json:"phone" validate:"max=32"`
	Email          string           `json:"email" validate:"omitempty,email,max=128"`
	Level          string           `json:"level" validate:"required,oneof=A B C"`
	CommissionRate *decimal.Decimal `json:"commission_rate"`
	ValidFrom      string           `json:"valid_from" validate:"omitempty,datetime=2006-01-02"`
	ExpiryDate     string           `json:"expiry_date" validate:"required,datetime=2006-01-02"`
}

type updateAgentRequest struct {
	Name           *string          `json:"name" validate:"omitempty,max=128"`
	ContactName    *string          `json:"contact_name" validate:"omitempty,max=64"`
	Phone          *string          `json:"phone" validate:"omitempty,max=32"`
	Email          *string          `json:"email" validate:"omitempty,email,max=128"`
	CommissionRate *decimal.Decimal `json:"commission_rate"`
	ExpiryDate     *string          `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
}

type changeLevelRequest struct {
	Level string `json:"level" validate:"required,oneof=A B C"`
}

type changeAgentStatusRequest struct {
	Action     string  `json:"action" validate:"required,oneof=freeze unfreeze renew"`
	ExpiryDate *string `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
}

// CreateAgent godoc
// @Summary Create agent
// @Tags agents
// @Accept json
// @Produce json
// @Param body body createAgentRequest true "Agent"
// @Success 201 {object} model.Agent
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /agents [post]
func CreateAgent(svc service.AgentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createAgentRequest
		if err := bind(c, &req); err != nil {
			return respondError(c, err)
		}

		in := service.CreateAgentInput{
			Code:           req.Code,
			Name:           req.Name,
			ContactName:    req.ContactName,
			Phone:          req.Phone,
			Email:          req.Email,
			Level:          model.AgentLevel(req.Level),
			CommissionRate: req.CommissionRate,
		}
		var err error
		if in.ExpiryDate, err = dateField("expiry_date", req.ExpiryDate); err != nil {
			return respondError(c, err)
		}
		if req.ValidFrom != "" {
			if in.ValidFrom, err = dateField("valid_from", req.ValidFrom); err != nil {
				return respondError(c, err)
			}
		}

		a, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(a)
	}
}

// ListAgents godoc
// @Summary List agents
// @Tags agents
// @Produce json
// @Param status query string false "active, frozen or expired"
// @Param level query string false "A, B or C"
// @Param keyword query string false "Matches code or name"
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} service.ListResult[model.Agent]
// @Router /agents [get]
func ListAgents(svc service.AgentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := pagination(c)
		if err != nil {
			return respondError(c, err)
		}
		f := repository.AgentFilter{
			Status:  model.AgentStatus(c.Query("status")),
			Level:   model.AgentLevel(c.Query("level")),
			Keyword: c.Query("keyword"),
		}

		res, err := svc.List(c.UserContext(), f, limit, offset)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

// GetAgent godoc
// @Summary Get agent
// @Tags agents
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {object} model.Agent
// @Failure 404 {object} errorPayload
// @Router /agents/{id} [get]
func GetAgent(svc service.AgentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		a, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(a)
	}
}

// UpdateAgent godoc
// @Summary Update agent contact fields, rate or expiry
// @Tags agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID"
// @Param body body updateAgentRequest true "Changes"
// @Success 200 {object} model.Agent
// @Router /agents/{id} [put]
func UpdateAgent(svc service.AgentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		var req updateAgentRequest
		if err := bind(c, &req); err != nil {
			return respondError(c, err)
		}
		expiry, err := optionalDate("expiry_date", req.ExpiryDate)
		if err != nil {
			return respondError(c, err)
		}

		a, err := svc.Update(c.UserContext(), id, service.UpdateAgentInput{
			Name:           req.Name,
			ContactName:    req.ContactName,
			Phone:          req.Phone,
			Email:          req.Email,
			CommissionRate: req.CommissionRate,
			ExpiryDate:     expiry,
		})
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(a)
	}
}

// ChangeAgentLevel godoc
// @Summary Change agent tier; the rate resets to the tier default
// @Tags agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID"
// @Param body body changeLevelRequest true "Level"
// @Success 200 {object} model.Agent
// @Router /agents/{id}/level [post]
func ChangeAgentLevel(svc service.AgentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		var req changeLevelRequest
		if err := bind(c, &req); err != nil {
			return respondError(c, err)
		}

		a, err := svc.ChangeLevel(c.UserContext(), id, model.AgentLevel(req.Level))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(a)
	}
}

// ChangeAgentStatus godoc
// @Summary Freeze, unfreeze or renew an agent
// @Tags agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID"
// @Param body body changeAgentStatusRequest true "Action"
// @Success 200 {object} model.Agent
// @Router /agents/{id}/status [post]
func ChangeAgentStatus(svc service.AgentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		var req changeAgentStatusRequest
		if err := bind(c, &req); err != nil {
			return respondError(c, err)
		}
		expiry, err := optionalDate("expiry_date", req.ExpiryDate)
		if err != nil {
			return respondError(c, err)
		}

		a, err := svc.ChangeStatus(c.UserContext(), id, service.AgentStatusAction(req.Action), expiry)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(a)
	}
}
