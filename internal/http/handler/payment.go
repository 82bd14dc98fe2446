package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"hotelagent/internal/model"
	"hotelagent/internal/service"
)

type createPaymentRequest struct {
	Amount         decimal.Decimal `json:"amount"`
	Method         string          `json:"method" validate:"required,oneof=bank_transfer alipay wechat cash other"`
	TransactionRef string          `json:"transaction_ref" validate:"max=128"`
	Remark         string          `json:"remark" validate:"max=512"`
	Operator       string          `json:"operator" validate:"max=64"`
}

type completePaymentRequest struct {
	TransactionRef string `json:"transaction_ref" validate:"max=128"`
	Operator       string `json:"operator" validate:"max=64"`
}

type closePaymentRequest struct {
	Reason string `json:"reason" validate:"max=512"`
}

// ListBillPayments godoc
// @Summary Payments recorded against a bill
// @Tags payments
// @Produce json
// @Param id path string true "Bill ID"
// @Success 200 {array} model.Payment
// @Router /bills/{id}/payments [get]
func ListBillPayments(svc service.PaymentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		items, err := svc.ListByBill(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"data": items})
	}
}

// CreatePayment godoc
// @Summary Record a pending payment on a confirmed bill
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Bill ID"
// @Param body body createPaymentRequest true "Payment"
// @Success 201 {object} model.Payment
// @Failure 400 {object} errorPayload
// @Router /bills/{id}/payments [post]
func CreatePayment(svc service.PaymentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		var req createPaymentRequest
		if err := bind(c, &req); err != nil {
			return respondError(c, err)
		}

		p, err := svc.Create(c.UserContext(), id, service.CreatePaymentInput{
			Amount:         req.Amount,
			Method:         model.PaymentMethod(req.Method),
			TransactionRef: req.TransactionRef,
			Remark:         req.Remark,
			Operator:       operator(c, req.Operator),
		})
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// GetPayment godoc
// @Summary Get payment
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} model.Payment
// @Failure 404 {object} errorPayload
// @Router /payments/{id} [get]
func GetPayment(svc service.PaymentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		p, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(p)
	}
}

// CompletePayment godoc
// @Summary Complete a pending payment and apply it to its bill
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param body body completePaymentRequest false "Transaction reference"
// @Success 200 {object} model.Payment
// @Router /payments/{id}/complete [post]
func CompletePayment(svc service.PaymentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		var req completePaymentRequest
		if err := bind(c, &req); err != nil {
			return respondError(c, err)
		}

		p, err := svc.Complete(c.UserContext(), id, req.TransactionRef, operator(c, req.Operator))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(p)
	}
}

// FailPayment godoc
// @Summary Mark a pending payment as failed
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param body body closePaymentRequest false "Reason"
// @Success 200 {object} model.Payment
// @Router /payments/{id}/fail [post]
func FailPayment(svc service.PaymentService) fiber.Handler {
	return closePayment(svc.Fail)
}

// CancelPayment godoc
// @Summary Cancel a pending payment
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param body body closePaymentRequest false "Reason"
// @Success 200 {object} model.Payment
// @Router /payments/{id}/cancel [post]
func CancelPayment(svc service.PaymentService) fiber.Handler {
	return closePayment(svc.Cancel)
}

func closePayment(fn func(ctx context.Context, id, reason string) (*model.Payment, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		var req closePaymentRequest
		if err := bind(c, &req); err != nil {
			return respondError(c, err)
		}

		p, err := fn(c.UserContext(), id, req.Reason)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(p)
	}
}

// ReconcileBills godoc
// @Summary Reconcile the bills of a month against their payments
// @Tags payments
// @Produce json
// @Param month query string true "YYYY-MM"
// @Success 200 {object} service.ReconcileReport
// @Router /bills/reconciliation [get]
func ReconcileBills(svc service.PaymentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		m, err := parseMonth(c.Query("month"))
		if err != nil {
			return respondError(c, err)
		}
		rep, err := svc.Reconcile(c.UserContext(), m)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(rep)
	}
}
