package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"hotelagent/internal/service"
)

// Services bundles the use cases served over HTTP.
type Services struct {
	Agents   service.AgentService
	Orders   service.OrderService
	Bills    service.AgentBillService
	Payments service.PaymentService
	Reports  service.ReportService
}

// RegisterRoutes attaches the health checks and the /api/v1 routes to app.
// mw runs in front of every /api/v1 route only (authentication).
func RegisterRoutes(app *fiber.App, db *sql.DB, svc Services, mw ...fiber.Handler) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", Liveness())

	api := app.Group("/api/v1", mw...)

	agents := api.Group("/agents")
	agents.Post("/", CreateAgent(svc.Agents))
	agents.Get("/", ListAgents(svc.Agents))
	agents.Get("/:id", GetAgent(svc.Agents))
	agents.Put("/:id", UpdateAgent(svc.Agents))
	agents.Post("/:id/level", ChangeAgentLevel(svc.Agents))
	agents.Post("/:id/status", ChangeAgentStatus(svc.Agents))

	orders := api.Group("/orders")
	orders.Post("/", CreateOrder(svc.Orders))
	orders.Get("/", ListOrders(svc.Orders))
	orders.Get("/:id", GetOrder(svc.Orders))
	orders.Post("/:id/items", AddOrderItem(svc.Orders))
	orders.Delete("/:id/items/:itemId", RemoveOrderItem(svc.Orders))
	orders.Post("/:id/status", ChangeOrderStatus(svc.Orders))

	// Static paths first, they would otherwise match /:id.
	bills := api.Group("/bills")
	bills.Get("/", ListBills(svc.Bills))
	bills.Post("/generate", GenerateBills(svc.Bills))
	bills.Get("/report", MonthlyReport(svc.Reports))
	bills.Get("/export", ExportBills(svc.Reports))
	bills.Get("/reconciliation", ReconcileBills(svc.Payments))
	bills.Get("/audit/stats", AuditStats(svc.Reports))
	bills.Get("/:id", GetBill(svc.Bills))
	bills.Post("/:id/confirm", ConfirmBill(svc.Bills))
	bills.Post("/:id/mark-paid", MarkBillPaid(svc.Bills))
	bills.Get("/:id/audit-logs", BillAuditLogs(svc.Bills))
	bills.Get("/:id/payments", ListBillPayments(svc.Payments))
	bills.Post("/:id/payments", CreatePayment(svc.Payments))

	payments := api.Group("/payments")
	payments.Get("/:id", GetPayment(svc.Payments))
	payments.Post("/:id/complete", CompletePayment(svc.Payments))
	payments.Post("/:id/fail", FailPayment(svc.Payments))
	payments.Post("/:id/cancel", CancelPayment(svc.Payments))
}
