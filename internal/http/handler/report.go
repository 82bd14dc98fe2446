package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"hotelagent/internal/export"
	"hotelagent/internal/service"
)

// MonthlyReport godoc
// @Summary Bill totals of a month grouped by status
// @Tags reports
// @Produce json
// @Param month query string true "YYYY-MM"
// @Success 200 {object} service.MonthlyReport
// @Router /bills/report [get]
func MonthlyReport(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		m, err := parseMonth(c.Query("month"))
		if err != nil {
			return respondError(c, err)
		}
		rep, err := svc.MonthlyReport(c.UserContext(), m)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(rep)
	}
}

// ExportBills godoc
// @Summary Export the bills of a month
// @Description Streams the file, or with store=true uploads it and returns a pre-signed URL.
// @Tags reports
// @Produce octet-stream
// @Produce json
// @Param month query string true "YYYY-MM"
// @Param format query string false "csv or xlsx" default(csv)
// @Param store query bool false "Upload to object storage"
// @Success 200 {object} service.StoredExport
// @Failure 503 {object} errorPayload
// @Router /bills/export [get]
func ExportBills(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		m, err := parseMonth(c.Query("month"))
		if err != nil {
			return respondError(c, err)
		}
		format, err := export.ParseFormat(c.Query("format"))
		if err != nil {
			return respondError(c, badRequest("INVALID_FORMAT", "%s", err.Error()))
		}

		if c.QueryBool("store") {
			stored, err := svc.ExportToStorage(c.UserContext(), m, format)
			if err != nil {
				return respondError(c, err)
			}
			return c.JSON(stored)
		}

		file, err := svc.Export(c.UserContext(), m, format)
		if err != nil {
			return respondError(c, err)
		}
		c.Set(fiber.HeaderContentType, file.ContentType)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.Name))
		return c.Send(file.Data)
	}
}

// AuditStats godoc
// @Summary Audit activity counts by action and operator
// @Tags reports
// @Produce json
// @Param from query string false "RFC 3339 or YYYY-MM-DD, defaults to 30 days ago"
// @Param to query string false "RFC 3339 or YYYY-MM-DD, defaults to now"
// @Success 200 {object} model.AuditStats
// @Router /bills/audit/stats [get]
func AuditStats(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		from, err := parseInstant(c.Query("from"))
		if err != nil {
			return respondError(c, badRequest("INVALID_FROM", "invalid from"))
		}
		to, err := parseInstant(c.Query("to"))
		if err != nil {
			return respondError(c, badRequest("INVALID_TO", "invalid to"))
		}

		stats, err := svc.AuditStats(c.UserContext(), from, to)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(stats)
	}
}
