package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hotelagent/internal/http/middleware"
	"hotelagent/internal/model"
)

const dateLayout = "2006-01-02"

// requestError is a client mistake detected before any service is called.
type requestError struct {
	code    string
	message string
}

func (e *requestError) Error() string { return e.message }

func badRequest(code, format string, args ...any) error {
	return &requestError{code: code, message: fmt.Sprintf(format, args...)}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names instead of Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bind decodes the JSON body into dst and validates it. An empty body decodes to the zero value.
func bind(c *fiber.Ctx, dst any) error {
	if len(c.Body()) > 0 {
		if err := c.BodyParser(dst); err != nil {
			return badRequest("INVALID_BODY", "request body must be valid JSON")
		}
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return badRequest("VALIDATION_ERROR", "%s", describe(verrs[0]))
		}
		return badRequest("VALIDATION_ERROR", "invalid request")
	}
	return nil
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date formatted as %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "email":
		return field + " must be a valid email address"
	}
	return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
}

// pagination reads limit and offset. Bounds are applied by the services.
func pagination(c *fiber.Ctx) (int, int, error) {
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil {
		return 0, 0, badRequest("INVALID_LIMIT", "invalid limit")
	}
	offset, err := strconv.Atoi(c.Query("offset", "0"))
	if err != nil {
		return 0, 0, badRequest("INVALID_OFFSET", "invalid offset")
	}
	return limit, offset, nil
}

func idParam(c *fiber.Ctx, name string) (string, error) {
	id := c.Params(name)
	if _, err := uuid.Parse(id); err != nil {
		return "", badRequest("INVALID_ID", "invalid %s format", name)
	}
	return id, nil
}

func parseMonth(s string) (model.Month, error) {
	if s == "" {
		return model.Month{}, badRequest("INVALID_MONTH", "month is required (YYYY-MM)")
	}
	m, err := model.ParseMonth(s)
	if err != nil {
		return model.Month{}, badRequest("INVALID_MONTH", "%s", err.Error())
	}
	return m, nil
}

// parseDate reads a calendar date. The zone is irrelevant; services keep only the day.
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// dateField parses a required body date, naming the field when it is malformed.
func dateField(field, s string) (time.Time, error) {
	d, err := parseDate(s)
	if err != nil {
		return time.Time{}, badRequest("VALIDATION_ERROR", "%s must be a date formatted as %s", field, dateLayout)
	}
	return d, nil
}

func optionalDate(field string, s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	d, err := dateField(field, *s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// parseInstant accepts RFC 3339 timestamps or plain dates.
func parseInstant(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return parseDate(s)
}

// operator prefers the authenticated subject over the name sent in the body.
func operator(c *fiber.Ctx, fromBody string) string {
	if op := middleware.Operator(c); op != "" {
		return op
	}
	if fromBody = strings.TrimSpace(fromBody); fromBody != "" {
		return fromBody
	}
	return "admin"
}
