// Package service holds the use cases of the agent billing backend.
// Services depend on repository interfaces only and translate storage errors into the sentinels below.
package service

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hotelagent/internal/model"
	"hotelagent/internal/repository"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = model.ErrInvalidTransition
	ErrConflict          = errors.New("conflict")
	ErrAmountExceeded    = errors.New("amount exceeds the outstanding commission")
	ErrUnavailable       = errors.New("not available")
)

// ListResult is the service-level DTO for paginated listings.
type ListResult[T any] struct {
	Items []T `json:"data"`
	Total int `json:"total"`
}

const (
	defaultLimit = 10
	maxLimit     = 100
)

func pageQuery(limit, offset int) repository.PageQuery {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return repository.PageQuery{Limit: limit, Offset: offset}
}

func notFound(what string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %w", what, ErrNotFound)
	}
	return err
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// domainError classifies errors returned by model methods.
func domainError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, model.ErrInvalidTransition):
		return err
	case errors.Is(err, model.ErrItemNotInList):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, model.ErrInvalidLevel),
		errors.Is(err, model.ErrInvalidRate),
		errors.Is(err, model.ErrInvalidItem),
		errors.Is(err, model.ErrOrderLocked),
		errors.Is(err, model.ErrOrderEmpty),
		errors.Is(err, model.ErrBillNotSettled):
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return err
}

func conflict(err error) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return fmt.Errorf("%w: %w", ErrConflict, err)
	}
	return err
}

// documentNo builds numbers like HO20250101120000a1b2: prefix, timestamp and 4 hex characters.
func documentNo(prefix string, now time.Time) string {
	return prefix + now.Format("20060102150405") + strings.ReplaceAll(uuid.NewString(), "-", "")[:4]
}

func newID() string {
	return uuid.New().String()
}

func joinErrors(op string, errs []error) error {
	return fmt.Errorf("%s: %d failed: %w", op, len(errs), errors.Join(errs...))
}
