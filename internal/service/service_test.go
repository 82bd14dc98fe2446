package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"hotelagent/internal/model"
	"hotelagent/internal/repository"
)

var fixedNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// memCache is an in-memory ReportCache that records invalidations.
type memCache struct {
	data     map[string][]byte
	counters map[string]int64
	deleted  []string
	sets     int
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]byte), counters: make(map[string]int64)}
}

func (c *memCache) Counter(_ context.Context, key string) (int64, error) {
	return c.counters[key], nil
}

func (c *memCache) Incr(_ context.Context, key string) (int64, error) {
	c.counters[key]++
	return c.counters[key], nil
}

func (c *memCache) Get(_ context.Context, key string, dst any) (bool, error) {
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (c *memCache) Set(_ context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.sets++
	c.data[key] = raw
	return nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
	}
	c.deleted = append(c.deleted, keys...)
	return nil
}

func TestPageQuery(t *testing.T) {
	assert.Equal(t, repository.PageQuery{Limit: 10, Offset: 0}, pageQuery(0, -5))
	assert.Equal(t, repository.PageQuery{Limit: 100, Offset: 20}, pageQuery(500, 20))
	assert.Equal(t, repository.PageQuery{Limit: 25, Offset: 50}, pageQuery(25, 50))
}

func TestNotFound(t *testing.T) {
	err := notFound("bill", sql.ErrNoRows)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "bill not found")

	other := errors.New("connection reset")
	assert.Same(t, other, notFound("bill", other))
}

func TestDomainError(t *testing.T) {
	assert.NoError(t, domainError(nil))
	assert.ErrorIs(t, domainError(model.ErrOrderLocked), ErrValidation)
	assert.ErrorIs(t, domainError(model.ErrOrderLocked), model.ErrOrderLocked)
	assert.ErrorIs(t, domainError(model.ErrItemNotInList), ErrNotFound)
	assert.ErrorIs(t, domainError(fmt.Errorf("%w: x", model.ErrInvalidTransition)), ErrInvalidTransition)
	assert.ErrorIs(t, domainError(model.ErrBillNotSettled), ErrValidation)

	plain := errors.New("boom")
	assert.Same(t, plain, domainError(plain))
}

func TestConflict(t *testing.T) {
	err := conflict(fmt.Errorf("%w: agents_code_key", repository.ErrDuplicate))
	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorIs(t, err, repository.ErrDuplicate)
	assert.NoError(t, conflict(nil))
}

func TestDocumentNo(t *testing.T) {
	no := documentNo("HO", time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))
	assert.Regexp(t, regexp.MustCompile(`^HO20250102030405[0-9a-f]{4}$`), no)
}

func TestJoinErrors(t *testing.T) {
	a, b := errors.New("a"), errors.New("b")
	err := joinErrors("expire agents", []error{a, b})
	assert.ErrorIs(t, err, a)
	assert.ErrorIs(t, err, b)
	assert.Contains(t, err.Error(), "expire agents: 2 failed")
}
