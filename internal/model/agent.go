package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AgentLevel is the commission tier of an agent.
type AgentLevel string

// AgentStatus is the lifecycle state of an agent account.
type AgentStatus string

const (
	AgentLevelA AgentLevel = "A"
	AgentLevelB AgentLevel = "B"
	AgentLevelC AgentLevel = "C"
)

const (
	AgentStatusActive  AgentStatus = "active"
	AgentStatusFrozen  AgentStatus = "frozen"
	AgentStatusExpired AgentStatus = "expired"
)

var (
	ErrInvalidLevel = errors.New("invalid agent level")
	ErrInvalidRate  = errors.New("commission rate must be between 0 and 1")
)

var tierRates = map[AgentLevel]decimal.Decimal{
	AgentLevelA: decimal.RequireFromString("0.10"),
	AgentLevelB: decimal.RequireFromString("0.08"),
	AgentLevelC: decimal.RequireFromString("0.05"),
}

// Valid reports whether l is one of the known tiers.
func (l AgentLevel) Valid() bool {
	_, ok := tierRates[l]
	return ok
}

// DefaultRate returns the tier commission rate as a fraction.
func (l AgentLevel) DefaultRate() (decimal.Decimal, error) {
	r, ok := tierRates[l]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidLevel, string(l))
	}
	return r, nil
}

// ValidateRate checks that a commission rate is a fraction in [0, 1] with at most 4 decimal places.
func ValidateRate(r decimal.Decimal) error {
	if r.IsNegative() || r.GreaterThan(decimal.NewFromInt(1)) {
		return ErrInvalidRate
	}
	if !FitsScale(r, RateScale) {
		return fmt.Errorf("%w: at most %d decimal places", ErrInvalidRate, RateScale)
	}
	return nil
}

// Agent is a reseller account with a commission tier and a validity window.
type Agent struct {
	ID             string          `json:"id"`
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	ContactName    string          `json:"contact_name"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email"`
	Level          AgentLevel      `json:"level"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	Status         AgentStatus     `json:"status"`
	ValidFrom      time.Time       `json:"valid_from"`
	ExpiryDate     time.Time       `json:"expiry_date"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ChangeLevel moves the agent to a new tier and resets the rate to the tier default.
func (a *Agent) ChangeLevel(l AgentLevel) error {
	rate, err := l.DefaultRate()
	if err != nil {
		return err
	}
	a.Level = l
	a.CommissionRate = rate
	return nil
}

// IsExpiredAt reports whether the agent's validity ended before day.
// Both values are compared as calendar dates.
func (a *Agent) IsExpiredAt(day time.Time) bool {
	return DateOf(a.ExpiryDate).Before(DateOf(day))
}

// Freeze suspends an active agent.
func (a *Agent) Freeze() error {
	if a.Status != AgentStatusActive {
		return transitionError("agent", string(a.Status), string(AgentStatusFrozen))
	}
	a.Status = AgentStatusFrozen
	return nil
}

// Unfreeze reactivates a frozen agent.
func (a *Agent) Unfreeze() error {
	if a.Status != AgentStatusFrozen {
		return transitionError("agent", string(a.Status), string(AgentStatusActive))
	}
	a.Status = AgentStatusActive
	return nil
}

// Expire marks an active or frozen agent as expired.
func (a *Agent) Expire() error {
	if a.Status != AgentStatusActive && a.Status != AgentStatusFrozen {
		return transitionError("agent", string(a.Status), string(AgentStatusExpired))
	}
	a.Status = AgentStatusExpired
	return nil
}

// Renew reactivates an expired agent with a new expiry date that must lie after today.
func (a *Agent) Renew(expiry, today time.Time) error {
	if a.Status != AgentStatusExpired {
		return transitionError("agent", string(a.Status), string(AgentStatusActive))
	}
	if !DateOf(expiry).After(DateOf(today)) {
		return fmt.Errorf("%w: renewal expiry must be after today", ErrInvalidTransition)
	}
	a.ExpiryDate = DateOf(expiry)
	a.Status = AgentStatusActive
	return nil
}
