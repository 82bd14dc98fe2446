package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"hotelagent/internal/metrics"
	"hotelagent/internal/model"
	"hotelagent/internal/repository"
)

var agentCodePattern = regexp.MustCompile(`^[A-Z0-9]{4,20}$`)

// CreateAgentInput carries the fields of a new agent. A nil CommissionRate selects the tier default;
// a zero ValidFrom means today.
type CreateAgentInput struct {
	Code           string
	Name           string
	ContactName    string
	Phone          string
	Email          string
	Level          model.AgentLevel
	CommissionRate *decimal.Decimal
	ValidFrom      time.Time
	ExpiryDate     time.Time
}

// UpdateAgentInput holds optional changes; nil fields are left untouched.
type UpdateAgentInput struct {
	Name           *string
	ContactName    *string
	Phone          *string
	Email          *string
	CommissionRate *decimal.Decimal
	ExpiryDate     *time.Time
}

// AgentStatusAction is a manual status change requested by an operator.
type AgentStatusAction string

const (
	AgentActionFreeze   AgentStatusAction = "freeze"
	AgentActionUnfreeze AgentStatusAction = "unfreeze"
	AgentActionRenew    AgentStatusAction = "renew"
)

// CheckExpiredResult reports what an expiry check did.
type CheckExpiredResult struct {
	Today    time.Time     `json:"today"`
	DryRun   bool          `json:"dry_run"`
	Expired  []model.Agent `json:"expired"`
	Expiring []model.Agent `json:"expiring"`
	Failed   []string      `json:"failed,omitempty"`
}

// AgentService defines the use cases for agent accounts.
type AgentService interface {
	Create(ctx context.Context, in CreateAgentInput) (*model.Agent, error)
	Get(ctx context.Context, id string) (*model.Agent, error)
	List(ctx context.Context, f repository.AgentFilter, limit, offset int) (*ListResult[model.Agent], error)
	Update(ctx context.Context, id string, in UpdateAgentInput) (*model.Agent, error)

	// ChangeLevel moves the agent to another tier and resets its rate to the tier default.
	ChangeLevel(ctx context.Context, id string, level model.AgentLevel) (*model.Agent, error)

	// ChangeStatus freezes, unfreezes or renews an agent. Renew requires expiry.
	ChangeStatus(ctx context.Context, id string, action AgentStatusAction, expiry *time.Time) (*model.Agent, error)

	// CheckExpired expires active or frozen agents whose expiry date has passed and lists those
	// expiring within warnDays. With dryRun nothing is written.
	CheckExpired(ctx context.Context, warnDays int, dryRun bool) (*CheckExpiredResult, error)
}

type agentService struct {
	repo    repository.AgentRepository
	metrics *metrics.Metrics
	loc     *time.Location
	now     func() time.Time
}

// NewAgentService constructs a new AgentService. Calendar dates are evaluated in loc.
func NewAgentService(repo repository.AgentRepository, m *metrics.Metrics, loc *time.Location) AgentService {
	if loc == nil {
		loc = time.UTC
	}
	return &agentService{repo: repo, metrics: m, loc: loc, now: time.Now}
}

func (s *agentService) today() time.Time {
	return model.DateOf(s.now().In(s.loc))
}

// civilDate keeps the calendar day of t and drops time and zone, matching how DATE columns are read back.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *agentService) Create(ctx context.Context, in CreateAgentInput) (*model.Agent, error) {
	code := strings.ToUpper(strings.TrimSpace(in.Code))
	if code == "" {
		code = "AG" + strings.ToUpper(strings.ReplaceAll(newID(), "-", "")[:8])
	}
	if !agentCodePattern.MatchString(code) {
		return nil, invalid("agent code must be 4-20 upper-case letters or digits")
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, invalid("agent name is required")
	}
	rate, err := in.Level.DefaultRate()
	if err != nil {
		return nil, domainError(err)
	}
	if in.CommissionRate != nil {
		if err := model.ValidateRate(*in.CommissionRate); err != nil {
			return nil, domainError(err)
		}
		rate = *in.CommissionRate
	}

	validFrom := in.ValidFrom
	if validFrom.IsZero() {
		validFrom = s.today()
	}
	validFrom = civilDate(validFrom)
	if in.ExpiryDate.IsZero() {
		return nil, invalid("expiry date is required")
	}
	expiry := civilDate(in.ExpiryDate)
	if expiry.Before(validFrom) {
		return nil, invalid("expiry date must not be before valid from")
	}

	now := s.now().UTC()
	a := &model.Agent{
		ID:             newID(),
		Code:           code,
		Name:           strings.TrimSpace(in.Name),
		ContactName:    in.ContactName,
		Phone:          in.Phone,
		Email:          in.Email,
		Level:          in.Level,
		CommissionRate: rate,
		Status:         model.AgentStatusActive,
		ValidFrom:      validFrom,
		ExpiryDate:     expiry,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	stored, err := s.repo.Create(ctx, a)
	if err != nil {
		return nil, conflict(err)
	}
	return stored, nil
}

func (s *agentService) Get(ctx context.Context, id string) (*model.Agent, error) {
	if id == "" {
		return nil, invalid("id is required")
	}
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("agent", err)
	}
	return a, nil
}

func (s *agentService) List(ctx context.Context, f repository.AgentFilter, limit, offset int) (*ListResult[model.Agent], error) {
	if f.Status != "" && f.Status != model.AgentStatusActive && f.Status != model.AgentStatusFrozen && f.Status != model.AgentStatusExpired {
		return nil, invalid("unknown agent status %q", f.Status)
	}
	if f.Level != "" && !f.Level.Valid() {
		return nil, invalid("unknown agent level %q", f.Level)
	}
	res, err := s.repo.List(ctx, f, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return &ListResult[model.Agent]{Items: res.Items, Total: res.Total}, nil
}

func (s *agentService) Update(ctx context.Context, id string, in UpdateAgentInput) (*model.Agent, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, invalid("agent name must not be empty")
		}
		a.Name = name
	}
	if in.ContactName != nil {
		a.ContactName = *in.ContactName
	}
	if in.Phone != nil {
		a.Phone = *in.Phone
	}
	if in.Email != nil {
		a.Email = *in.Email
	}
	if in.CommissionRate != nil {
		if err := model.ValidateRate(*in.CommissionRate); err != nil {
			return nil, domainError(err)
		}
		a.CommissionRate = *in.CommissionRate
	}
	if in.ExpiryDate != nil {
		expiry := civilDate(*in.ExpiryDate)
		if expiry.Before(civilDate(a.ValidFrom)) {
			return nil, invalid("expiry date must not be before valid from")
		}
		a.ExpiryDate = expiry
	}
	return s.save(ctx, a)
}

func (s *agentService) ChangeLevel(ctx context.Context, id string, level model.AgentLevel) (*model.Agent, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := a.ChangeLevel(level); err != nil {
		return nil, domainError(err)
	}
	return s.save(ctx, a)
}

func (s *agentService) ChangeStatus(ctx context.Context, id string, action AgentStatusAction, expiry *time.Time) (*model.Agent, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	switch action {
	case AgentActionFreeze:
		err = a.Freeze()
	case AgentActionUnfreeze:
		err = a.Unfreeze()
	case AgentActionRenew:
		if expiry == nil {
			return nil, invalid("renew requires an expiry date")
		}
		err = a.Renew(civilDate(*expiry), civilDate(s.today()))
	default:
		return nil, invalid("unknown status action %q", action)
	}
	if err != nil {
		return nil, domainError(err)
	}
	return s.save(ctx, a)
}

func (s *agentService) save(ctx context.Context, a *model.Agent) (*model.Agent, error) {
	a.UpdatedAt = s.now().UTC()
	stored, err := s.repo.Update(ctx, a)
	if err != nil {
		return nil, notFound("agent", conflict(err))
	}
	return stored, nil
}

func (s *agentService) CheckExpired(ctx context.Context, warnDays int, dryRun bool) (*CheckExpiredResult, error) {
	if warnDays < 0 {
		warnDays = 0
	}
	today := civilDate(s.today())
	// One query covers both groups: everything expiring before the end of the warning horizon.
	horizon := today.AddDate(0, 0, warnDays+1)
	agents, err := s.repo.ListExpiringBefore(ctx, horizon)
	if err != nil {
		return nil, err
	}

	res := &CheckExpiredResult{
		Today:    today,
		DryRun:   dryRun,
		Expired:  make([]model.Agent, 0),
		Expiring: make([]model.Agent, 0),
	}
	var failures []error
	for i := range agents {
		a := agents[i]
		if !a.IsExpiredAt(today) {
			res.Expiring = append(res.Expiring, a)
			continue
		}
		if !dryRun {
			if err := a.Expire(); err != nil {
				res.Failed = append(res.Failed, a.Code)
				failures = append(failures, err)
				continue
			}
			if _, err := s.save(ctx, &a); err != nil {
				res.Failed = append(res.Failed, a.Code)
				failures = append(failures, err)
				continue
			}
		}
		res.Expired = append(res.Expired, a)
	}
	if !dryRun {
		s.metrics.AgentsExpired(len(res.Expired))
	}
	if len(failures) > 0 {
		return res, joinErrors("expire agents", failures)
	}
	return res, nil
}
