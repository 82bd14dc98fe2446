package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"hotelagent/internal/billing"
	"hotelagent/internal/metrics"
	"hotelagent/internal/model"
	"hotelagent/internal/repository"
)

// SystemOperator is recorded in audit rows written by scheduled jobs.
const SystemOperator = "system"

// GenerateOutcome says what generation did for one agent.
type GenerateOutcome string

const (
	OutcomeCreated     GenerateOutcome = "created"
	OutcomeRegenerated GenerateOutcome = "regenerated"
	OutcomeSkipped     GenerateOutcome = "skipped"
	OutcomeEmpty       GenerateOutcome = "empty"
)

// GenerateResult is the outcome of generating one agent's bill.
type GenerateResult struct {
	AgentID   string           `json:"agent_id"`
	AgentCode string           `json:"agent_code"`
	Outcome   GenerateOutcome  `json:"outcome"`
	Reason    string           `json:"reason,omitempty"`
	Bill      *model.AgentBill `json:"bill,omitempty"`
}

// GenerateSummary aggregates a monthly generation run.
type GenerateSummary struct {
	Month       string            `json:"month"`
	Force       bool              `json:"force"`
	Created     int               `json:"created"`
	Regenerated int               `json:"regenerated"`
	Skipped     int               `json:"skipped"`
	Failed      int               `json:"failed"`
	Errors      map[string]string `json:"errors,omitempty"`
	Results     []GenerateResult  `json:"results"`
}

func (s *GenerateSummary) add(r *GenerateResult) {
	switch r.Outcome {
	case OutcomeCreated:
		s.Created++
	case OutcomeRegenerated:
		s.Regenerated++
	default:
		s.Skipped++
	}
	s.Results = append(s.Results, *r)
}

// AgentBillService defines the use cases for monthly commission bills.
type AgentBillService interface {
	// Generate creates or, with force, recomputes the bill of one agent for month m.
	// Confirmed and paid bills are never touched.
	Generate(ctx context.Context, agentID string, m model.Month, force bool, operator string) (*GenerateResult, error)

	// GenerateMonthlyBills runs Generate for every agent with billable activity in m.
	// Per-agent failures are collected in the summary; the error is reserved for failures to start the run.
	GenerateMonthlyBills(ctx context.Context, m model.Month, force bool, operator string) (*GenerateSummary, error)

	Get(ctx context.Context, id string) (*model.AgentBill, error)
	List(ctx context.Context, f repository.BillFilter, limit, offset int) (*ListResult[model.AgentBill], error)
	Confirm(ctx context.Context, id, operator string) (*model.AgentBill, error)

	// MarkPaid closes a confirmed bill whose commission is zero or already covered by payments.
	MarkPaid(ctx context.Context, id, operator string) (*model.AgentBill, error)

	AuditLogs(ctx context.Context, id string) ([]model.BillAuditLog, error)
}

type billService struct {
	tx      repository.Transactor
	agents  repository.AgentRepository
	orders  repository.OrderRepository
	bills   repository.BillRepository
	audits  repository.AuditLogRepository
	cache   ReportCache
	metrics *metrics.Metrics
	basis   model.CommissionBasis
	now     func() time.Time
}

// BillRepos bundles the repositories used by the bill service.
type BillRepos struct {
	Agents repository.AgentRepository
	Orders repository.OrderRepository
	Bills  repository.BillRepository
	Audits repository.AuditLogRepository
}

// NewAgentBillService constructs a new AgentBillService computing commission on basis.
func NewAgentBillService(tx repository.Transactor, repos BillRepos, cache ReportCache, m *metrics.Metrics, basis model.CommissionBasis) (AgentBillService, error) {
	if !basis.Valid() {
		return nil, fmt.Errorf("unknown commission basis %q", basis)
	}
	return &billService{
		tx:      tx,
		agents:  repos.Agents,
		orders:  repos.Orders,
		bills:   repos.Bills,
		audits:  repos.Audits,
		cache:   cache,
		metrics: m,
		basis:   basis,
		now:     time.Now,
	}, nil
}

func writeAudit(ctx context.Context, repo repository.AuditLogRepository, billID string, action model.AuditAction, from, to model.BillStatus, operator, remark string, now time.Time) error {
	return repo.Create(ctx, &model.BillAuditLog{
		ID:         newID(),
		BillID:     billID,
		Action:     action,
		FromStatus: from,
		ToStatus:   to,
		Operator:   operator,
		Remark:     remark,
		CreatedAt:  now,
	})
}

func invalidateMonth(ctx context.Context, c ReportCache, month string) {
	if c == nil {
		return
	}
	gen, err := c.Counter(ctx, reportGenKey(month))
	if _, ierr := c.Incr(ctx, reportGenKey(month)); ierr != nil || err != nil {
		return
	}
	_ = c.Delete(ctx, reportKey(month, gen))
}

func (s *billService) Generate(ctx context.Context, agentID string, m model.Month, force bool, operator string) (*GenerateResult, error) {
	if agentID == "" {
		return nil, invalid("agent_id is required")
	}
	agent, err := s.agents.FindByID(ctx, agentID)
	if err != nil {
		return nil, notFound("agent", err)
	}
	res, err := s.generateOne(ctx, agent, m, force, operator)
	if err != nil {
		return nil, err
	}
	if res.Outcome == OutcomeCreated || res.Outcome == OutcomeRegenerated {
		invalidateMonth(ctx, s.cache, m.String())
	}
	return res, nil
}

func (s *billService) generateOne(ctx context.Context, agent *model.Agent, m model.Month, force bool, operator string) (*GenerateResult, error) {
	if operator == "" {
		operator = SystemOperator
	}
	var res *GenerateResult
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		res, err = s.generate(ctx, agent, m, force, operator)
		return err
	})
	if err != nil {
		s.metrics.BillGenerated("failed")
		return nil, err
	}
	s.metrics.BillGenerated(string(res.Outcome))
	return res, nil
}

func (s *billService) generate(ctx context.Context, agent *model.Agent, m model.Month, force bool, operator string) (*GenerateResult, error) {
	res := &GenerateResult{AgentID: agent.ID, AgentCode: agent.Code}

	existing, err := s.bills.FindByAgentMonth(ctx, agent.ID, m.String())
	switch {
	case errors.Is(err, sql.ErrNoRows):
		existing = nil
	case err != nil:
		return nil, err
	default:
		if existing, err = s.bills.LockByID(ctx, existing.ID); err != nil {
			return nil, err
		}
		res.Bill = existing
		if !existing.Regenerable() {
			res.Outcome = OutcomeSkipped
			res.Reason = fmt.Sprintf("bill %s is %s", existing.BillNo, existing.Status)
			return res, nil
		}
		if !force {
			res.Outcome = OutcomeSkipped
			res.Reason = fmt.Sprintf("bill %s already exists", existing.BillNo)
			return res, nil
		}
	}

	mw := billing.MonthWindow(m)
	items, err := s.orders.ListBillableItems(ctx, agent.ID, mw.Start, mw.End)
	if err != nil {
		return nil, err
	}
	calc := billing.Calculate(m, agent, items, s.basis)
	now := s.now().UTC()

	if existing == nil {
		if calc.OrderCount == 0 {
			res.Outcome = OutcomeEmpty
			res.Reason = "no billable orders in the agent's billing window"
			return res, nil
		}
		b := &model.AgentBill{
			ID:         newID(),
			BillNo:     "BL" + m.Compact() + "-" + agent.Code,
			AgentID:    agent.ID,
			PaidAmount: decimal.Zero,
			Status:     model.BillStatusPending,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		calc.Apply(b, m)
		stored, err := s.bills.Create(ctx, b)
		if err != nil {
			return nil, conflict(err)
		}
		remark := fmt.Sprintf("%d orders, commission %s", stored.OrderCount, stored.CommissionAmount.StringFixed(2))
		if err := writeAudit(ctx, s.audits, stored.ID, model.AuditActionGenerate, "", stored.Status, operator, remark, now); err != nil {
			return nil, err
		}
		res.Outcome = OutcomeCreated
		res.Bill = stored
		return res, nil
	}

	prev := existing.CommissionAmount
	calc.Apply(existing, m)
	existing.UpdatedAt = now
	if err := s.bills.Update(ctx, existing); err != nil {
		return nil, err
	}
	remark := fmt.Sprintf("commission %s -> %s", prev.StringFixed(2), existing.CommissionAmount.StringFixed(2))
	if err := writeAudit(ctx, s.audits, existing.ID, model.AuditActionRegenerate, model.BillStatusPending, existing.Status, operator, remark, now); err != nil {
		return nil, err
	}
	res.Outcome = OutcomeRegenerated
	res.Bill = existing
	return res, nil
}

func (s *billService) GenerateMonthlyBills(ctx context.Context, m model.Month, force bool, operator string) (*GenerateSummary, error) {
	mw := billing.MonthWindow(m)
	agents, err := s.agents.ListWithBillableOrders(ctx, mw.Start, mw.End)
	if err != nil {
		return nil, fmt.Errorf("list billable agents: %w", err)
	}

	// With force, pending bills of agents whose orders have since dropped out are recomputed too.
	if force {
		existing, err := s.bills.ListByMonth(ctx, m.String())
		if err != nil {
			return nil, fmt.Errorf("list bills: %w", err)
		}
		seen := make(map[string]struct{}, len(agents))
		for _, a := range agents {
			seen[a.ID] = struct{}{}
		}
		var missing []string
		for _, b := range existing {
			if _, ok := seen[b.AgentID]; !ok && b.Regenerable() {
				missing = append(missing, b.AgentID)
			}
		}
		if len(missing) > 0 {
			extra, err := s.agents.FindByIDs(ctx, missing)
			if err != nil {
				return nil, fmt.Errorf("load agents: %w", err)
			}
			for _, id := range missing {
				if a, ok := extra[id]; ok {
					agents = append(agents, a)
				}
			}
		}
	}

	summary := &GenerateSummary{Month: m.String(), Force: force, Results: make([]GenerateResult, 0, len(agents))}
	for i := range agents {
		if err := ctx.Err(); err != nil {
			if summary.Created+summary.Regenerated > 0 {
				invalidateMonth(context.WithoutCancel(ctx), s.cache, m.String())
			}
			return summary, err
		}
		a := &agents[i]
		res, err := s.generateOne(ctx, a, m, force, operator)
		if err != nil {
			summary.Failed++
			if summary.Errors == nil {
				summary.Errors = make(map[string]string)
			}
			summary.Errors[a.Code] = err.Error()
			continue
		}
		summary.add(res)
	}
	if summary.Created+summary.Regenerated > 0 {
		invalidateMonth(ctx, s.cache, m.String())
	}
	return summary, nil
}

func (s *billService) Get(ctx context.Context, id string) (*model.AgentBill, error) {
	if id == "" {
		return nil, invalid("id is required")
	}
	b, err := s.bills.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("bill", err)
	}
	return b, nil
}

func (s *billService) List(ctx context.Context, f repository.BillFilter, limit, offset int) (*ListResult[model.AgentBill], error) {
	if f.Month != "" {
		m, err := model.ParseMonth(f.Month)
		if err != nil {
			return nil, invalid("%v", err)
		}
		f.Month = m.String()
	}
	if f.Status != "" && !f.Status.Valid() {
		return nil, invalid("unknown bill status %q", f.Status)
	}
	res, err := s.bills.List(ctx, f, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return &ListResult[model.AgentBill]{Items: res.Items, Total: res.Total}, nil
}

// transition locks the bill, applies fn and records the audit row in one transaction.
func (s *billService) transition(ctx context.Context, id string, action model.AuditAction, operator string, fn func(b *model.AgentBill, now time.Time) error) (*model.AgentBill, error) {
	if operator == "" {
		operator = SystemOperator
	}
	var out *model.AgentBill
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		b, err := s.bills.LockByID(ctx, id)
		if err != nil {
			return notFound("bill", err)
		}
		from := b.Status
		now := s.now().UTC()
		if err := fn(b, now); err != nil {
			return domainError(err)
		}
		b.UpdatedAt = now
		if err := s.bills.Update(ctx, b); err != nil {
			return err
		}
		if err := writeAudit(ctx, s.audits, b.ID, action, from, b.Status, operator, "", now); err != nil {
			return err
		}
		out = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	invalidateMonth(ctx, s.cache, out.BillMonth)
	return out, nil
}

func (s *billService) Confirm(ctx context.Context, id, operator string) (*model.AgentBill, error) {
	if operator == "" {
		operator = SystemOperator
	}
	b, err := s.transition(ctx, id, model.AuditActionConfirm, operator, func(b *model.AgentBill, now time.Time) error {
		return b.Confirm(operator, now)
	})
	if err != nil {
		return nil, err
	}
	s.metrics.BillConfirmed()
	return b, nil
}

func (s *billService) MarkPaid(ctx context.Context, id, operator string) (*model.AgentBill, error) {
	return s.transition(ctx, id, model.AuditActionPaid, operator, func(b *model.AgentBill, now time.Time) error {
		return b.MarkPaid(now)
	})
}

func (s *billService) AuditLogs(ctx context.Context, id string) ([]model.BillAuditLog, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.audits.ListByBill(ctx, id)
}
