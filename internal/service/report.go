package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/shopspring/decimal"

	"hotelagent/internal/export"
	"hotelagent/internal/model"
	"hotelagent/internal/repository"
	"hotelagent/internal/storage"
)

// ReportCache stores computed reports. *cache.Cache implements it.
// Reports are keyed by a per-month generation counter, so a report built from
// rows read before an invalidation lands under a key no reader asks for again.
type ReportCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any) error
	Delete(ctx context.Context, keys ...string) error
	Counter(ctx context.Context, key string) (int64, error)
	Incr(ctx context.Context, key string) (int64, error)
}

func reportKey(month string, gen int64) string {
	return fmt.Sprintf("report:monthly:%s:%d", month, gen)
}

func reportGenKey(month string) string {
	return "report:gen:" + month
}

// StatusSummary sums bills sharing one status.
type StatusSummary struct {
	Status      model.BillStatus `json:"status,omitempty"`
	Count       int              `json:"count"`
	OrderCount  int              `json:"order_count"`
	TotalAmount decimal.Decimal  `json:"total_amount"`
	Commission  decimal.Decimal  `json:"commission"`
	Paid        decimal.Decimal  `json:"paid"`
	Outstanding decimal.Decimal  `json:"outstanding"`
}

func (s *StatusSummary) add(b *model.AgentBill) {
	s.Count++
	s.OrderCount += b.OrderCount
	s.TotalAmount = s.TotalAmount.Add(b.TotalAmount)
	s.Commission = s.Commission.Add(b.CommissionAmount)
	s.Paid = s.Paid.Add(b.PaidAmount)
	s.Outstanding = s.Outstanding.Add(b.Outstanding())
}

func newSummary(status model.BillStatus) StatusSummary {
	return StatusSummary{Status: status, TotalAmount: decimal.Zero, Commission: decimal.Zero, Paid: decimal.Zero, Outstanding: decimal.Zero}
}

// MonthlyReport summarizes the bills of one month.
type MonthlyReport struct {
	Month       string          `json:"month"`
	ByStatus    []StatusSummary `json:"by_status"`
	Totals      StatusSummary   `json:"totals"`
	GeneratedAt time.Time       `json:"generated_at"`
	Cached      bool            `json:"cached"`
}

// ExportFile is a rendered export held in memory.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// StoredExport points at an export uploaded to object storage.
type StoredExport struct {
	Key       string    `json:"key"`
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ReportService defines read-side reporting over bills and the audit trail.
type ReportService interface {
	// MonthlyReport groups the bills of m by status. Results are cached when a cache is configured.
	MonthlyReport(ctx context.Context, m model.Month) (*MonthlyReport, error)

	// AuditStats counts audit rows created in [from, to).
	AuditStats(ctx context.Context, from, to time.Time) (*model.AuditStats, error)

	// Export renders the bills of m in format f.
	Export(ctx context.Context, m model.Month, f export.Format) (*ExportFile, error)

	// ExportToStorage uploads the export and returns a pre-signed download URL.
	// It returns ErrUnavailable when no object storage is configured.
	ExportToStorage(ctx context.Context, m model.Month, f export.Format) (*StoredExport, error)
}

// ReportOptions configures the report service.
type ReportOptions struct {
	Location      *time.Location
	PresignExpiry time.Duration
}

type reportService struct {
	bills  repository.BillRepository
	agents repository.AgentRepository
	audits repository.AuditLogRepository
	store  storage.Storage
	cache  ReportCache
	opts   ReportOptions
	now    func() time.Time
}

// NewReportService constructs a new ReportService. store and cache may be nil.
func NewReportService(bills repository.BillRepository, agents repository.AgentRepository, audits repository.AuditLogRepository, store storage.Storage, cache ReportCache, opts ReportOptions) ReportService {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.PresignExpiry <= 0 {
		opts.PresignExpiry = 15 * time.Minute
	}
	return &reportService{bills: bills, agents: agents, audits: audits, store: store, cache: cache, opts: opts, now: time.Now}
}

var reportStatuses = []model.BillStatus{model.BillStatusPending, model.BillStatusConfirmed, model.BillStatusPaid}

func (s *reportService) MonthlyReport(ctx context.Context, m model.Month) (*MonthlyReport, error) {
	// The generation is read before the bills so a concurrent invalidation
	// moves readers past whatever this call stores.
	key := ""
	if s.cache != nil {
		if gen, err := s.cache.Counter(ctx, reportGenKey(m.String())); err == nil {
			key = reportKey(m.String(), gen)
		}
	}
	if key != "" {
		var cached MonthlyReport
		if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
			cached.Cached = true
			return &cached, nil
		}
	}

	bills, err := s.bills.ListByMonth(ctx, m.String())
	if err != nil {
		return nil, err
	}
	groups := make(map[model.BillStatus]*StatusSummary, len(reportStatuses))
	rep := &MonthlyReport{Month: m.String(), Totals: newSummary(""), GeneratedAt: s.now().UTC()}
	for _, st := range reportStatuses {
		sum := newSummary(st)
		groups[st] = &sum
	}
	for i := range bills {
		b := &bills[i]
		g, ok := groups[b.Status]
		if !ok {
			sum := newSummary(b.Status)
			g = &sum
			groups[b.Status] = g
		}
		g.add(b)
		rep.Totals.add(b)
	}
	for _, st := range reportStatuses {
		rep.ByStatus = append(rep.ByStatus, *groups[st])
	}

	if key != "" {
		_ = s.cache.Set(ctx, key, rep)
	}
	return rep, nil
}

func (s *reportService) AuditStats(ctx context.Context, from, to time.Time) (*model.AuditStats, error) {
	if to.IsZero() {
		to = s.now()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -30)
	}
	if !from.Before(to) {
		return nil, invalid("from must be before to")
	}
	return s.audits.Stats(ctx, from.UTC(), to.UTC())
}

func (s *reportService) rows(ctx context.Context, m model.Month) ([]export.Row, error) {
	bills, err := s.bills.ListByMonth(ctx, m.String())
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(bills))
	seen := make(map[string]struct{}, len(bills))
	for _, b := range bills {
		if _, ok := seen[b.AgentID]; !ok {
			seen[b.AgentID] = struct{}{}
			ids = append(ids, b.AgentID)
		}
	}
	agents, err := s.agents.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	rows := make([]export.Row, 0, len(bills))
	for _, b := range bills {
		a := agents[b.AgentID]
		rows = append(rows, export.Row{
			BillNo:           b.BillNo,
			AgentCode:        a.Code,
			AgentName:        a.Name,
			Month:            b.BillMonth,
			OrderCount:       b.OrderCount,
			TotalAmount:      b.TotalAmount,
			TotalProfit:      b.TotalProfit,
			CommissionRate:   b.CommissionRate,
			CommissionAmount: b.CommissionAmount,
			PaidAmount:       b.PaidAmount,
			Status:           string(b.Status),
			ConfirmedAt:      b.ConfirmedAt,
			PaidAt:           b.PaidAt,
		})
	}
	return rows, nil
}

func (s *reportService) Export(ctx context.Context, m model.Month, f export.Format) (*ExportFile, error) {
	rows, err := s.rows(ctx, m)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := export.Write(&buf, f, rows, s.opts.Location); err != nil {
		if errors.Is(err, export.ErrUnsupportedFormat) {
			return nil, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		return nil, fmt.Errorf("render %s export: %w", f, err)
	}
	return &ExportFile{
		Name:        f.FileName(m.String()),
		ContentType: f.ContentType(),
		Data:        buf.Bytes(),
	}, nil
}

func (s *reportService) ExportToStorage(ctx context.Context, m model.Month, f export.Format) (*StoredExport, error) {
	if s.store == nil {
		return nil, fmt.Errorf("%w: object storage is not configured", ErrUnavailable)
	}
	file, err := s.Export(ctx, m, f)
	if err != nil {
		return nil, err
	}
	key := path.Join("exports", "bills", m.String(), newID()+"."+string(f))
	info, err := s.store.Put(ctx, key, bytes.NewReader(file.Data), storage.PutObjectOptions{
		Size:        int64(len(file.Data)),
		ContentType: file.ContentType,
		Metadata:    map[string]string{"bill-month": m.String()},
	})
	if err != nil {
		return nil, fmt.Errorf("upload export: %w", err)
	}
	url, err := s.store.PresignGet(ctx, info.Key, storage.PresignOptions{
		Expiry:       s.opts.PresignExpiry,
		DownloadName: file.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("presign export: %w", err)
	}
	return &StoredExport{
		Key:       info.Key,
		Name:      file.Name,
		Size:      info.Size,
		URL:       url,
		ExpiresAt: s.now().UTC().Add(s.opts.PresignExpiry),
	}, nil
}
