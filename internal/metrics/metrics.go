// Package metrics holds the business counters exported next to the HTTP request metrics.
// A nil *Metrics is valid and records nothing, so services and jobs can run without a registry.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the domain collectors.
type Metrics struct {
	billsGenerated *prometheus.CounterVec
	billsConfirmed prometheus.Counter
	payments       *prometheus.CounterVec
	agentsExpired  prometheus.Counter
	jobRuns        *prometheus.CounterVec
	jobDuration    *prometheus.HistogramVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		billsGenerated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hotelagent_bills_generated_total",
				Help: "Monthly bill generation attempts by outcome.",
			},
			[]string{"outcome"},
		),
		billsConfirmed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hotelagent_bills_confirmed_total",
			Help: "Bills confirmed by an operator.",
		}),
		payments: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hotelagent_payments_total",
				Help: "Commission payment transitions by resulting status.",
			},
			[]string{"status"},
		),
		agentsExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hotelagent_agents_expired_total",
			Help: "Agents moved to expired by the expiry check.",
		}),
		jobRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hotelagent_job_runs_total",
				Help: "Scheduled and console job runs by result.",
			},
			[]string{"job", "result"},
		),
		jobDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hotelagent_job_duration_seconds",
				Help:    "Duration of job runs.",
				Buckets: []float64{.1, .5, 1, 5, 15, 60, 300, 900},
			},
			[]string{"job"},
		),
	}

	for _, c := range []prometheus.Collector{m.billsGenerated, m.billsConfirmed, m.payments, m.agentsExpired, m.jobRuns, m.jobDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// BillGenerated counts one generation outcome (created, regenerated, skipped, failed).
func (m *Metrics) BillGenerated(outcome string) {
	if m == nil {
		return
	}
	m.billsGenerated.WithLabelValues(outcome).Inc()
}

func (m *Metrics) BillConfirmed() {
	if m == nil {
		return
	}
	m.billsConfirmed.Inc()
}

// PaymentTransition counts a payment reaching status.
func (m *Metrics) PaymentTransition(status string) {
	if m == nil {
		return
	}
	m.payments.WithLabelValues(status).Inc()
}

func (m *Metrics) AgentsExpired(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.agentsExpired.Add(float64(n))
}

// ObserveJob records a finished job run.
func (m *Metrics) ObserveJob(job string, started time.Time, err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	m.jobRuns.WithLabelValues(job, result).Inc()
	m.jobDuration.WithLabelValues(job).Observe(time.Since(started).Seconds())
}
