package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m, err := New(prometheus.NewRegistry())
	require.NoError(t, err)

	m.BillGenerated("created")
	m.BillGenerated("created")
	m.BillGenerated("skipped")
	m.BillConfirmed()
	m.PaymentTransition("completed")
	m.AgentsExpired(3)
	m.AgentsExpired(0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.billsGenerated.WithLabelValues("created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.billsGenerated.WithLabelValues("skipped")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.billsConfirmed))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.payments.WithLabelValues("completed")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.agentsExpired))
}

func TestMetrics_ObserveJob(t *testing.T) {
	m, err := New(prometheus.NewRegistry())
	require.NoError(t, err)

	m.ObserveJob("agent:check-expired", time.Now(), nil)
	m.ObserveJob("agent:check-expired", time.Now(), errors.New("db down"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.jobRuns.WithLabelValues("agent:check-expired", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.jobRuns.WithLabelValues("agent:check-expired", "failure")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.jobDuration))
}

func TestMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	assert.Error(t, err)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.BillGenerated("created")
		m.BillConfirmed()
		m.PaymentTransition("failed")
		m.AgentsExpired(1)
		m.ObserveJob("x", time.Now(), nil)
	})
}
