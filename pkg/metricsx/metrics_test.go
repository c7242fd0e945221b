package metricsx_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Abraxas-365/formkit/pkg/metricsx"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	m := metricsx.New()

	m.ObserveCheck("cpf", metricsx.ResultValid, time.Millisecond)
	m.ObserveCheck("cpf", metricsx.ResultValid, time.Millisecond)
	m.ObserveCheck("email", metricsx.ResultInvalid, time.Millisecond)
	m.IncRetry()
	m.IncTimeout()
	m.IncTimeout()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Checks.WithLabelValues("cpf", metricsx.ResultValid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Checks.WithLabelValues("email", metricsx.ResultInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Retries))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Timeouts))
	assert.Equal(t, 2, testutil.CollectAndCount(m.CheckLatency))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metricsx.Metrics

	assert.NotPanics(t, func() {
		m.ObserveCheck("cpf", metricsx.ResultValid, time.Second)
		m.IncRetry()
		m.IncTimeout()
	})
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := metricsx.New()
	m.ObserveCheck("phone", metricsx.ResultTimeout, 2*time.Second)

	path := filepath.Join(t.TempDir(), "formkit.prom")
	require.NoError(t, m.WriteTextfile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `formkit_checks_total{kind="phone",result="timeout"} 1`)
	assert.Contains(t, string(raw), "# TYPE formkit_check_duration_seconds histogram")
}
