package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gather(t *testing.T, reg *prometheus.Registry) map[string]*dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	out := make(map[string]*dto.MetricFamily, len(families))
	for _, f := range families {
		out[f.GetName()] = f
	}
	return out
}

func counterValue(f *dto.MetricFamily, label, value string) float64 {
	for _, m := range f.GetMetric() {
		for _, lp := range m.GetLabel() {
			if lp.GetName() == label && lp.GetValue() == value {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestPipeline_Records(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPipeline(reg)

	p.RequestServed("hit")
	p.RequestServed("hit")
	p.RequestServed("error")
	p.CacheEntries(7)
	p.AICall("ok", 1500*time.Millisecond)
	p.AIError("AI_QUOTA_EXCEEDED")

	families := gather(t, reg)
	require.Contains(t, families, "suggestion_requests_total")
	require.Contains(t, families, "suggestion_cache_entries")
	require.Contains(t, families, "ai_request_duration_seconds")
	require.Contains(t, families, "ai_request_errors_total")

	assert.Equal(t, 2.0, counterValue(families["suggestion_requests_total"], "result", "hit"))
	assert.Equal(t, 1.0, counterValue(families["suggestion_requests_total"], "result", "error"))
	assert.Equal(t, 1.0, counterValue(families["ai_request_errors_total"], "code", "AI_QUOTA_EXCEEDED"))
	assert.Equal(t, 7.0, families["suggestion_cache_entries"].GetMetric()[0].GetGauge().GetValue())
	assert.Equal(t, uint64(1), families["ai_request_duration_seconds"].GetMetric()[0].GetHistogram().GetSampleCount())
}

func TestNewPipeline_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPipeline(reg)
	assert.Panics(t, func() { NewPipeline(reg) })
}
