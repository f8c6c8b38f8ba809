package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline suggestion pipeline kollektorlari
type Pipeline struct {
	SuggestionRequests *prometheus.CounterVec
	CacheEntriesGauge  prometheus.Gauge
	AIRequestDuration  *prometheus.HistogramVec
	AIRequestErrors    *prometheus.CounterVec
}

// NewPipeline kollektorlarni reg ga ro'yxatdan o'tkazadi
func NewPipeline(reg prometheus.Registerer) *Pipeline {
	factory := promauto.With(reg)
	return &Pipeline{
		SuggestionRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "suggestion_requests_total",
				Help: "Suggestion requests by result (hit, miss, error)",
			},
			[]string{"result"},
		),
		CacheEntriesGauge: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "suggestion_cache_entries",
				Help: "Number of memoized suggestion results",
			},
		),
		AIRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ai_request_duration_seconds",
				Help:    "Duration of generative service turns in seconds",
				Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40, 80},
			},
			[]string{"outcome"},
		),
		AIRequestErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ai_request_errors_total",
				Help: "Failed generative service turns by error code",
			},
			[]string{"code"},
		),
	}
}

func (p *Pipeline) RequestServed(result string) {
	p.SuggestionRequests.WithLabelValues(result).Inc()
}

func (p *Pipeline) CacheEntries(n int) {
	p.CacheEntriesGauge.Set(float64(n))
}

func (p *Pipeline) AICall(outcome string, d time.Duration) {
	p.AIRequestDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

func (p *Pipeline) AIError(code string) {
	p.AIRequestErrors.WithLabelValues(code).Inc()
}
