package analytics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus is an Emitter backed by prometheus counters. All label values
// are drawn from closed, low-cardinality sets.
type Prometheus struct {
	evaluationsTotal *prometheus.CounterVec
	fixOpsTotal      *prometheus.CounterVec
	fixAttempts      *prometheus.HistogramVec
	fixDuration      *prometheus.CounterVec
	fallbacksTotal   *prometheus.CounterVec
}

// NewPrometheus registers the gate metrics on the default registerer.
func NewPrometheus() *Prometheus {
	return &Prometheus{
		evaluationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "copygate_evaluations_total",
				Help: "Total rule evaluations by content type and decision",
			},
			[]string{"content_type", "decision"},
		),
		fixOpsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "copygate_fix_operations_total",
				Help: "Total fix operations by content type, outcome, and similarity bucket",
			},
			[]string{"content_type", "accepted", "similarity_bucket"},
		),
		fixAttempts: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "copygate_fix_attempts",
				Help:    "Attempts consumed per fix operation",
				Buckets: []float64{0, 1, 2, 3},
			},
			[]string{"content_type"},
		),
		fixDuration: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "copygate_fix_duration_bucket_total",
				Help: "Fix operations by coarse duration bucket",
			},
			[]string{"content_type", "duration_bucket"},
		),
		fallbacksTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "copygate_fix_fallbacks_total",
				Help: "Fix operations that returned the original text",
			},
			[]string{"content_type"},
		),
	}
}

// EmitEvaluation implements Emitter.
func (p *Prometheus) EmitEvaluation(contentType, decision string) {
	p.evaluationsTotal.WithLabelValues(contentType, decision).Inc()
}

// EmitFixOperation implements Emitter.
func (p *Prometheus) EmitFixOperation(s FixSignal) {
	p.fixOpsTotal.WithLabelValues(s.ContentType, strconv.FormatBool(s.Accepted), s.SimilarityBucket).Inc()
	p.fixAttempts.WithLabelValues(s.ContentType).Observe(float64(s.AttemptCount))
	p.fixDuration.WithLabelValues(s.ContentType, s.DurationBucket).Inc()
	if s.UsedFallback {
		p.fallbacksTotal.WithLabelValues(s.ContentType).Inc()
	}
}

// Handler returns the HTTP handler exposing the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

var _ Emitter = (*Prometheus)(nil)
