package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWithPrefix("alumniverse_", registry)

var (
	// LLM calls routinely take seconds; buckets reach the slow tail.
	llmBuckets = []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 15, 30, 60}

	HTTPRequestsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "route", "status"},
	)

	LLMRequestDuration = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_request_duration_seconds",
			Help:    "Latency of calls to the LLM provider",
			Buckets: llmBuckets,
		},
		[]string{"provider", "operation", "outcome"},
	)

	ModerationDecisionsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "moderation_decisions_total",
			Help: "Moderation verdicts returned to clients",
		},
		[]string{"status"},
	)
)

func init() {
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler serves the private registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

func ObserveLLMRequest(provider, operation string, err error, elapsed time.Duration) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	LLMRequestDuration.WithLabelValues(provider, operation, outcome).Observe(elapsed.Seconds())
}

func RecordModerationDecision(status string) {
	ModerationDecisionsTotal.WithLabelValues(status).Inc()
}
