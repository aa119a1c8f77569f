// Package metrics holds the Prometheus collectors for the analysis service.
//
// Collectors register with the default registry at init and are exposed on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Synthesis
	SynthesisTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookllm_synthesis_total",
			Help: "Analyses produced, by terminal state",
		},
		[]string{"source"}, // "model", "deterministic", "fallback"
	)

	// External model
	ModelCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bookllm_model_call_duration_seconds",
			Help:    "Duration of external model calls in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 60},
		},
		[]string{"outcome"}, // "success", "failure"
	)

	ModelFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookllm_model_failures_total",
			Help: "External model attempts that fell back to deterministic synthesis",
		},
		[]string{"reason"}, // "transport", "timeout", "canceled", "malformed", "invalid", "unavailable"
	)

	// Circuit breaker
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bookllm_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookllm_circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// HTTP
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bookllm_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookllm_http_requests_total",
			Help: "HTTP requests served",
		},
		[]string{"method", "route", "status"},
	)
)

func RecordSynthesis(source string) {
	SynthesisTotal.WithLabelValues(source).Inc()
}

func RecordModelCall(success bool, d time.Duration) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	ModelCallDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

func RecordModelFailure(reason string) {
	ModelFailures.WithLabelValues(reason).Inc()
}

func RecordHTTPRequest(method, route string, status int, d time.Duration) {
	code := strconv.Itoa(status)
	HTTPRequestDuration.WithLabelValues(method, route, code).Observe(d.Seconds())
	HTTPRequestsTotal.WithLabelValues(method, route, code).Inc()
}
