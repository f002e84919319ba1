// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistance_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "assistance_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	AIUpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistance_ai_upstream_requests_total",
			Help: "Chat-completion calls by outcome",
		},
		[]string{"language", "outcome"},
	)

	AIUpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "assistance_ai_upstream_duration_seconds",
			Help:    "Latency of chat-completion calls in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30},
		},
		[]string{"language"},
	)

	ApplicationsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistance_applications_submitted_total",
			Help: "Applications accepted or rejected by the submit endpoint",
		},
		[]string{"result"},
	)

	HandoffFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistance_handoff_failures_total",
			Help: "Best-effort post-submission hand-offs that failed",
		},
		[]string{"target"},
	)

	ErrorResponses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistance_error_responses_total",
			Help: "Error responses written by the API handlers, by error category",
		},
		[]string{"endpoint", "category"},
	)
)
