// Package metrics defines and registers all custom Prometheus metrics for
// the resource-hub gateway. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "resourcehub"

// BackendRequestsTotal counts calls to the external resources API.
// Labels:
//   - op: the logical operation (e.g. "list resources", "review resource")
//   - code: the HTTP status returned, or "error" for transport failures
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of requests issued to the external resources API.",
	},
	[]string{"op", "code"},
)

// BackendRequestDuration measures backend call latency per operation.
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of calls to the external resources API.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op"},
)

// LoginsTotal counts login attempts through the gateway.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ReviewsTotal counts admin review decisions.
// Label:
//   - decision: "approved" or "rejected"
var ReviewsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_total",
		Help:      "Total number of review decisions applied, by outcome.",
	},
	[]string{"decision"},
)

// SuggestionsTotal counts member resource suggestions submitted.
var SuggestionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "suggestions_total",
		Help:      "Total number of resource suggestions submitted.",
	},
)

// SessionRestoresTotal counts profile refreshes for persisted tokens.
// Label:
//   - result: "valid" or "invalid" (invalid restores clear the session)
var SessionRestoresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_restores_total",
		Help:      "Total number of session restore attempts, by result.",
	},
	[]string{"result"},
)
