// Package metrics defines the custom Prometheus metrics of the portal
// authorization service. It is the single source of truth for metric names,
// labels and help strings.
//
// Metrics register with the default registry on package initialisation; the
// /metrics endpoint exposes them next to the HTTP metrics collected by
// echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// Outcome label values shared by the metrics below.
const (
	OutcomeGranted = "granted"
	OutcomeDenied  = "denied"
	OutcomeError   = "error"
)

// AuthzDecisionsTotal counts request guard decisions.
// Labels:
//   - outcome: granted, denied or error
//   - reason: "ok", "no_session", "account_not_found", "account_suspended", "permission_denied", "validation_error"
var AuthzDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "authz",
		Name:      "decisions_total",
		Help:      "Total number of authorization decisions taken by the request guard.",
	},
	[]string{"outcome", "reason"},
)

// SessionValidationDuration measures the session validator, including the
// account liveness lookup.
// Label:
//   - outcome: granted, denied or error
var SessionValidationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "authz",
		Name:      "session_validation_duration_seconds",
		Help:      "Duration of session validation including the account lookup.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"outcome"},
)

// SessionsRevokedTotal counts sign-outs recorded in the revocation store.
var SessionsRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "authz",
		Name:      "sessions_revoked_total",
		Help:      "Total number of sessions revoked before expiry.",
	},
)
