// Package metrics defines the custom Prometheus metrics of the favorite
// places API. HTTP request metrics come from echoprometheus; this package
// only holds the authentication and input-screening counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "places"

// ── Authentication ───────────────────────────────────────────────────────────

// AuthAttemptsTotal counts sign-up and sign-in attempts.
// Labels:
//   - operation: "sign_up" or "sign_in"
//   - outcome: "success", "invalid_input", "duplicate_user", "auth_failed", "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of sign-up and sign-in attempts, by outcome.",
	},
	[]string{"operation", "outcome"},
)

// SuspiciousInputTotal counts inputs rejected by the markup scanner.
// Labels:
//   - operation: the use case that rejected the input (e.g. "sign_up", "create_place")
//   - field: the rejected field (e.g. "username", "description")
var SuspiciousInputTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "suspicious_input_total",
		Help:      "Total number of inputs rejected for suspicious markup.",
	},
	[]string{"operation", "field"},
)

// TokenVerificationsTotal counts bearer token checks.
// Label:
//   - result: "valid", "invalid" or "missing"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by result.",
	},
	[]string{"result"},
)
