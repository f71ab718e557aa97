// Package metrics defines and registers all custom Prometheus metrics for
// the DreamHome listing API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dreamhome"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// TokensIssuedTotal counts session tokens successfully issued.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of session tokens issued.",
	},
)

// AuthFailuresTotal counts requests rejected by the token verifier.
// Label:
//   - reason: "missing_header", "malformed_header", or "invalid_token"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected during token verification.",
	},
	[]string{"reason"},
)

// RoleDenialsTotal counts requests rejected by the role authorizer.
// Label:
//   - required_role: the role the route demanded (e.g. "admin", "agent")
var RoleDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_denials_total",
		Help:      "Total number of requests rejected for lacking the required role.",
	},
	[]string{"required_role"},
)

// IdentityMismatchesTotal counts requests rejected by the identity-match guard.
var IdentityMismatchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "identity_mismatches_total",
		Help:      "Total number of requests where the path subject did not match the caller.",
	},
)

// TokenRateLimitedTotal counts token issuance requests dropped by the limiter.
var TokenRateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rate_limited_total",
		Help:      "Total number of token issuance requests rejected by the rate limiter.",
	},
)

// RoleLookupDuration measures the credential-store read performed per
// role-guarded request.
var RoleLookupDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "role_lookup_duration_seconds",
		Help:      "Duration of the per-request role lookup against the credential store.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Activity metrics ──────────────────────────────────────────────────────────

// ActivityQueueDepth tracks the number of audit events waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
