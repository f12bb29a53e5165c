// Package metrics defines and registers all custom Prometheus metrics for the
// journal API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default Prometheus registry at package
// initialisation through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "journal"

// ── Entry metrics ─────────────────────────────────────────────────────────────

// EntryOperationsTotal counts completed entry mutations.
// Label:
//   - operation: "create", "update" or "delete"
var EntryOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entry_operations_total",
		Help:      "Total number of successful entry mutations, by operation.",
	},
	[]string{"operation"},
)

// ── User metrics ──────────────────────────────────────────────────────────────

// UsersSignedUpTotal counts successful signups.
var UsersSignedUpTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_signed_up_total",
		Help:      "Total number of users created through signup.",
	},
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Geocoding metrics ─────────────────────────────────────────────────────────

// GeocodeRequestsTotal counts geocoding lookups.
// Label:
//   - result: "ok", "zero_results", "error", "cache_hit"
var GeocodeRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "geocode_requests_total",
		Help:      "Total number of geocoding lookups, labelled by result.",
	},
	[]string{"result"},
)

// GeocodeDuration measures round-trip time to the geocoding provider.
var GeocodeDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "geocode_duration_seconds",
		Help:      "Duration of calls to the geocoding provider.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)
