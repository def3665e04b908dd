// Package metrics defines and registers the custom Prometheus metrics of the
// storefront. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "boutique"

// ── Catalog metrics ───────────────────────────────────────────────────────────

// ArticlesCreatedTotal counts articles added by the administrator.
// Label:
//   - published: "true" when the article was created already published
var ArticlesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "articles_created_total",
		Help:      "Total number of articles created.",
	},
	[]string{"published"},
)

// ArticlesPublishedTotal counts explicit publish actions, repeats included.
var ArticlesPublishedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "articles_published_total",
		Help:      "Total number of publish actions on existing articles.",
	},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsTotal counts notifications added to the store.
// Label:
//   - origin: "local" (synthesized by this process) or "realtime" (feed insert)
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of notifications added, by origin.",
	},
	[]string{"origin"},
)

// RealtimeEchoesSuppressedTotal counts realtime inserts skipped because this
// process emitted them.
var RealtimeEchoesSuppressedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "realtime_echoes_suppressed_total",
		Help:      "Total number of realtime notification echoes suppressed.",
	},
)

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersPlacedTotal counts orders recorded before dispatch.
// Label:
//   - target: "group", "contact" or "direct" depending on the dispatch link kind
var OrdersPlacedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of orders placed, by dispatch target kind.",
	},
	[]string{"target"},
)

// ── Persistence metrics ───────────────────────────────────────────────────────

// GatewayErrorsTotal counts failed remote gateway calls.
// Label:
//   - op: store operation that failed (e.g. "fetch_articles", "add_order")
var GatewayErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gateway_errors_total",
		Help:      "Total number of failed remote gateway calls.",
	},
	[]string{"op"},
)

// CacheFailuresTotal counts swallowed key-value cache failures.
// Label:
//   - op: "load", "decode", "encode" or "save"
var CacheFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_failures_total",
		Help:      "Total number of key-value cache failures treated as misses.",
	},
	[]string{"op"},
)
