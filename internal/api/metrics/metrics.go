// Package metrics defines all custom Prometheus metrics for the exchange API.
// It is the single source of truth for metric names, labels, and help strings.
//
// Metrics are registered with the default registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "exchange"

// OrdersCreatedTotal counts newly created orders.
// Label:
//   - asset: the deposited instrument (e.g. "BTC", "USDT_TRC20")
var OrdersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created, by asset.",
	},
	[]string{"asset"},
)

// OrderStatusUpdatesTotal counts operator status transitions.
// Label:
//   - status: the target status applied ("paid", "released", "cancelled")
var OrderStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_status_updates_total",
		Help:      "Total number of operator status changes, by target status.",
	},
	[]string{"status"},
)

// QuotesTotal counts served quote requests.
// Label:
//   - asset: the quoted instrument
var QuotesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quotes_total",
		Help:      "Total number of quotes served, by asset.",
	},
	[]string{"asset"},
)

// AuthFailuresTotal counts rejected authentication attempts.
// Label:
//   - reason: "missing" (no init data header) or "invalid" (bad signature or user)
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of rejected launch-data authentications, by reason.",
	},
	[]string{"reason"},
)

// NotificationsTotal counts order-creation notification attempts.
// Label:
//   - result: "ok" or "error"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of order notification attempts, by result.",
	},
	[]string{"result"},
)
