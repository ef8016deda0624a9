// Package metrics defines the custom Prometheus metrics for the ReStyle
// platform. It is the single source of truth for metric names, labels, and
// help strings; echoprometheus covers the generic HTTP request metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "restyle"

// SignUpsTotal counts registration attempts.
// Label:
//   - result: "created", "duplicate", "role_not_found", "invalid", "error"
var SignUpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of sign-up attempts, by result.",
	},
	[]string{"result"},
)

// SignInsTotal counts authentication attempts.
// Label:
//   - result: "ok" or "failed" (wrong password and unknown user are not
//     distinguished, mirroring the API response)
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of sign-in attempts, by result.",
	},
	[]string{"result"},
)

// TokenRejectionsTotal counts bearer tokens discarded by the auth middleware.
// Label:
//   - reason: "malformed", "bad_signature", "expired"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of bearer tokens rejected during validation.",
	},
	[]string{"reason"},
)

// NotificationsTotal counts contractor notification deliveries.
// Label:
//   - result: "sent", "duplicate", "error"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of project request notifications, by result.",
	},
	[]string{"result"},
)
