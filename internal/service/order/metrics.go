package order

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrderTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_transitions_total",
			Help: "Total number of applied order status transitions",
		},
		[]string{"from", "to", "origin"},
	)

	OrderTransitionRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_transition_rejections_total",
			Help: "Total number of rejected order status transition requests",
		},
		[]string{"origin", "reason"},
	)
)
