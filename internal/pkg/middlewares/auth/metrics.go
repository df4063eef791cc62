package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var UnauthorizedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_unauthorized_requests_total",
		Help: "Total number of requests rejected by authorization",
	},
	[]string{"method"},
)
