package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RoundsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rps_rounds_total",
			Help: "Total rounds played, by opponent strategy and outcome for the human",
		},
		[]string{"strategy", "outcome"},
	)
	SessionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rps_sessions_active",
			Help: "Number of live game sessions",
		},
	)
	RLRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limiter_requests_total",
			Help: "Total requests seen by the rate limiter",
		},
		[]string{"endpoint"},
	)
	RLBlocked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limiter_blocked_total",
			Help: "Total requests blocked by the rate limiter",
		},
		[]string{"endpoint"},
	)
)

func init() {
	prometheus.MustRegister(RoundsTotal)
	prometheus.MustRegister(SessionsActive)
	prometheus.MustRegister(RLRequests)
	prometheus.MustRegister(RLBlocked)
}
