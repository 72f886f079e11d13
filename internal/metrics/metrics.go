package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ReqCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vivaleve_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ReqDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "vivaleve_request_duration_seconds",
			Help: "Request duration seconds",
		},
		[]string{"method", "path"},
	)

	// OpCount tracks engine operations by outcome; rejected operations
	// (insufficient funds, bad credentials) count separately from errors.
	OpCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vivaleve_engine_operations_total",
			Help: "Engine operations by outcome",
		},
		[]string{"op", "outcome"},
	)
)

func Register() {
	prometheus.MustRegister(ReqCount, ReqDuration, OpCount)
}
