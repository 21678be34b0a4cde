package httpadapter

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "latinsq_http_requests_total",
		Help: "API requests by endpoint and status code.",
	}, []string{"endpoint", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "latinsq_http_request_duration_seconds",
		Help:    "API request latency by endpoint.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	solverNodes = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "latinsq_solver_nodes",
		Help:    "Search nodes visited per solve or generate call.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 12),
	}, []string{"op"})
)

func observe(endpoint string, status int, seconds float64) {
	requestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(endpoint).Observe(seconds)
}
