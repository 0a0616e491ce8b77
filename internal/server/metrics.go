package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var histogramRequestTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "fintrack",
		Subsystem: "http",
		Name:      "histogram_request_time_seconds",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
	},
	[]string{"method", "status"},
)

func observeRequest(method, status string, elapsed time.Duration) {
	histogramRequestTime.
		WithLabelValues(method, status).
		Observe(elapsed.Seconds())
}
