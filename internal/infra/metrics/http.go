package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	register(httpDurationMs)
}

var httpDurationMs = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "http_request_duration_ms",
		Help:    "Request duration by route pattern and status.",
		Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
	},
	[]string{"method", "route", "status"},
)

func ObserveHTTP(method, route string, status int, start time.Time) {
	ms := float64(time.Since(start).Milliseconds())
	httpDurationMs.WithLabelValues(method, route, strconv.Itoa(status)).Observe(ms)
}
