package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	register(
		aiCallsLatencyMs,
		aiParseFallbacks,
	)
}

var (
	aiCallsLatencyMs = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ai_calls_latency_ms",
			Help:    "AI call latency distribution in milliseconds.",
			Buckets: []float64{10, 25, 50, 100, 200, 400, 800, 1600, 3000, 5000, 10000},
		},
		[]string{"provider", "model", "success"},
	)

	aiParseFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_parse_fallbacks_total",
			Help: "Responses that violated the requested schema, by parser.",
		},
		[]string{"parser"},
	)
)

// ObserveAICall records one completion call.
func ObserveAICall(provider, model string, start time.Time, err error) {
	ms := float64(time.Since(start).Milliseconds())
	aiCallsLatencyMs.WithLabelValues(provider, model, strconv.FormatBool(err == nil)).Observe(ms)
}

// IncParseFallback counts a schema miss ("scores" or "evaluation").
func IncParseFallback(parser string) {
	aiParseFallbacks.WithLabelValues(parser).Inc()
}
