package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	register(ttsLatencyMs, ttsBytes)
}

var (
	ttsLatencyMs = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tts_latency_ms",
			Help:    "Speech synthesis latency in milliseconds.",
			Buckets: []float64{50, 100, 250, 500, 1000, 2000, 4000, 8000},
		},
		[]string{"success"},
	)

	ttsBytes = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tts_audio_bytes",
			Help:    "Size of synthesized clips in bytes.",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
		},
	)
)

func ObserveTTS(start time.Time, size int, err error) {
	ms := float64(time.Since(start).Milliseconds())
	ttsLatencyMs.WithLabelValues(strconv.FormatBool(err == nil)).Observe(ms)
	if err == nil {
		ttsBytes.Observe(float64(size))
	}
}
