// Package observability provides Prometheus metrics and HTTP middleware
// for monitoring the filestream gateway.
package observability

import "github.com/prometheus/client_golang/prometheus"

// StreamBuckets defines histogram buckets suited for file-streaming
// latencies, ranging from 5ms (small in-memory payloads) to 120s (large
// downloads over slow links).
var StreamBuckets = []float64{0.005, 0.025, 0.1, 0.5, 1, 5, 15, 60, 120}

var (
	// RequestsTotal counts all HTTP requests by method and status class.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filestream_requests_total",
			Help: "Total requests",
		},
		[]string{"method", "status"},
	)

	// RequestDuration records request duration in seconds by method.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "filestream_request_duration_seconds",
			Help:    "Request duration",
			Buckets: StreamBuckets,
		},
		[]string{"method"},
	)

	// StreamsActive tracks the number of responses currently being sent.
	StreamsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "filestream_streams_active",
			Help: "Responses currently streaming",
		},
	)

	// BytesSentTotal counts body bytes written to clients by method.
	BytesSentTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filestream_bytes_sent_total",
			Help: "Body bytes sent",
		},
		[]string{"method"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		StreamsActive,
		BytesSentTotal,
	)
}
