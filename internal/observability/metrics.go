package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cbusctl"

var (
	registerOnce sync.Once

	bytesRead = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "serial",
			Name:      "bytes_read_total",
			Help:      "Bytes read from the serial adapter.",
		},
	)
	framesTokenized = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "serial",
			Name:      "frames_total",
			Help:      "Complete frames extracted from the byte stream.",
		},
	)
	framesSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "serial",
			Name:      "frames_sent_total",
			Help:      "Frames written to the serial adapter.",
		},
		[]string{"opcode"},
	)
	transportErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "serial",
			Name:      "errors_total",
			Help:      "Transport failures by kind.",
		},
		[]string{"kind"},
	)
	decodedMessages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "decode",
			Name:      "messages_total",
			Help:      "Decoded messages by opcode mnemonic and outcome.",
		},
		[]string{"opcode", "outcome"},
	)
	decodeFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "decode",
			Name:      "failures_total",
			Help:      "Frames rejected by the codec, by error kind.",
		},
		[]string{"kind"},
	)
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			bytesRead,
			framesTokenized,
			framesSent,
			transportErrors,
			decodedMessages,
			decodeFailures,
			httpRequests,
			httpDuration,
		)
	})
}

func RecordRead(bytes, frames int) {
	RegisterMetrics()
	if bytes > 0 {
		bytesRead.Add(float64(bytes))
	}
	if frames > 0 {
		framesTokenized.Add(float64(frames))
	}
}

func RecordDecoded(opcode, outcome string) {
	RegisterMetrics()
	decodedMessages.WithLabelValues(opcode, outcome).Inc()
}

func RecordDecodeFailure(kind string) {
	RegisterMetrics()
	decodeFailures.WithLabelValues(kind).Inc()
}

func RecordTransportError(kind string) {
	RegisterMetrics()
	transportErrors.WithLabelValues(kind).Inc()
}

func RecordFrameSent(opcode string) {
	RegisterMetrics()
	framesSent.WithLabelValues(opcode).Inc()
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}
