package monitoring

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics manages the Prometheus metrics.
type Metrics struct {
	SignRequests        *prometheus.CounterVec
	SignLatency         *prometheus.HistogramVec
	CacheLookups        *prometheus.CounterVec
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewMetrics creates the metrics and registers them with reg.
// A nil reg registers with the default Prometheus registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		SignRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "h5sign_sign_requests_total",
				Help: "Total number of signing calls.",
			},
			[]string{"protocol", "version", "result"},
		),
		SignLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "h5sign_sign_latency_seconds",
				Help:    "Latency of signing calls.",
				Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"protocol", "version"},
		),
		CacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "h5sign_cache_lookups_total",
				Help: "Fingerprint cache lookups by purpose and result.",
			},
			[]string{"purpose", "result"},
		),
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "h5sign_http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "h5sign_http_request_duration_seconds",
				Help:    "Duration of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}

// RecordSign records one signing call.
func (m *Metrics) RecordSign(protocol, version string, success bool, duration time.Duration) {
	result := "success"
	if !success {
		result = "failure"
	}
	m.SignRequests.WithLabelValues(protocol, version, result).Inc()
	m.SignLatency.WithLabelValues(protocol, version).Observe(duration.Seconds())
}

// RecordCacheLookup records a cache hit or miss.
func (m *Metrics) RecordCacheLookup(purpose string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(purpose, result).Inc()
}

// RecordHTTPRequest records a served HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
