package monitoring

import (
	"time"

	"github.com/turtacn/h5sign/internal/domain/service"
)

// MetricsAdapter implements the engine's service.Metrics interface on top of Prometheus.
// A nil *Metrics turns every call into a no-op so metrics can be disabled by config.
// MetricsAdapter 在 Prometheus 之上实现引擎的 service.Metrics 接口。
type MetricsAdapter struct {
	metrics *Metrics
}

var _ service.Metrics = (*MetricsAdapter)(nil)

// NewMetricsAdapter wraps metrics.
// NewMetricsAdapter 包装具体的 Prometheus Metrics 对象。
func NewMetricsAdapter(metrics *Metrics) *MetricsAdapter {
	return &MetricsAdapter{metrics: metrics}
}

// RecordSign delegates to the Prometheus metrics.
func (a *MetricsAdapter) RecordSign(protocol, version string, success bool, duration time.Duration) {
	if a.metrics == nil {
		return
	}
	a.metrics.RecordSign(protocol, version, success, duration)
}

// RecordCacheLookup delegates to the Prometheus metrics.
func (a *MetricsAdapter) RecordCacheLookup(purpose string, hit bool) {
	if a.metrics == nil {
		return
	}
	a.metrics.RecordCacheLookup(purpose, hit)
}

// RecordHTTPRequest delegates to the Prometheus metrics.
func (a *MetricsAdapter) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if a.metrics == nil {
		return
	}
	a.metrics.RecordHTTPRequest(method, path, status, duration)
}
