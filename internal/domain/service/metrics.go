// Package service implements the h5st and sign signing engine.
package service

import (
	"time"
)

// Metrics defines the interface for collecting signing metrics.
// It keeps the engine independent of the monitoring implementation (e.g., Prometheus).
// Metrics 定义了收集加签指标的接口。
type Metrics interface {
	// RecordSign records one signing call.
	// RecordSign 记录一次加签调用。
	RecordSign(protocol, version string, success bool, duration time.Duration)

	// RecordCacheLookup records a cache hit or miss for purpose.
	// RecordCacheLookup 记录缓存命中或未命中。
	RecordCacheLookup(purpose string, hit bool)
}

// NoopMetrics discards every observation.
type NoopMetrics struct{}

func (NoopMetrics) RecordSign(string, string, bool, time.Duration) {}

func (NoopMetrics) RecordCacheLookup(string, bool) {}
