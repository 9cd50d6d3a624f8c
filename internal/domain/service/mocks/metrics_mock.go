package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"
)

type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) RecordSign(protocol, version string, success bool, duration time.Duration) {
	m.Called(protocol, version, success, duration)
}

func (m *MockMetrics) RecordCacheLookup(purpose string, hit bool) {
	m.Called(purpose, hit)
}
