package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/turtacn/h5sign/internal/domain/models"
)

type MockEngine struct {
	mock.Mock
}

func (m *MockEngine) H5st(ctx context.Context, version string, params *models.OrderedObject, opts models.SignOptions) (*models.SignResult, error) {
	args := m.Called(ctx, version, params, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SignResult), args.Error(1)
}

func (m *MockEngine) Sign(ctx context.Context, functionID, body, uuid, client, clientVersion string) (*models.LegacySign, error) {
	args := m.Called(ctx, functionID, body, uuid, client, clientVersion)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LegacySign), args.Error(1)
}

func (m *MockEngine) DevicePayload(uuid string) (string, error) {
	args := m.Called(uuid)
	return args.String(0), args.Error(1)
}

func (m *MockEngine) Versions() []string {
	args := m.Called()
	return args.Get(0).([]string)
}
