package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/turtacn/h5sign/internal/application/dto"
)

type MockAlgoAppService struct {
	mock.Mock
}

func (m *MockAlgoAppService) H5st(ctx context.Context, req *dto.H5stRequest) (*dto.H5stResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.H5stResponse), args.Error(1)
}

func (m *MockAlgoAppService) Sign(ctx context.Context, req *dto.SignRequest) (*dto.SignResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SignResponse), args.Error(1)
}

func (m *MockAlgoAppService) Versions(ctx context.Context) *dto.VersionsResponse {
	args := m.Called(ctx)
	return args.Get(0).(*dto.VersionsResponse)
}

type MockCommandAppService struct {
	mock.Mock
}

func (m *MockCommandAppService) Exchange(ctx context.Context, command string) (string, error) {
	args := m.Called(ctx, command)
	return args.String(0), args.Error(1)
}
