package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/egorsokolov/mortgage-miniapp-api/internal/usecase/calculate"
	"github.com/egorsokolov/mortgage-miniapp-api/internal/usecase/forward_lead"
)

// MockForwardUseCase is a mock implementation of ForwardUseCase for testing
type MockForwardUseCase struct {
	mock.Mock
}

func (m *MockForwardUseCase) Execute(ctx context.Context, input forward_lead.Input) (*forward_lead.Output, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*forward_lead.Output), args.Error(1)
}

// MockCalculateUseCase is a mock implementation of CalculateUseCase for testing
type MockCalculateUseCase struct {
	mock.Mock
}

func (m *MockCalculateUseCase) Execute(ctx context.Context, input calculate.Input) (*calculate.Output, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*calculate.Output), args.Error(1)
}
