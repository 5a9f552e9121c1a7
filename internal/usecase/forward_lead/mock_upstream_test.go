package forward_lead

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/egorsokolov/mortgage-miniapp-api/internal/domain/entity"
)

// MockUpstream is a mock implementation of the Upstream interface for testing purposes
type MockUpstream struct {
	mock.Mock
}

func (m *MockUpstream) Send(ctx context.Context, platform entity.Platform, payload []byte) (*UpstreamResponse, error) {
	args := m.Called(ctx, platform, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*UpstreamResponse), args.Error(1)
}
