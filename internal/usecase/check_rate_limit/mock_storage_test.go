package check_rate_limit

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/egorsokolov/mortgage-miniapp-api/internal/domain/entity"
	"github.com/egorsokolov/mortgage-miniapp-api/internal/domain/repository"
)

// MockStorage is a mock implementation of the WindowStorage interface for testing purposes
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) CheckAndRecord(ctx context.Context, key entity.LimiterKey, limit int, window time.Duration) (*repository.CheckResult, error) {
	args := m.Called(ctx, key, limit, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CheckResult), args.Error(1)
}

func (m *MockStorage) Close() error {
	args := m.Called()
	return args.Error(0)
}
