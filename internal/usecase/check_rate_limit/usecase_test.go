package check_rate_limit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/egorsokolov/mortgage-miniapp-api/internal/domain/entity"
	"github.com/egorsokolov/mortgage-miniapp-api/internal/domain/repository"
)

func TestExecute_InvalidInput_ReturnsError(t *testing.T) {
	mockStorage := new(MockStorage)
	useCase := NewUseCase(mockStorage)

	input := Input{
		Key:    entity.LimiterKey{Type: entity.KeyTypeIP, Value: ""}, // Invalid key
		Limit:  10,
		Window: time.Minute,
	}

	output, err := useCase.Execute(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "invalid limiter key")
	mockStorage.AssertNotCalled(t, "CheckAndRecord")
}

func TestExecute_WhenWindowHasRoom_Allows(t *testing.T) {
	mockStorage := new(MockStorage)
	useCase := NewUseCase(mockStorage)

	input := Input{
		Key:    entity.NewIPKey("192.168.1.1"),
		Limit:  10,
		Window: time.Minute,
	}

	mockStorage.On("CheckAndRecord", mock.Anything, input.Key, 10, time.Minute).Return(
		&repository.CheckResult{Allowed: true, Count: 3, Limit: 10}, nil,
	)

	output, err := useCase.Execute(context.Background(), input)

	assert.NoError(t, err)
	assert.True(t, output.Allowed)
	assert.Equal(t, 3, output.Count)
	assert.Equal(t, 10, output.Limit)
	assert.Empty(t, output.Message)
}

func TestExecute_WhenWindowFull_RejectsWithGenericMessage(t *testing.T) {
	mockStorage := new(MockStorage)
	useCase := NewUseCase(mockStorage)

	input := Input{
		Key:    entity.NewIPKey("192.168.1.1"),
		Limit:  10,
		Window: time.Minute,
	}

	mockStorage.On("CheckAndRecord", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(
		&repository.CheckResult{Allowed: false, Count: 10, Limit: 10}, nil,
	)

	output, err := useCase.Execute(context.Background(), input)

	assert.NoError(t, err)
	assert.False(t, output.Allowed)
	assert.Equal(t, RateLimitExceededMessage, output.Message)
}

func TestExecute_StorageError_Propagates(t *testing.T) {
	mockStorage := new(MockStorage)
	useCase := NewUseCase(mockStorage)

	input := Input{
		Key:    entity.NewIPKey("192.168.1.1"),
		Limit:  10,
		Window: time.Minute,
	}

	expectedError := errors.New("storage error")
	mockStorage.On("CheckAndRecord", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, expectedError)

	output, err := useCase.Execute(context.Background(), input)

	assert.Error(t, err)
	assert.Equal(t, expectedError, err)
	assert.Nil(t, output)
}
