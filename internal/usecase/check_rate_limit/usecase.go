package check_rate_limit

import (
	"context"

	"github.com/egorsokolov/mortgage-miniapp-api/internal/domain/repository"
)

// RateLimitExceededMessage is the standardized message returned when the
// window is full. Kept generic on purpose.
const RateLimitExceededMessage = "Too many requests"

// UseCase implements the admission decision over the sliding window store
type UseCase struct {
	storage repository.WindowStorage
}

// NewUseCase creates a new instance using dependency injection
func NewUseCase(storage repository.WindowStorage) *UseCase {
	return &UseCase{storage: storage}
}

// Execute checks whether one more request fits into the caller's trailing
// window and records it when it does. The prune-count-append cycle is a
// single atomic storage operation, so concurrent callers on the same key
// never block each other.
func (uc *UseCase) Execute(ctx context.Context, input Input) (*Output, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	result, err := uc.storage.CheckAndRecord(ctx, input.Key, input.Limit, input.Window)
	if err != nil {
		return nil, err
	}

	if !result.Allowed {
		return &Output{
			Allowed: false,
			Count:   result.Count,
			Limit:   result.Limit,
			Message: RateLimitExceededMessage,
		}, nil
	}

	return &Output{
		Allowed: true,
		Count:   result.Count,
		Limit:   result.Limit,
	}, nil
}
