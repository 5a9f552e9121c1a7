package check_rate_limit

import (
	"errors"
	"time"

	"github.com/egorsokolov/mortgage-miniapp-api/internal/domain/entity"
)

// Input represents the input data for rate limit checking (DTO - Data Transfer Object)
type Input struct {
	Key    entity.LimiterKey
	Limit  int
	Window time.Duration
}

// Validate validates the input data before it reaches the storage layer
func (i Input) Validate() error {
	if !i.Key.IsValid() {
		return errors.New("invalid limiter key")
	}
	if i.Limit <= 0 {
		return errors.New("limit must be positive")
	}
	if i.Window <= 0 {
		return errors.New("window must be positive")
	}
	return nil
}
