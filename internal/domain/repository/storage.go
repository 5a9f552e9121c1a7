package repository

import (
	"context"
	"time"

	"github.com/egorsokolov/mortgage-miniapp-api/internal/domain/entity"
)

// WindowStorage defines the contract for the externally-owned rate
// window store. Implementations must perform the read-prune-append cycle
// atomically per key, but no cross-key coordination is required and a
// coarse race between concurrent callers of the same key is acceptable.
type WindowStorage interface {
	// CheckAndRecord prunes entries older than the trailing window,
	// rejects the request if the key already holds limit entries, and
	// otherwise records the current timestamp. The whole cycle is one
	// atomic operation against the store.
	CheckAndRecord(
		ctx context.Context,
		key entity.LimiterKey,
		limit int,
		window time.Duration,
	) (*CheckResult, error)

	// Close releases any connections held by the storage implementation.
	// Should be called during application shutdown for proper cleanup.
	Close() error
}

// CheckResult contains the result of one admission check
type CheckResult struct {
	Allowed bool // Whether the request is allowed to proceed
	Count   int  // Requests inside the window after this check
	Limit   int  // The configured limit for this key
}
