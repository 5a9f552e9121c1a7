package redis

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/egorsokolov/mortgage-miniapp-api/internal/domain/entity"
	"github.com/egorsokolov/mortgage-miniapp-api/internal/domain/repository"
)

// RedisStorage implements repository.WindowStorage on top of Redis.
type RedisStorage struct {
	client *redis.Client
	seq    atomic.Uint64
}

// NewRedisStorage creates a new instance using dependency injection
func NewRedisStorage(client *redis.Client) *RedisStorage {
	return &RedisStorage{client: client}
}

// Close closes the underlying Redis connection
func (r *RedisStorage) Close() error {
	return r.client.Close()
}

// CheckAndRecord runs the sliding-window Lua script: prune entries older
// than the window, reject when the key already holds limit entries,
// otherwise record the current timestamp. One atomic round trip per
// request; same-key races resolve inside Redis.
func (r *RedisStorage) CheckAndRecord(
	ctx context.Context,
	key entity.LimiterKey,
	limit int,
	window time.Duration,
) (*repository.CheckResult, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got: %d", limit)
	}
	if window <= 0 {
		return nil, fmt.Errorf("window must be positive, got: %v", window)
	}

	now := time.Now().UnixMilli()
	keyStr := key.String()

	result, err := slidingWindowScript.Run(
		ctx,
		r.client,
		[]string{keyStr},
		now, window.Milliseconds(), limit, r.uniqueMember(now),
	).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to execute sliding window script for key %s: %w", keyStr, err)
	}

	allowed, count, err := parseScriptResult(result)
	if err != nil {
		return nil, fmt.Errorf("failed to parse script result for key %s: %w", keyStr, err)
	}

	return &repository.CheckResult{
		Allowed: allowed,
		Count:   count,
		Limit:   limit,
	}, nil
}

// uniqueMember builds a set member that stays unique even when two
// requests from the same key land on the same millisecond.
func (r *RedisStorage) uniqueMember(now int64) string {
	return strconv.FormatInt(now, 10) + "-" + strconv.FormatUint(r.seq.Add(1), 10)
}

// parseScriptResult parses the [allowed, count] array returned by the Lua script
func parseScriptResult(result interface{}) (allowed bool, count int, err error) {
	resultSlice, ok := result.([]interface{})
	if !ok {
		return false, 0, fmt.Errorf("expected array result, got: %T", result)
	}
	if len(resultSlice) != 2 {
		return false, 0, fmt.Errorf("expected 2 elements in result array, got: %d", len(resultSlice))
	}

	allowedValue, ok := resultSlice[0].(int64)
	if !ok {
		return false, 0, fmt.Errorf("expected int64 for allowed flag, got: %T", resultSlice[0])
	}

	countValue, ok := resultSlice[1].(int64)
	if !ok {
		return false, 0, fmt.Errorf("expected int64 for count, got: %T", resultSlice[1])
	}

	return allowedValue == 1, int(countValue), nil
}
