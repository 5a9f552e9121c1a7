//go:build integration
// +build integration

package integration_test

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
)

// setupRedis connects to the test Redis and wipes it clean
func setupRedis(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6380", // docker-compose.test.yml port
		DB:   0,
	})

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Fatalf("Failed to connect to Redis: %v", err)
	}

	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("Failed to flush Redis: %v", err)
	}

	t.Cleanup(func() {
		client.Close()
	})

	return client
}
