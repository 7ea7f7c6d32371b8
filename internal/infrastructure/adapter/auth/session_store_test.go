package auth

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis connects to a local Redis and skips when none is running
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping Redis test in short mode")
	}

	client := redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 15})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Redis not available for testing: %v", err)
	}

	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisSessionStore(t *testing.T) {
	client := setupTestRedis(t)
	ctx := context.Background()
	store := NewRedisSessionStore(client, "aa-test:")

	require.NoError(t, store.Save(ctx, "session-1", "user-1", time.Minute))

	val, err := client.Get(ctx, "aa-test:session:session-1").Result()
	require.NoError(t, err)
	assert.Equal(t, "user-1", val)

	ttl, err := client.TTL(ctx, "aa-test:session:session-1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	exists, err := store.Exists(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, store.Delete(ctx, "session-1"))
	exists, err = store.Exists(ctx, "session-1")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, store.Delete(ctx, "never-existed"))
}
