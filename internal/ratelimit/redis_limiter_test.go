package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func TestRedisLimiter_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)
	rdb := redis.NewClient(opts)
	t.Cleanup(func() { _ = rdb.Close() })

	l := NewRedisLimiter(rdb, 2, time.Minute, "test")

	t.Run("allows up to the limit", func(t *testing.T) {
		d, err := l.Allow(ctx, "ip:1.1.1.1")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
		assert.Equal(t, 2, d.Limit)
		assert.Equal(t, 1, d.Remaining)
		assert.Greater(t, d.Reset, time.Duration(0))

		d, err = l.Allow(ctx, "ip:1.1.1.1")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
		assert.Equal(t, 0, d.Remaining)
	})

	t.Run("rejects past the limit", func(t *testing.T) {
		d, err := l.Allow(ctx, "ip:1.1.1.1")
		require.NoError(t, err)
		assert.False(t, d.Allowed)
		assert.Equal(t, 0, d.Remaining)
	})

	t.Run("keys are independent", func(t *testing.T) {
		d, err := l.Allow(ctx, "ip:2.2.2.2")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
	})

	t.Run("window expiry resets the count", func(t *testing.T) {
		short := NewRedisLimiter(rdb, 1, time.Second, "short")
		d, err := short.Allow(ctx, "k")
		require.NoError(t, err)
		assert.True(t, d.Allowed)

		d, err = short.Allow(ctx, "k")
		require.NoError(t, err)
		assert.False(t, d.Allowed)

		require.Eventually(t, func() bool {
			d, err := short.Allow(ctx, "k")
			return err == nil && d.Allowed
		}, 5*time.Second, 200*time.Millisecond)
	})
}

func TestRedisLimiter_Unavailable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })

	_, err := NewRedisLimiter(rdb, 1, time.Minute, "x").Allow(context.Background(), "k")
	assert.Error(t, err)
}
