package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RateLimitStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRateLimitStore(client), mr
}

func TestRateLimitStore_Allow(t *testing.T) {
	store, mr := newTestStore(t)
	fixed := time.Unix(1_700_000_010, 0)
	store.now = func() time.Time { return fixed }
	ctx := context.Background()

	t.Run("allows requests within limit", func(t *testing.T) {
		for i := int64(1); i <= 3; i++ {
			result, err := store.Allow(ctx, "10.0.0.1:subscriptions", 3, time.Minute)
			require.NoError(t, err)
			assert.True(t, result.Allowed, "request %d should be allowed", i)
			assert.Equal(t, int64(3), result.Limit)
			assert.Equal(t, 3-i, result.Remaining)
		}
	})

	t.Run("blocks requests over limit", func(t *testing.T) {
		result, err := store.Allow(ctx, "10.0.0.1:subscriptions", 3, time.Minute)
		require.NoError(t, err)
		assert.False(t, result.Allowed)
		assert.Equal(t, int64(0), result.Remaining)
	})

	t.Run("different keys are independent", func(t *testing.T) {
		result, err := store.Allow(ctx, "10.0.0.2:subscriptions", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, int64(4), result.Remaining)
	})

	t.Run("counter expires with its window", func(t *testing.T) {
		key := rateLimitPrefix + "10.0.0.1:subscriptions:" + "28333333"
		require.True(t, mr.Exists(key))
		ttl := mr.TTL(key)
		assert.Greater(t, ttl, time.Minute-time.Second)
		assert.LessOrEqual(t, ttl, time.Minute+time.Second)
	})

	t.Run("next window starts fresh", func(t *testing.T) {
		store.now = func() time.Time { return fixed.Add(time.Minute) }
		result, err := store.Allow(ctx, "10.0.0.1:subscriptions", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, int64(2), result.Remaining)
	})

	t.Run("reset is the end of the window", func(t *testing.T) {
		store.now = func() time.Time { return fixed }
		result, err := store.Allow(ctx, "10.0.0.3:notify", 10, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, int64(1_700_000_040), result.ResetAt)
	})
}

func TestRateLimitStore_Unavailable(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Close()

	_, err := store.Allow(context.Background(), "k", 1, time.Minute)
	assert.Error(t, err)
}
