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

func TestRateLimitStore_AllowWithinLimit(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewRateLimitStore(client)
	ctx := context.Background()

	for i := int64(1); i <= 5; i++ {
		result, err := store.Allow(ctx, "user-1:transfers", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed, "request %d should be allowed", i)
		assert.Equal(t, int64(5), result.Limit)
		assert.Equal(t, 5-i, result.Remaining)
	}
}

func TestRateLimitStore_DenyOverLimit(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewRateLimitStore(client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.Allow(ctx, "user-2:auth_login", 3, time.Minute)
		require.NoError(t, err)
	}

	result, err := store.Allow(ctx, "user-2:auth_login", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, int64(0), result.Remaining)
	assert.Greater(t, result.ResetAt, time.Now().Unix()-1)
}

func TestRateLimitStore_KeysAreIsolated(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewRateLimitStore(client)
	ctx := context.Background()

	_, err := store.Allow(ctx, "user-a:transfers", 1, time.Minute)
	require.NoError(t, err)

	// Exhausting user-a's budget must not affect user-b.
	exhausted, err := store.Allow(ctx, "user-a:transfers", 1, time.Minute)
	require.NoError(t, err)
	assert.False(t, exhausted.Allowed)

	fresh, err := store.Allow(ctx, "user-b:transfers", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, fresh.Allowed)
}

func TestRateLimitStore_WindowExpires(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewRateLimitStore(client)
	ctx := context.Background()

	_, err := store.Allow(ctx, "user-3:transfers", 1, time.Second)
	require.NoError(t, err)

	denied, err := store.Allow(ctx, "user-3:transfers", 1, time.Second)
	require.NoError(t, err)
	assert.False(t, denied.Allowed)

	// A later window starts a fresh counter.
	s.FastForward(3 * time.Second)
	time.Sleep(1100 * time.Millisecond)

	result, err := store.Allow(ctx, "user-3:transfers", 1, time.Second)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
}
