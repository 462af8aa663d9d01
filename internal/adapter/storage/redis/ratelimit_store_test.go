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

func TestRateLimitStore_Allow_UnderLimit(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewRateLimitStore(client)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		res, err := store.Allow(ctx, "webhook:1.2.3.4", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, res.Allowed, "request %d should be allowed", i+1)
	}
}

func TestRateLimitStore_Allow_OverLimit(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewRateLimitStore(client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.Allow(ctx, "webhook:1.2.3.4", 3, time.Minute)
		require.NoError(t, err)
	}

	res, err := store.Allow(ctx, "webhook:1.2.3.4", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Zero(t, res.Remaining)
}

func TestRateLimitStore_Allow_SeparateKeys(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewRateLimitStore(client)
	ctx := context.Background()

	_, err := store.Allow(ctx, "webhook:1.1.1.1", 1, time.Minute)
	require.NoError(t, err)

	res, err := store.Allow(ctx, "webhook:2.2.2.2", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, res.Allowed, "different keys have independent windows")
}
