package leaderboard_cache

import (
	"context"
	"os"
	"testing"
	"time"

	"lucky_wheel/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Нужен живой Redis: TEST_REDIS_ADDR=localhost:6379
func newTestClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	require.NoError(t, rdb.Ping(context.Background()).Err())
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestKey(t *testing.T) {
	assert.Equal(t, "lucky_wheel:leaderboard:10", key(10))
}

func TestCacheRoundTrip(t *testing.T) {
	rdb := newTestClient(t)
	ctx := context.Background()
	c := NewLeaderboardCache(rdb, time.Minute)
	require.NoError(t, c.Invalidate(ctx))

	_, ok, err := c.Get(ctx, 10)
	require.NoError(t, err)
	assert.False(t, ok)

	winners := []model.Winner{{Rank: 1, Player: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", TotalWinnings: 50, SpinCount: 3}}
	require.NoError(t, c.Set(ctx, 10, winners))

	got, ok, err := c.Get(ctx, 10)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, winners, got)

	require.NoError(t, c.Invalidate(ctx))
	_, ok, _ = c.Get(ctx, 10)
	assert.False(t, ok)
}
