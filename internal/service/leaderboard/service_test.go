package leaderboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"lucky_wheel/internal/ledger"
	"lucky_wheel/internal/model"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	alice = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	bob   = "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"
)

type fakeCache struct {
	data        map[int][]model.Winner
	getErr      error
	invalidated int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[int][]model.Winner{}}
}

func (c *fakeCache) Get(_ context.Context, limit int) ([]model.Winner, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	w, ok := c.data[limit]
	return w, ok, nil
}

func (c *fakeCache) Set(_ context.Context, limit int, winners []model.Winner) error {
	c.data[limit] = winners
	return nil
}

func (c *fakeCache) Invalidate(context.Context) error {
	c.invalidated++
	c.data = map[int][]model.Winner{}
	return nil
}

func seed(t *testing.T) *ledger.Ledger {
	t.Helper()
	ctx := context.Background()
	l := ledger.New()
	a, err := l.RecordSpin(ctx, alice, model.TierThird, 10, time.Now())
	require.NoError(t, err)
	b, err := l.RecordSpin(ctx, bob, model.TierFirst, 50, time.Now())
	require.NoError(t, err)
	_, err = l.Claim(ctx, alice, a.ID)
	require.NoError(t, err)
	_, err = l.Claim(ctx, bob, b.ID)
	require.NoError(t, err)
	return l
}

func TestTopWithoutCache(t *testing.T) {
	logger, _ := test.NewNullLogger()
	s := NewLeaderboardService(seed(t), nil, logger)

	winners, err := s.Top(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, winners, 2)
	assert.Equal(t, bob, winners[0].Player)
	assert.Equal(t, alice, winners[1].Player)

	assert.NoError(t, s.Refresh(context.Background()))
}

func TestTopUsesCache(t *testing.T) {
	logger, _ := test.NewNullLogger()
	cache := newFakeCache()
	s := NewLeaderboardService(seed(t), cache, logger)

	_, err := s.Top(context.Background(), 5)
	require.NoError(t, err)
	require.Contains(t, cache.data, 5)

	cache.data[5] = []model.Winner{{Rank: 1, Player: "cached"}}
	winners, err := s.Top(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "cached", winners[0].Player)
}

func TestTopClampsLimit(t *testing.T) {
	logger, _ := test.NewNullLogger()
	cache := newFakeCache()
	s := NewLeaderboardService(seed(t), cache, logger)

	_, err := s.Top(context.Background(), 1000)
	require.NoError(t, err)
	assert.Contains(t, cache.data, MaxLimit)
}

func TestTopFallsBackOnCacheError(t *testing.T) {
	logger, hook := test.NewNullLogger()
	cache := newFakeCache()
	cache.getErr = errors.New("redis down")
	s := NewLeaderboardService(seed(t), cache, logger)

	winners, err := s.Top(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, winners, 2)
	assert.NotNil(t, hook.LastEntry())
}

func TestRefresh(t *testing.T) {
	logger, _ := test.NewNullLogger()
	cache := newFakeCache()
	s := NewLeaderboardService(seed(t), cache, logger)

	require.NoError(t, s.Refresh(context.Background()))
	assert.Equal(t, 1, cache.invalidated)
	assert.Len(t, cache.data[DefaultLimit], 2)
}
