package ledger

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"lucky_wheel/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	alice = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	bob   = "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"
)

func record(t *testing.T, l *Ledger, player string, tier model.PrizeTier, payout int64) *model.Spin {
	t.Helper()
	spin, err := l.RecordSpin(context.Background(), player, tier, payout, time.Now())
	require.NoError(t, err)
	return spin
}

func TestRecordSpinSequentialIDs(t *testing.T) {
	l := New()
	ctx := context.Background()

	next, err := l.NextSpinID(ctx)
	require.NoError(t, err)
	assert.Zero(t, next)

	a := record(t, l, alice, model.TierFirst, 50)
	b := record(t, l, bob, model.TierNone, 0)
	c := record(t, l, alice, model.TierThird, 10)

	assert.Equal(t, []int64{0, 1, 2}, []int64{a.ID, b.ID, c.ID})
	assert.False(t, a.Claimed)

	count, _ := l.SpinCount(ctx)
	assert.Equal(t, int64(3), count)

	total, _ := l.TotalWinnings(ctx, alice)
	assert.Zero(t, total, "totals change only on claim")
}

func TestRecordSpinNormalizesPlayer(t *testing.T) {
	l := New()
	spin := record(t, l, strings.ToLower(alice), model.TierNone, 0)
	assert.Equal(t, alice, spin.Player)

	_, err := l.RecordSpin(context.Background(), "not-an-address", model.TierNone, 0, time.Now())
	assert.ErrorIs(t, err, model.ErrInvalidPlayer)

	count, _ := l.SpinCount(context.Background())
	assert.Equal(t, int64(1), count)
}

func TestClaim(t *testing.T) {
	l := New()
	ctx := context.Background()
	spin := record(t, l, alice, model.TierFirst, 50)

	payout, err := l.Claim(ctx, alice, spin.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(50), payout)

	_, err = l.Claim(ctx, alice, spin.ID)
	assert.ErrorIs(t, err, model.ErrAlreadyClaimed)

	total, _ := l.TotalWinnings(ctx, alice)
	assert.Equal(t, int64(50), total)

	got, _ := l.GetSpin(ctx, spin.ID)
	assert.True(t, got.Claimed)
	assert.False(t, got.ClaimedAt.IsZero())
}

func TestClaimByNonOwnerLeavesStateUnchanged(t *testing.T) {
	l := New()
	ctx := context.Background()
	spin := record(t, l, alice, model.TierSecond, 20)

	_, err := l.Claim(ctx, bob, spin.ID)
	assert.ErrorIs(t, err, model.ErrNotOwner)

	got, _ := l.GetSpin(ctx, spin.ID)
	assert.False(t, got.Claimed)
	aliceTotal, _ := l.TotalWinnings(ctx, alice)
	bobTotal, _ := l.TotalWinnings(ctx, bob)
	assert.Zero(t, aliceTotal)
	assert.Zero(t, bobTotal)
}

func TestClaimErrors(t *testing.T) {
	l := New()
	ctx := context.Background()
	empty := record(t, l, alice, model.TierNone, 0)

	_, err := l.Claim(ctx, alice, empty.ID)
	assert.ErrorIs(t, err, model.ErrNothingToClaim)

	_, err = l.Claim(ctx, alice, 99)
	assert.ErrorIs(t, err, model.ErrSpinNotFound)

	_, err = l.GetSpin(ctx, -1)
	assert.ErrorIs(t, err, model.ErrSpinNotFound)

	err = l.MarkClaimed(ctx, empty.ID, time.Now())
	assert.ErrorIs(t, err, model.ErrNothingToClaim)
}

func TestPlayerSpinsPaging(t *testing.T) {
	l := New()
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		record(t, l, alice, model.TierNone, 0)
		record(t, l, bob, model.TierNone, 0)
	}

	all, total, err := l.PlayerSpins(ctx, alice, model.Page{})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID, all[i].ID)
	}

	page, total, err := l.PlayerSpins(ctx, alice, model.Page{Limit: 2, Offset: 4})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, page, 1)
	assert.Equal(t, all[4].ID, page[0].ID)

	none, total, err := l.PlayerSpins(ctx, "0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb", model.Page{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, none)
}

func TestTopWinners(t *testing.T) {
	l := New()
	ctx := context.Background()

	a := record(t, l, alice, model.TierThird, 10)
	b := record(t, l, bob, model.TierFirst, 50)
	record(t, l, bob, model.TierNone, 0)
	_, err := l.Claim(ctx, alice, a.ID)
	require.NoError(t, err)
	_, err = l.Claim(ctx, bob, b.ID)
	require.NoError(t, err)

	winners, err := l.TopWinners(ctx, 10)
	require.NoError(t, err)
	require.Len(t, winners, 2)
	assert.Equal(t, model.Winner{Rank: 1, Player: bob, TotalWinnings: 50, SpinCount: 2}, winners[0])
	assert.Equal(t, model.Winner{Rank: 2, Player: alice, TotalWinnings: 10, SpinCount: 1}, winners[1])

	top, _ := l.TopWinners(ctx, 1)
	assert.Len(t, top, 1)
}

func TestConcurrentRecordSpinUniqueIDs(t *testing.T) {
	l := New()
	const n = 200

	var wg sync.WaitGroup
	ids := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			player := alice
			if i%2 == 0 {
				player = bob
			}
			spin, err := l.RecordSpin(context.Background(), player, model.TierNone, 0, time.Now())
			if err == nil {
				ids <- spin.ID
			}
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id])
		seen[id] = true
	}
	assert.Len(t, seen, n)
}
