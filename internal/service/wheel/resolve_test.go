package wheel

import (
	"context"
	"math"
	"testing"

	"lucky_wheel/internal/model"
	"lucky_wheel/internal/random"
	servModel "lucky_wheel/internal/service/wheel/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveIntervals(t *testing.T) {
	p := servModel.DefaultPaytable()

	cases := []struct {
		draw float64
		want model.PrizeTier
	}{
		{0, model.TierFirst},
		{0.005, model.TierFirst},
		{math.Nextafter(0.01, 0), model.TierFirst},
		{0.01, model.TierSecond},
		{0.05, model.TierSecond},
		{math.Nextafter(0.11, 0), model.TierSecond},
		{0.11, model.TierThird},
		{0.2, model.TierThird},
		{math.Nextafter(0.31, 0), model.TierThird},
		{0.31, model.TierNone},
		{0.5, model.TierNone},
		{math.Nextafter(1, 0), model.TierNone},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Resolve(p, tc.draw), "draw=%v", tc.draw)
	}
}

func TestResolveOutOfRange(t *testing.T) {
	p := servModel.DefaultPaytable()
	for _, d := range []float64{-0.1, 1, 1.5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.Equal(t, model.TierNone, Resolve(p, d), "draw=%v", d)
	}
}

func TestResolveIsPure(t *testing.T) {
	p := servModel.DefaultPaytable()
	for _, d := range []float64{0.001, 0.07, 0.3, 0.9} {
		assert.Equal(t, Resolve(p, d), Resolve(p, d))
	}
}

func TestResolveFrequencies(t *testing.T) {
	const n = 10_000
	p := servModel.DefaultPaytable()
	src := random.NewSeededSource(20240601)

	counts := map[model.PrizeTier]int{}
	for i := 0; i < n; i++ {
		d, err := src.Draw(context.Background(), random.Input{Nonce: int64(i)})
		require.NoError(t, err)
		counts[Resolve(p, d)]++
	}

	for _, prize := range p.Prizes {
		prob := p.Probability(prize.Tier)
		sigma := math.Sqrt(prob * (1 - prob) / n)
		got := float64(counts[prize.Tier]) / n
		assert.InDelta(t, prob, got, 5*sigma, "tier %s", prize.Tier)
	}
}
