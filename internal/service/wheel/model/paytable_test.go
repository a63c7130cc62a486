package model

import (
	"testing"

	"lucky_wheel/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaytable(t *testing.T) {
	p := DefaultPaytable()
	require.NoError(t, p.Validate())

	assert.Equal(t, []float64{0.01, 0.11, 0.31, 1.0}, p.Bounds())
	assert.Equal(t, int64(10_000_000), p.SpinCost)
	assert.Equal(t, int64(50_000_000), p.Payout(model.TierFirst))
	assert.Equal(t, int64(20_000_000), p.Payout(model.TierSecond))
	assert.Equal(t, int64(10_000_000), p.Payout(model.TierThird))
	assert.Zero(t, p.Payout(model.TierNone))
	assert.InDelta(t, 0.69, p.Probability(model.TierNone), 1e-12)
	assert.InDelta(t, 45.0, p.ExpectedRTP(), 1e-9)
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(p *Paytable){
		"zero cost":       func(p *Paytable) { p.SpinCost = 0 },
		"missing tier":    func(p *Paytable) { p.Prizes = p.Prizes[:3] },
		"wrong order":     func(p *Paytable) { p.Prizes[0], p.Prizes[1] = p.Prizes[1], p.Prizes[0] },
		"zero weight":     func(p *Paytable) { p.Prizes[2].Weight = 0; p.Prizes[3].Weight += 2000 },
		"bad sum":         func(p *Paytable) { p.Prizes[3].Weight = 6000 },
		"negative payout": func(p *Paytable) { p.Prizes[1].Payout = -1 },
		"paid none":       func(p *Paytable) { p.Prizes[3].Payout = 1 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := DefaultPaytable()
			mutate(&p)
			assert.ErrorIs(t, p.Validate(), ErrInvalidPaytable)
		})
	}
}
