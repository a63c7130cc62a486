package model

import (
	"errors"
	"fmt"

	"lucky_wheel/internal/model"
	"lucky_wheel/pkg/ether"
)

// WeightScale - веса призов задаются в базисных пунктах (1/10000)
const WeightScale = 10000

// Prize - строка таблицы выплат
type Prize struct {
	Tier   model.PrizeTier
	Weight int   // базисные пункты
	Payout int64 // gwei
}

// Paytable - стоимость вращения и призы в порядке FIRST, SECOND, THIRD, NONE
type Paytable struct {
	SpinCost int64
	Prizes   []Prize
}

// tierOrder порядок интервалов на отрезке [0,1)
var tierOrder = []model.PrizeTier{model.TierFirst, model.TierSecond, model.TierThird, model.TierNone}

// DefaultPaytable константы контракта: 0.01 за вращение, призы 0.05 / 0.02 / 0.01
func DefaultPaytable() Paytable {
	return Paytable{
		SpinCost: ether.MustParse("0.01"),
		Prizes: []Prize{
			{Tier: model.TierFirst, Weight: 100, Payout: ether.MustParse("0.05")},
			{Tier: model.TierSecond, Weight: 1000, Payout: ether.MustParse("0.02")},
			{Tier: model.TierThird, Weight: 2000, Payout: ether.MustParse("0.01")},
			{Tier: model.TierNone, Weight: 6900, Payout: 0},
		},
	}
}

var ErrInvalidPaytable = errors.New("invalid paytable")

// Validate проверяет порядок призов, веса и выплаты
func (p Paytable) Validate() error {
	if p.SpinCost <= 0 {
		return fmt.Errorf("%w: spin cost must be positive", ErrInvalidPaytable)
	}
	if len(p.Prizes) != len(tierOrder) {
		return fmt.Errorf("%w: expected %d prizes, got %d", ErrInvalidPaytable, len(tierOrder), len(p.Prizes))
	}

	total := 0
	for i, prize := range p.Prizes {
		if prize.Tier != tierOrder[i] {
			return fmt.Errorf("%w: prize %d must be %s, got %s", ErrInvalidPaytable, i, tierOrder[i], prize.Tier)
		}
		if prize.Weight <= 0 {
			return fmt.Errorf("%w: %s weight must be positive", ErrInvalidPaytable, prize.Tier)
		}
		if prize.Payout < 0 {
			return fmt.Errorf("%w: %s payout is negative", ErrInvalidPaytable, prize.Tier)
		}
		total += prize.Weight
	}

	if p.Prizes[len(p.Prizes)-1].Payout != 0 {
		return fmt.Errorf("%w: NONE payout must be zero", ErrInvalidPaytable)
	}
	if total != WeightScale {
		return fmt.Errorf("%w: weights sum to %d, want %d", ErrInvalidPaytable, total, WeightScale)
	}

	return nil
}

// Bounds кумулятивные верхние границы интервалов.
// Делим целые числа, поэтому 0.01, 0.11, 0.31 и 1.0 получаются точно
func (p Paytable) Bounds() []float64 {
	bounds := make([]float64, len(p.Prizes))
	cum := 0
	for i, prize := range p.Prizes {
		cum += prize.Weight
		bounds[i] = float64(cum) / WeightScale
	}
	return bounds
}

// Payout выплата для исхода
func (p Paytable) Payout(tier model.PrizeTier) int64 {
	for _, prize := range p.Prizes {
		if prize.Tier == tier {
			return prize.Payout
		}
	}
	return 0
}

// Probability вероятность исхода
func (p Paytable) Probability(tier model.PrizeTier) float64 {
	for _, prize := range p.Prizes {
		if prize.Tier == tier {
			return float64(prize.Weight) / WeightScale
		}
	}
	return 0
}

// ExpectedRTP теоретический возврат игроку в процентах
func (p Paytable) ExpectedRTP() float64 {
	if p.SpinCost == 0 {
		return 0
	}
	var expected float64
	for _, prize := range p.Prizes {
		expected += float64(prize.Weight) / WeightScale * float64(prize.Payout)
	}
	return expected / float64(p.SpinCost) * 100
}
