package wheel

import (
	"lucky_wheel/internal/model"
	servModel "lucky_wheel/internal/service/wheel/model"
)

// Resolve отображает равномерный draw из [0,1) в исход колеса.
// Интервалы полуоткрытые и идут в порядке таблицы выплат.
// Значения вне [0,1), включая NaN, дают NONE
func Resolve(paytable servModel.Paytable, draw float64) model.PrizeTier {
	if !(draw >= 0 && draw < 1) {
		return model.TierNone
	}

	cumulative := 0
	for _, prize := range paytable.Prizes {
		cumulative += prize.Weight
		if draw < float64(cumulative)/servModel.WeightScale {
			return prize.Tier
		}
	}

	return model.TierNone
}
