package model

// PrizeTier - исход вращения колеса. Числовые id совпадают с контрактом
type PrizeTier int

const (
	TierNone   PrizeTier = 0
	TierFirst  PrizeTier = 1
	TierSecond PrizeTier = 2
	TierThird  PrizeTier = 3
)

func (t PrizeTier) String() string {
	switch t {
	case TierFirst:
		return "FIRST"
	case TierSecond:
		return "SECOND"
	case TierThird:
		return "THIRD"
	default:
		return "NONE"
	}
}

// ParsePrizeTier обратное преобразование для YAML конфига
func ParsePrizeTier(s string) (PrizeTier, bool) {
	switch s {
	case "FIRST":
		return TierFirst, true
	case "SECOND":
		return TierSecond, true
	case "THIRD":
		return TierThird, true
	case "NONE":
		return TierNone, true
	}
	return TierNone, false
}
