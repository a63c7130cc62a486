package model

// HouseAccount - ключ кошелька казны в хранилище балансов
const HouseAccount = "house"

type TierInfo struct {
	Tier        PrizeTier
	Payout      int64
	Probability float64
}

// WheelInfo - аналог getContractInfo + баланс контракта
type WheelInfo struct {
	SpinCost     int64
	Tiers        []TierInfo
	TotalSpins   int64
	HouseBalance int64
	Commitment   string
}

type HouseStats struct {
	TotalSpins       int64
	TotalClaims      int64
	FeesCollected    int64
	PrizesAwarded    int64
	PayoutsDisbursed int64
	TierCounts       map[PrizeTier]int64
	RTP              float64
	WindowRTP        float64
	WindowSize       int
}
