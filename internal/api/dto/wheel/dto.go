package wheel

import "time"

// Суммы передаются строкой в эфирах, например "0.01"

type SpinRequest struct {
	Fee string `json:"fee"` // Взнос, должен совпадать со стоимостью вращения
}

type Spin struct {
	SpinID    int64      `json:"spin_id"`
	Player    string     `json:"player"`
	Tier      string     `json:"tier"`    // NONE, FIRST, SECOND, THIRD
	TierID    int        `json:"tier_id"` // 0-3, как в контракте
	Payout    string     `json:"payout"`
	Claimed   bool       `json:"claimed"`
	Claimable bool       `json:"claimable"`
	CreatedAt time.Time  `json:"created_at"`
	ClaimedAt *time.Time `json:"claimed_at,omitempty"`
}

type SpinHistoryResponse struct {
	Player   string `json:"player"`
	Spins    []Spin `json:"spins"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Total    int    `json:"total"`
}

type ClaimResponse struct {
	SpinID int64  `json:"spin_id"`
	Player string `json:"player"`
	Amount string `json:"amount"`
}

type WinningsResponse struct {
	Player        string `json:"player"`
	TotalWinnings string `json:"total_winnings"`
}

type Prize struct {
	Tier        string  `json:"tier"`
	TierID      int     `json:"tier_id"`
	Payout      string  `json:"payout"`
	Probability float64 `json:"probability"`
}

type InfoResponse struct {
	SpinCost     string  `json:"spin_cost"`
	Prizes       []Prize `json:"prizes"`
	TotalSpins   int64   `json:"total_spins"`
	HouseBalance string  `json:"house_balance"`
	Commitment   string  `json:"seed_commitment,omitempty"` // sha256 серверного сида
}

type StatsResponse struct {
	TotalSpins       int64            `json:"total_spins"`
	TotalClaims      int64            `json:"total_claims"`
	FeesCollected    string           `json:"fees_collected"`
	PrizesAwarded    string           `json:"prizes_awarded"`
	PayoutsDisbursed string           `json:"payouts_disbursed"`
	TierCounts       map[string]int64 `json:"tier_counts"`
	RTP              float64          `json:"rtp"`
	WindowRTP        float64          `json:"window_rtp"`
	WindowSize       int              `json:"window_size"`
}

type Winner struct {
	Rank          int    `json:"rank"`
	Player        string `json:"player"`
	TotalWinnings string `json:"total_winnings"`
	SpinCount     int    `json:"spin_count"`
}

type LeaderboardResponse struct {
	Winners []Winner `json:"winners"`
}
