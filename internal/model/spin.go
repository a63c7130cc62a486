package model

import "time"

// Spin - запись об одном вращении. Суммы в gwei
type Spin struct {
	ID        int64
	Player    string
	Tier      PrizeTier
	Payout    int64
	CreatedAt time.Time
	Claimed   bool
	ClaimedAt time.Time
}

// Claimable можно ли еще забрать выигрыш
func (s Spin) Claimable() bool {
	return s.Payout > 0 && !s.Claimed
}

type SpinRequest struct {
	Player string
	Fee    int64
}

type ClaimRequest struct {
	Player string
	SpinID int64
}

type ClaimResult struct {
	SpinID int64
	Player string
	Amount int64
}

// Page - окно выборки истории. Limit == 0 значит без ограничений
type Page struct {
	Limit  int
	Offset int
}

type SpinPage struct {
	Spins []Spin
	Total int
}

// Winner - строка лидерборда
type Winner struct {
	Rank          int    `json:"rank"`
	Player        string `json:"player"`
	TotalWinnings int64  `json:"total_winnings"`
	SpinCount     int    `json:"spin_count"`
}
