package model

import "time"

const (
	EventSpinResult   = "SpinResult"
	EventPrizeClaimed = "PrizeClaimed"
)

type SpinResultEvent struct {
	Player string
	SpinID int64
	Tier   PrizeTier
	Payout int64
	At     time.Time
}

type PrizeClaimedEvent struct {
	Player string
	SpinID int64
	Amount int64
	At     time.Time
}
