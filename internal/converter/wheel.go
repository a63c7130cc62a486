package converter

import (
	"fmt"

	"lucky_wheel/internal/api/dto/wheel"
	"lucky_wheel/internal/model"
	"lucky_wheel/pkg/ether"
)

// ParseAmount сумма в эфирах из запроса. Пустая строка - ноль
func ParseAmount(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := ether.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", model.ErrInvalidAmount, err)
	}
	return v, nil
}

func ToSpinRequest(player string, req wheel.SpinRequest) (model.SpinRequest, error) {
	fee, err := ParseAmount(req.Fee)
	if err != nil {
		return model.SpinRequest{}, err
	}
	return model.SpinRequest{Player: player, Fee: fee}, nil
}

func ToSpinResponse(s model.Spin) wheel.Spin {
	out := wheel.Spin{
		SpinID:    s.ID,
		Player:    s.Player,
		Tier:      s.Tier.String(),
		TierID:    int(s.Tier),
		Payout:    ether.Format(s.Payout),
		Claimed:   s.Claimed,
		Claimable: s.Claimable(),
		CreatedAt: s.CreatedAt,
	}
	if s.Claimed {
		claimedAt := s.ClaimedAt
		out.ClaimedAt = &claimedAt
	}
	return out
}

func ToSpinHistoryResponse(player string, page, pageSize int, p model.SpinPage) wheel.SpinHistoryResponse {
	spins := make([]wheel.Spin, len(p.Spins))
	for i, s := range p.Spins {
		spins[i] = ToSpinResponse(s)
	}
	return wheel.SpinHistoryResponse{
		Player:   player,
		Spins:    spins,
		Page:     page,
		PageSize: pageSize,
		Total:    p.Total,
	}
}

func ToClaimResponse(r model.ClaimResult) wheel.ClaimResponse {
	return wheel.ClaimResponse{
		SpinID: r.SpinID,
		Player: r.Player,
		Amount: ether.Format(r.Amount),
	}
}

func ToWinningsResponse(player string, total int64) wheel.WinningsResponse {
	return wheel.WinningsResponse{Player: player, TotalWinnings: ether.Format(total)}
}

func ToInfoResponse(info model.WheelInfo) wheel.InfoResponse {
	prizes := make([]wheel.Prize, len(info.Tiers))
	for i, t := range info.Tiers {
		prizes[i] = wheel.Prize{
			Tier:        t.Tier.String(),
			TierID:      int(t.Tier),
			Payout:      ether.Format(t.Payout),
			Probability: t.Probability,
		}
	}
	return wheel.InfoResponse{
		SpinCost:     ether.Format(info.SpinCost),
		Prizes:       prizes,
		TotalSpins:   info.TotalSpins,
		HouseBalance: ether.Format(info.HouseBalance),
		Commitment:   info.Commitment,
	}
}

func ToStatsResponse(s model.HouseStats) wheel.StatsResponse {
	counts := make(map[string]int64, len(s.TierCounts))
	for tier, n := range s.TierCounts {
		counts[tier.String()] = n
	}
	return wheel.StatsResponse{
		TotalSpins:       s.TotalSpins,
		TotalClaims:      s.TotalClaims,
		FeesCollected:    ether.Format(s.FeesCollected),
		PrizesAwarded:    ether.Format(s.PrizesAwarded),
		PayoutsDisbursed: ether.Format(s.PayoutsDisbursed),
		TierCounts:       counts,
		RTP:              s.RTP,
		WindowRTP:        s.WindowRTP,
		WindowSize:       s.WindowSize,
	}
}

func ToLeaderboardResponse(winners []model.Winner) wheel.LeaderboardResponse {
	out := make([]wheel.Winner, len(winners))
	for i, w := range winners {
		out[i] = wheel.Winner{
			Rank:          w.Rank,
			Player:        w.Player,
			TotalWinnings: ether.Format(w.TotalWinnings),
			SpinCount:     w.SpinCount,
		}
	}
	return wheel.LeaderboardResponse{Winners: out}
}
