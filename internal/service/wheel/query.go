package wheel

import (
	"context"
	"fmt"

	"lucky_wheel/internal/model"
	"lucky_wheel/pkg/address"
)

type committer interface {
	Commitment() string
}

func (s *serv) PlayerSpins(ctx context.Context, player string, page model.Page) (*model.SpinPage, error) {
	player, err := address.Normalize(player)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidPlayer, err)
	}

	spins, total, err := s.ledgerRepo.PlayerSpins(ctx, player, page)
	if err != nil {
		return nil, err
	}
	return &model.SpinPage{Spins: spins, Total: total}, nil
}

func (s *serv) PlayerTotalWinnings(ctx context.Context, player string) (int64, error) {
	player, err := address.Normalize(player)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", model.ErrInvalidPlayer, err)
	}
	return s.ledgerRepo.TotalWinnings(ctx, player)
}

// Info константы колеса, число спинов и баланс казны
func (s *serv) Info(ctx context.Context) (*model.WheelInfo, error) {
	total, err := s.ledgerRepo.SpinCount(ctx)
	if err != nil {
		return nil, err
	}

	house, err := s.treasury.HouseBalance(ctx)
	if err != nil {
		return nil, err
	}

	info := &model.WheelInfo{
		SpinCost:     s.paytable.SpinCost,
		Tiers:        make([]model.TierInfo, 0, len(s.paytable.Prizes)),
		TotalSpins:   total,
		HouseBalance: house,
	}
	for _, prize := range s.paytable.Prizes {
		info.Tiers = append(info.Tiers, model.TierInfo{
			Tier:        prize.Tier,
			Payout:      prize.Payout,
			Probability: s.paytable.Probability(prize.Tier),
		})
	}
	if c, ok := s.source.(committer); ok {
		info.Commitment = c.Commitment()
	}

	return info, nil
}

func (s *serv) Stats(_ context.Context) model.HouseStats {
	return s.statsRepo.HouseStats()
}
