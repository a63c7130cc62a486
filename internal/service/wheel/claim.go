package wheel

import (
	"context"
	"fmt"

	"lucky_wheel/internal/ledger"
	"lucky_wheel/internal/model"
	"lucky_wheel/pkg/address"
)

// Claim выплачивает приз владельцу спина.
// Отметка claimed ставится только после успешной выплаты в той же транзакции
func (s *serv) Claim(ctx context.Context, req model.ClaimRequest) (*model.ClaimResult, error) {
	player, err := address.Normalize(req.Player)
	if err != nil {
		return nil, s.reject("claim", req.Player, fmt.Errorf("%w: %v", model.ErrInvalidPlayer, err))
	}

	var spin *model.Spin
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		spin, err = s.ledgerRepo.GetSpin(txCtx, req.SpinID)
		if err != nil {
			return err
		}

		if err = ledger.CheckClaim(spin, player); err != nil {
			return err
		}

		if err = s.treasury.Disburse(txCtx, player, spin.Payout); err != nil {
			return err
		}

		return s.ledgerRepo.MarkClaimed(txCtx, spin.ID, s.now())
	})
	if err != nil {
		return nil, s.reject("claim", player, fmt.Errorf("claim spin %d: %w", req.SpinID, err))
	}

	s.statsRepo.UpdateClaim(spin.Payout)
	s.notifier.PrizeClaimed(ctx, model.PrizeClaimedEvent{
		Player: player,
		SpinID: spin.ID,
		Amount: spin.Payout,
		At:     s.now(),
	})

	return &model.ClaimResult{SpinID: spin.ID, Player: player, Amount: spin.Payout}, nil
}
