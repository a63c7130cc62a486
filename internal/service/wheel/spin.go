package wheel

import (
	"context"
	"fmt"

	"lucky_wheel/internal/metrics"
	"lucky_wheel/internal/model"
	"lucky_wheel/internal/random"
	"lucky_wheel/pkg/address"
	"lucky_wheel/pkg/ether"

	"github.com/sirupsen/logrus"
)

// Spin принимает взнос, разыгрывает исход и записывает спин.
// Все шаги в одной транзакции: при ошибке не остается ни спина, ни списания
func (s *serv) Spin(ctx context.Context, req model.SpinRequest) (*model.Spin, error) {
	player, err := address.Normalize(req.Player)
	if err != nil {
		return nil, s.reject("spin", req.Player, fmt.Errorf("%w: %v", model.ErrInvalidPlayer, err))
	}

	// Взнос проверяется до любых изменений состояния
	if req.Fee != s.paytable.SpinCost {
		return nil, s.reject("spin", player, fmt.Errorf("%w: got %s, want %s",
			model.ErrIncorrectFee, ether.Format(req.Fee), ether.Format(s.paytable.SpinCost)))
	}

	var spin *model.Spin
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. id будущего спина служит nonce для источника
		nonce, err := s.ledgerRepo.NextSpinID(txCtx)
		if err != nil {
			return err
		}

		// 2. Розыгрыш
		draw, err := s.source.Draw(txCtx, random.Input{Player: player, Nonce: nonce})
		if err != nil {
			return fmt.Errorf("draw: %w", err)
		}
		tier := Resolve(s.paytable, draw)

		// 3. Списание взноса в казну
		if err = s.treasury.Collect(txCtx, player, req.Fee); err != nil {
			return err
		}

		// 4. Запись в реестр
		spin, err = s.ledgerRepo.RecordSpin(txCtx, player, tier, s.paytable.Payout(tier), s.now())
		return err
	})
	if err != nil {
		return nil, s.reject("spin", player, err)
	}

	s.statsRepo.UpdateSpin(req.Fee, spin.Tier, spin.Payout)
	s.notifier.SpinResult(ctx, model.SpinResultEvent{
		Player: spin.Player,
		SpinID: spin.ID,
		Tier:   spin.Tier,
		Payout: spin.Payout,
		At:     spin.CreatedAt,
	})

	return spin, nil
}

// reject логирует отказ и считает его в метриках
func (s *serv) reject(operation, player string, err error) error {
	code := model.ErrorCode(err)
	metrics.RecordRejection(operation, code)

	entry := s.logger.WithFields(logrus.Fields{
		"operation": operation,
		"player":    player,
		"code":      code,
	}).WithError(err)
	if code == model.CodeInternal {
		entry.Error("operation failed")
	} else {
		entry.Warn("operation rejected")
	}
	return err
}
