package treasury

import (
	"context"
	"errors"
	"fmt"
	"math"

	"lucky_wheel/internal/model"
	"lucky_wheel/pkg/ether"

	"github.com/sirupsen/logrus"
)

// Collect - списание взноса за вращение в казну
func (s *serv) Collect(ctx context.Context, player string, amount int64) error {
	if amount <= 0 {
		return model.ErrInvalidAmount
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.move(txCtx, player, model.HouseAccount, amount)
	})
	if err != nil {
		return fmt.Errorf("collect fee: %w", err)
	}
	return nil
}

// Disburse - выплата приза. Любая неудача превращается в ErrDisbursementFailed
func (s *serv) Disburse(ctx context.Context, player string, amount int64) error {
	if amount <= 0 {
		return model.ErrInvalidAmount
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.move(txCtx, model.HouseAccount, player, amount)
	})
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"player": player,
			"amount": ether.Format(amount),
		}).WithError(err).Error("disbursement failed")
		return fmt.Errorf("%w: %v", model.ErrDisbursementFailed, err)
	}
	return nil
}

// move перевод между счетами. Все проверки выполняются до первой записи
func (s *serv) move(ctx context.Context, from, to string, amount int64) error {
	if err := s.walletRepo.LockAccounts(ctx, from, to); err != nil {
		return err
	}

	fromBalance, err := s.walletRepo.GetBalance(ctx, from)
	if err != nil {
		return err
	}
	if fromBalance < amount {
		return model.ErrInsufficientFunds
	}

	toBalance, err := s.walletRepo.GetBalance(ctx, to)
	if err != nil {
		return err
	}
	if toBalance > math.MaxInt64-amount {
		return ether.ErrOverflow
	}

	if err = s.walletRepo.UpdateBalance(ctx, from, fromBalance-amount); err != nil {
		return err
	}
	return s.walletRepo.UpdateBalance(ctx, to, toBalance+amount)
}

// credit зачисление на счет извне (фаусет, пополнение казны)
func (s *serv) credit(ctx context.Context, account string, amount int64) (int64, error) {
	var balance int64
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.walletRepo.LockAccounts(txCtx, account); err != nil {
			return err
		}
		current, err := s.walletRepo.GetBalance(txCtx, account)
		if err != nil {
			return err
		}
		balance = current + amount
		if balance < current {
			return ether.ErrOverflow
		}
		return s.walletRepo.UpdateBalance(txCtx, account, balance)
	})
	if errors.Is(err, ether.ErrOverflow) {
		return 0, fmt.Errorf("%w: %v", model.ErrInvalidAmount, err)
	}
	return balance, err
}
