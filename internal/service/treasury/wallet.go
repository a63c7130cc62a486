package treasury

import (
	"context"
	"fmt"

	"lucky_wheel/internal/model"
	"lucky_wheel/pkg/ether"

	"github.com/sirupsen/logrus"
)

// Deposit - пополнение кошелька игрока (фаусет тестовой сети)
func (s *serv) Deposit(ctx context.Context, player string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, model.ErrInvalidAmount
	}
	if s.maxDeposit > 0 && amount > s.maxDeposit {
		return 0, fmt.Errorf("%w: deposit limit is %s", model.ErrInvalidAmount, ether.Format(s.maxDeposit))
	}

	balance, err := s.credit(ctx, player, amount)
	if err != nil {
		return 0, err
	}

	s.logger.WithFields(logrus.Fields{
		"player":  player,
		"amount":  ether.Format(amount),
		"balance": ether.Format(balance),
	}).Info("deposit")
	return balance, nil
}

func (s *serv) Balance(ctx context.Context, player string) (int64, error) {
	return s.walletRepo.GetBalance(ctx, player)
}

func (s *serv) HouseBalance(ctx context.Context) (int64, error) {
	return s.walletRepo.GetBalance(ctx, model.HouseAccount)
}

// Fund - пополнение казны, как перевод на адрес контракта
func (s *serv) Fund(ctx context.Context, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, model.ErrInvalidAmount
	}

	balance, err := s.credit(ctx, model.HouseAccount, amount)
	if err != nil {
		return 0, err
	}

	s.logger.WithFields(logrus.Fields{
		"amount":  ether.Format(amount),
		"balance": ether.Format(balance),
	}).Info("house funded")
	return balance, nil
}

// Withdraw - вывод из казны владельцу. amount == 0 выводит весь баланс
func (s *serv) Withdraw(ctx context.Context, to string, amount int64) (int64, error) {
	if amount < 0 {
		return 0, model.ErrInvalidAmount
	}

	var withdrawn int64
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.walletRepo.LockAccounts(txCtx, model.HouseAccount, to); err != nil {
			return err
		}
		withdrawn = amount
		if withdrawn == 0 {
			house, err := s.walletRepo.GetBalance(txCtx, model.HouseAccount)
			if err != nil {
				return err
			}
			withdrawn = house
		}
		if withdrawn == 0 {
			return nil
		}
		return s.move(txCtx, model.HouseAccount, to, withdrawn)
	})
	if err != nil {
		return 0, fmt.Errorf("withdraw: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"to":     to,
		"amount": ether.Format(withdrawn),
	}).Info("house withdrawal")
	return withdrawn, nil
}
