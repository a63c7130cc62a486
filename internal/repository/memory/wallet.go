package memory

import (
	"context"
	"sync"

	"lucky_wheel/internal/model"
	"lucky_wheel/internal/repository"
)

type walletRepo struct {
	mtx      sync.RWMutex
	balances map[string]int64
}

func NewWalletRepository() repository.WalletRepository {
	return &walletRepo{balances: make(map[string]int64)}
}

// LockAccounts ничего не делает: TxManager и так выполняет транзакции по одной
func (r *walletRepo) LockAccounts(_ context.Context, _ ...string) error {
	return nil
}

// GetBalance - баланс счета, 0 если счета нет
func (r *walletRepo) GetBalance(_ context.Context, account string) (int64, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.balances[account], nil
}

func (r *walletRepo) UpdateBalance(_ context.Context, account string, balance int64) error {
	if balance < 0 {
		return model.ErrInsufficientFunds
	}
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.balances[account] = balance
	return nil
}
