package treasury

import (
	"context"
	"math"
	"sync"
	"testing"

	"lucky_wheel/internal/model"
	"lucky_wheel/internal/repository"
	"lucky_wheel/internal/repository/memory"
	"lucky_wheel/internal/service"
	"lucky_wheel/pkg/ether"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	player = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	owner  = "0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb"
)

func newTreasury(t *testing.T, maxDeposit int64) (service.TreasuryService, repository.WalletRepository) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	wallets := memory.NewWalletRepository()
	return NewTreasuryService(wallets, memory.NewTxManager(), maxDeposit, logger), wallets
}

func TestCollectAndDisburse(t *testing.T) {
	s, _ := newTreasury(t, 0)
	ctx := context.Background()

	_, err := s.Deposit(ctx, player, 100)
	require.NoError(t, err)

	require.NoError(t, s.Collect(ctx, player, 30))
	bal, _ := s.Balance(ctx, player)
	house, _ := s.HouseBalance(ctx)
	assert.Equal(t, int64(70), bal)
	assert.Equal(t, int64(30), house)

	require.NoError(t, s.Disburse(ctx, player, 20))
	bal, _ = s.Balance(ctx, player)
	house, _ = s.HouseBalance(ctx)
	assert.Equal(t, int64(90), bal)
	assert.Equal(t, int64(10), house)
}

func TestCollectInsufficientFunds(t *testing.T) {
	s, _ := newTreasury(t, 0)
	ctx := context.Background()

	err := s.Collect(ctx, player, 10)
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)

	house, _ := s.HouseBalance(ctx)
	assert.Zero(t, house)
}

func TestDisburseShortfall(t *testing.T) {
	s, _ := newTreasury(t, 0)
	ctx := context.Background()
	_, err := s.Fund(ctx, 5)
	require.NoError(t, err)

	err = s.Disburse(ctx, player, 10)
	assert.ErrorIs(t, err, model.ErrDisbursementFailed)

	bal, _ := s.Balance(ctx, player)
	house, _ := s.HouseBalance(ctx)
	assert.Zero(t, bal)
	assert.Equal(t, int64(5), house)
}

func TestDepositLimits(t *testing.T) {
	s, _ := newTreasury(t, 100)
	ctx := context.Background()

	_, err := s.Deposit(ctx, player, 0)
	assert.ErrorIs(t, err, model.ErrInvalidAmount)
	_, err = s.Deposit(ctx, player, 101)
	assert.ErrorIs(t, err, model.ErrInvalidAmount)

	bal, err := s.Deposit(ctx, player, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), bal)
}

func TestWithdraw(t *testing.T) {
	s, _ := newTreasury(t, 0)
	ctx := context.Background()
	_, err := s.Fund(ctx, 100)
	require.NoError(t, err)

	got, err := s.Withdraw(ctx, owner, 40)
	require.NoError(t, err)
	assert.Equal(t, int64(40), got)

	_, err = s.Withdraw(ctx, owner, 1000)
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)

	got, err = s.Withdraw(ctx, owner, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(60), got)

	house, _ := s.HouseBalance(ctx)
	ownerBal, _ := s.Balance(ctx, owner)
	assert.Zero(t, house)
	assert.Equal(t, int64(100), ownerBal)

	got, err = s.Withdraw(ctx, owner, 0)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestConcurrentCollectNeverOverdraws(t *testing.T) {
	s, _ := newTreasury(t, 0)
	ctx := context.Background()
	_, err := s.Deposit(ctx, player, 50)
	require.NoError(t, err)

	var (
		wg sync.WaitGroup
		mu sync.Mutex
		ok int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.Collect(ctx, player, 10) == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, ok)
	bal, _ := s.Balance(ctx, player)
	assert.Zero(t, bal)
}

func TestCollectHouseOverflowKeepsFee(t *testing.T) {
	s, _ := newTreasury(t, 0)
	ctx := context.Background()

	_, err := s.Fund(ctx, math.MaxInt64-5)
	require.NoError(t, err)
	_, err = s.Deposit(ctx, player, 100)
	require.NoError(t, err)

	err = s.Collect(ctx, player, 10)
	assert.ErrorIs(t, err, ether.ErrOverflow)

	bal, _ := s.Balance(ctx, player)
	house, _ := s.HouseBalance(ctx)
	assert.Equal(t, int64(100), bal)
	assert.Equal(t, int64(math.MaxInt64-5), house)
}
