package wallet_repo

import (
	"context"
	"os"
	"sync"
	"testing"

	"lucky_wheel/internal/db"
	"lucky_wheel/internal/model"
	"lucky_wheel/internal/service"
	"lucky_wheel/internal/service/treasury"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	alice = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	bob   = "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"
)

// Нужна отдельная БД: TEST_PG_DSN=postgres://...
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_PG_DSN")
	if dsn == "" {
		t.Skip("TEST_PG_DSN not set")
	}
	require.NoError(t, db.Migrate(dsn, false))

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, "TRUNCATE wallets")
	require.NoError(t, err)
	return pool
}

func newTreasury(t *testing.T, pool *pgxpool.Pool) service.TreasuryService {
	t.Helper()
	logger, _ := test.NewNullLogger()
	return treasury.NewTreasuryService(
		NewWalletRepository(pool),
		manager.Must(trmpgx.NewDefaultFactory(pool)),
		0,
		logger,
	)
}

func TestLockAccountsCreatesRows(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	r := NewWalletRepository(pool)
	txManager := manager.Must(trmpgx.NewDefaultFactory(pool))

	err := txManager.Do(ctx, func(ctx context.Context) error {
		require.NoError(t, r.LockAccounts(ctx, model.HouseAccount, alice, alice))
		b, err := r.GetBalance(ctx, alice)
		require.NoError(t, err)
		assert.Zero(t, b)
		return r.UpdateBalance(ctx, alice, 7)
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, pool.QueryRow(ctx, "SELECT count(*) FROM wallets").Scan(&count))
	assert.Equal(t, 2, count)

	b, err := r.GetBalance(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(7), b)

	assert.ErrorIs(t, r.UpdateBalance(ctx, alice, -1), model.ErrInsufficientFunds)
}

func TestConcurrentFirstDeposits(t *testing.T) {
	pool := newTestPool(t)
	s := newTreasury(t, pool)
	ctx := context.Background()

	const n = 10
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Deposit(ctx, bob, 1)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	bal, err := s.Balance(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, int64(n), bal)
}

func TestConcurrentCollectAndDisburse(t *testing.T) {
	pool := newTestPool(t)
	s := newTreasury(t, pool)
	ctx := context.Background()

	_, err := s.Deposit(ctx, alice, 1000)
	require.NoError(t, err)
	_, err = s.Fund(ctx, 1000)
	require.NoError(t, err)

	const n = 40
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(collect bool) {
			defer wg.Done()
			if collect {
				errs <- s.Collect(ctx, alice, 3)
				return
			}
			errs <- s.Disburse(ctx, alice, 3)
		}(i%2 == 0)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	bal, err := s.Balance(ctx, alice)
	require.NoError(t, err)
	house, err := s.HouseBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), bal)
	assert.Equal(t, int64(1000), house)
}
