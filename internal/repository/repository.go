package repository

import (
	"context"
	"time"

	"lucky_wheel/internal/model"
)

// LedgerRepository - глобальное состояние колеса: счетчик, спины, записи игроков.
// Мутации выполняются внутри транзакции trm
type LedgerRepository interface {
	// NextSpinID id, который получит следующий спин. Внутри транзакции блокирует счетчик
	NextSpinID(ctx context.Context) (int64, error)
	RecordSpin(ctx context.Context, player string, tier model.PrizeTier, payout int64, at time.Time) (*model.Spin, error)
	// GetSpin внутри транзакции блокирует строку спина
	GetSpin(ctx context.Context, id int64) (*model.Spin, error)
	MarkClaimed(ctx context.Context, id int64, at time.Time) error

	PlayerSpins(ctx context.Context, player string, page model.Page) ([]model.Spin, int, error)
	TotalWinnings(ctx context.Context, player string) (int64, error)
	SpinCount(ctx context.Context) (int64, error)
	TopWinners(ctx context.Context, limit int) ([]model.Winner, error)
}

// WalletRepository балансы игроков и казны (model.HouseAccount) в gwei
type WalletRepository interface {
	// LockAccounts создает недостающие счета и блокирует их до конца транзакции
	// в порядке возрастания адреса
	LockAccounts(ctx context.Context, accounts ...string) error
	GetBalance(ctx context.Context, account string) (int64, error)
	UpdateBalance(ctx context.Context, account string, balance int64) error
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error

	SaveNonce(ctx context.Context, nonce *model.LoginNonce) error
	// TakeNonce возвращает и удаляет nonce, повторный вход с той же подписью невозможен
	TakeNonce(ctx context.Context, address string) (*model.LoginNonce, error)
}

// StatsRepository статистика казны в памяти процесса
type StatsRepository interface {
	UpdateSpin(fee int64, tier model.PrizeTier, payout int64)
	UpdateClaim(amount int64)
	HouseStats() model.HouseStats
}

// LeaderboardCache кэш лидерборда (Redis)
type LeaderboardCache interface {
	Get(ctx context.Context, limit int) ([]model.Winner, bool, error)
	Set(ctx context.Context, limit int, winners []model.Winner) error
	Invalidate(ctx context.Context) error
}
