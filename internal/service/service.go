package service

import (
	"context"

	"lucky_wheel/internal/model"
)

// WheelService - контроллер игровой сессии
type WheelService interface {
	Spin(ctx context.Context, req model.SpinRequest) (*model.Spin, error)
	Claim(ctx context.Context, req model.ClaimRequest) (*model.ClaimResult, error)

	PlayerSpins(ctx context.Context, player string, page model.Page) (*model.SpinPage, error)
	PlayerTotalWinnings(ctx context.Context, player string) (int64, error)
	Info(ctx context.Context) (*model.WheelInfo, error)
	Stats(ctx context.Context) model.HouseStats
}

// TreasuryService - держатель средств ("цепочка"): кошельки игроков и казна
type TreasuryService interface {
	// Collect переводит взнос игрока в казну
	Collect(ctx context.Context, player string, amount int64) error
	// Disburse выплачивает приз из казны, нехватка средств - ErrDisbursementFailed
	Disburse(ctx context.Context, player string, amount int64) error

	Deposit(ctx context.Context, player string, amount int64) (int64, error)
	Balance(ctx context.Context, player string) (int64, error)

	HouseBalance(ctx context.Context) (int64, error)
	Fund(ctx context.Context, amount int64) (int64, error)
	// Withdraw amount == 0 выводит все
	Withdraw(ctx context.Context, to string, amount int64) (int64, error)
}

type AuthService interface {
	Nonce(ctx context.Context, address string) (*model.LoginNonce, error)
	Login(ctx context.Context, address, signature string) (*model.AuthData, error)
	Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}

type LeaderboardService interface {
	Top(ctx context.Context, limit int) ([]model.Winner, error)
	Refresh(ctx context.Context) error
}
