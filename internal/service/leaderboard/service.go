package leaderboard

import (
	"context"

	"lucky_wheel/internal/model"
	"lucky_wheel/internal/repository"
	"lucky_wheel/internal/service"

	"github.com/sirupsen/logrus"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

type serv struct {
	ledgerRepo repository.LedgerRepository
	cache      repository.LeaderboardCache
	logger     logrus.FieldLogger
}

// NewLeaderboardService cache может быть nil, тогда чтение идет прямо из реестра
func NewLeaderboardService(
	ledgerRepo repository.LedgerRepository,
	cache repository.LeaderboardCache,
	logger logrus.FieldLogger,
) service.LeaderboardService {
	return &serv{
		ledgerRepo: ledgerRepo,
		cache:      cache,
		logger:     logger,
	}
}

// Top - лучшие игроки. Ошибки кэша не ломают ответ
func (s *serv) Top(ctx context.Context, limit int) ([]model.Winner, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	limit = min(limit, MaxLimit)

	if s.cache != nil {
		winners, ok, err := s.cache.Get(ctx, limit)
		if err != nil {
			s.logger.WithError(err).Warn("leaderboard cache read")
		} else if ok {
			return winners, nil
		}
	}

	winners, err := s.ledgerRepo.TopWinners(ctx, limit)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err = s.cache.Set(ctx, limit, winners); err != nil {
			s.logger.WithError(err).Warn("leaderboard cache write")
		}
	}
	return winners, nil
}

// Refresh пересобирает кэш для лимита по умолчанию, вызывается по расписанию
func (s *serv) Refresh(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		return err
	}

	winners, err := s.ledgerRepo.TopWinners(ctx, DefaultLimit)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, DefaultLimit, winners)
}
