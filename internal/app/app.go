package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lucky_wheel/internal/config"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const (
	leaderboardRefreshSpec = "@every 30s"
	limiterCleanupSpec     = "@every 10m"
	limiterIdle            = 30 * time.Minute
	shutdownTimeout        = 10 * time.Second
)

type App struct {
	ServiceProvider *ServiceProvider
	logger          *logrus.Logger
}

func NewApp() *App {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return &App{logger: logger}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider(s.logger)
	s.logger.SetLevel(s.ServiceProvider.AppCfg().LogLevel())
}

func (s *App) Run() error {
	err := config.Load(".env")
	if err != nil {
		s.logger.WithError(err).Warn("error loading .env file")
	}
	s.initServiceProvider()
	defer s.ServiceProvider.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := s.ServiceProvider.Router(ctx)

	scheduler, err := s.startJobs(ctx)
	if err != nil {
		return err
	}
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:              s.ServiceProvider.HTTPCfg().Address(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithFields(logrus.Fields{
			"addr":    srv.Addr,
			"storage": s.ServiceProvider.AppCfg().StorageDriver(),
		}).Info("starting server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// startJobs фоновые задачи: обновление кэша лидерборда и чистка лимитеров
func (s *App) startJobs(ctx context.Context) (*cron.Cron, error) {
	c := cron.New(cron.WithLogger(cron.PrintfLogger(s.logger)))

	leaderboardServ := s.ServiceProvider.LeaderboardService(ctx)
	_, err := c.AddFunc(leaderboardRefreshSpec, func() {
		if err := leaderboardServ.Refresh(ctx); err != nil {
			s.logger.WithError(err).Warn("leaderboard refresh")
		}
	})
	if err != nil {
		return nil, err
	}

	limiter := s.ServiceProvider.SpinLimiter()
	_, err = c.AddFunc(limiterCleanupSpec, func() {
		if n := limiter.Cleanup(limiterIdle); n > 0 {
			s.logger.WithField("removed", n).Debug("rate limiters cleaned up")
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}
