package app

import (
	"context"
	"net/http"

	authAPI "lucky_wheel/internal/api/auth"
	walletAPI "lucky_wheel/internal/api/wallet"
	wheelAPI "lucky_wheel/internal/api/wheel"
	"lucky_wheel/internal/config"
	"lucky_wheel/internal/config/env"
	"lucky_wheel/internal/ledger"
	"lucky_wheel/internal/metrics"
	"lucky_wheel/internal/middleware"
	"lucky_wheel/internal/notify"
	"lucky_wheel/internal/random"
	"lucky_wheel/internal/repository"
	"lucky_wheel/internal/repository/auth_repo"
	"lucky_wheel/internal/repository/leaderboard_cache"
	"lucky_wheel/internal/repository/ledger_repo"
	"lucky_wheel/internal/repository/memory"
	"lucky_wheel/internal/repository/stats_repo"
	"lucky_wheel/internal/repository/wallet_repo"
	"lucky_wheel/internal/service"
	"lucky_wheel/internal/service/auth"
	"lucky_wheel/internal/service/leaderboard"
	"lucky_wheel/internal/service/treasury"
	"lucky_wheel/internal/service/wheel"
	"lucky_wheel/pkg/resp"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type ServiceProvider struct {
	logger *logrus.Logger

	// Configs
	appCfg    config.AppConfig
	gameCfg   config.GameConfig
	randomCfg config.RandomConfig
	limitsCfg config.LimitsConfig
	jwtCfg    config.JWTConfig
	redisCfg  config.RedisConfig

	// TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Redis, nil если REDIS_ADDR не задан
	redisClient redis.UniversalClient
	redisReady  bool

	// Repositories
	ledgerRepo       repository.LedgerRepository
	walletRepo       repository.WalletRepository
	authRepo         repository.AuthRepository
	statsRepo        repository.StatsRepository
	leaderboardCache repository.LeaderboardCache
	cacheReady       bool

	// Wheel bits
	source   random.Source
	notifier notify.Notifier

	// Services
	treasuryServ    service.TreasuryService
	wheelServ       service.WheelService
	authServ        service.AuthService
	leaderboardServ service.LeaderboardService

	// Handlers
	wheelHand  *wheelAPI.Handler
	walletHand *walletAPI.Handler
	authHand   *authAPI.Handler

	spinLimiter *middleware.RateLimiter

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider(logger *logrus.Logger) *ServiceProvider {
	return &ServiceProvider{logger: logger}
}

func (sp *ServiceProvider) Logger() *logrus.Logger {
	return sp.logger
}

func (sp *ServiceProvider) AppCfg() config.AppConfig {
	if sp.appCfg == nil {
		cfg, err := env.NewAppConfig()
		if err != nil {
			panic("failed to get app config: " + err.Error())
		}
		sp.appCfg = cfg
	}
	return sp.appCfg
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfig()
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) RandomCfg() config.RandomConfig {
	if sp.randomCfg == nil {
		cfg, err := env.NewRandomConfig()
		if err != nil {
			panic("failed to get random config: " + err.Error())
		}
		sp.randomCfg = cfg
	}
	return sp.randomCfg
}

func (sp *ServiceProvider) LimitsCfg() config.LimitsConfig {
	if sp.limitsCfg == nil {
		cfg, err := env.NewLimitsConfig()
		if err != nil {
			panic("failed to get limits config: " + err.Error())
		}
		sp.limitsCfg = cfg
	}
	return sp.limitsCfg
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) RedisCfg() config.RedisConfig {
	if sp.redisCfg == nil {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			panic("failed to get redis config: " + err.Error())
		}
		sp.redisCfg = cfg
	}
	return sp.redisCfg
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) usePostgres() bool {
	return sp.AppCfg().StorageDriver() == config.StoragePostgres
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.NewWithConfig(ctx, sp.PgConfig().PoolConfig())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

// RedisClient nil, когда Redis не настроен
func (sp *ServiceProvider) RedisClient(ctx context.Context) redis.UniversalClient {
	if !sp.redisReady {
		sp.redisReady = true
		cfg := sp.RedisCfg()
		if !cfg.Enabled() {
			return nil
		}

		rdb := redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs:    []string{cfg.Address()},
			Password: cfg.Password(),
			DB:       cfg.DB(),
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			panic("failed to ping redis: " + err.Error())
		}
		sp.redisClient = rdb
	}
	return sp.redisClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		if !sp.usePostgres() {
			sp.txManager = memory.NewTxManager()
			return sp.txManager
		}

		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) LedgerRepository(ctx context.Context) repository.LedgerRepository {
	if sp.ledgerRepo == nil {
		if sp.usePostgres() {
			sp.ledgerRepo = ledger_repo.NewLedgerRepository(sp.DBClient(ctx))
		} else {
			sp.ledgerRepo = ledger.New()
		}
	}
	return sp.ledgerRepo
}

func (sp *ServiceProvider) WalletRepository(ctx context.Context) repository.WalletRepository {
	if sp.walletRepo == nil {
		if sp.usePostgres() {
			sp.walletRepo = wallet_repo.NewWalletRepository(sp.DBClient(ctx))
		} else {
			sp.walletRepo = memory.NewWalletRepository()
		}
	}
	return sp.walletRepo
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		if sp.usePostgres() {
			sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
		} else {
			sp.authRepo = memory.NewAuthRepository()
		}
	}
	return sp.authRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(0)
	}
	return sp.statsRepo
}

// LeaderboardCache nil без Redis
func (sp *ServiceProvider) LeaderboardCache(ctx context.Context) repository.LeaderboardCache {
	if !sp.cacheReady {
		sp.cacheReady = true
		if rdb := sp.RedisClient(ctx); rdb != nil {
			sp.leaderboardCache = leaderboard_cache.NewLeaderboardCache(rdb, sp.RedisCfg().LeaderboardTTL())
		}
	}
	return sp.leaderboardCache
}

func (sp *ServiceProvider) RandomSource() random.Source {
	if sp.source == nil {
		cfg := sp.RandomCfg()
		switch cfg.Source() {
		case config.RandomHMAC:
			src, err := random.NewHMACSource(cfg.ServerSeed())
			if err != nil {
				panic("failed to create hmac source: " + err.Error())
			}
			sp.logger.WithField("commitment", src.Commitment()).Info("provably fair source enabled")
			sp.source = src
		default:
			sp.source = random.NewCryptoSource()
		}
	}
	return sp.source
}

func (sp *ServiceProvider) Notifier(ctx context.Context) notify.Notifier {
	if sp.notifier == nil {
		n := notify.Multi{
			notify.Log{Logger: sp.logger},
			notify.Metrics{},
		}
		if rdb := sp.RedisClient(ctx); rdb != nil {
			n = append(n, notify.NewRedis(rdb, notify.DefaultChannel, sp.logger))
		}
		sp.notifier = n
	}
	return sp.notifier
}

func (sp *ServiceProvider) TreasuryService(ctx context.Context) service.TreasuryService {
	if sp.treasuryServ == nil {
		sp.treasuryServ = treasury.NewTreasuryService(
			sp.WalletRepository(ctx),
			sp.TXManager(ctx),
			sp.LimitsCfg().MaxDeposit(),
			sp.logger,
		)
	}
	return sp.treasuryServ
}

func (sp *ServiceProvider) WheelService(ctx context.Context) service.WheelService {
	if sp.wheelServ == nil {
		sp.wheelServ = wheel.NewWheelService(wheel.Deps{
			Paytable:   sp.GameCfg().Paytable(),
			LedgerRepo: sp.LedgerRepository(ctx),
			StatsRepo:  sp.StatsRepository(),
			Treasury:   sp.TreasuryService(ctx),
			Source:     sp.RandomSource(),
			Notifier:   sp.Notifier(ctx),
			TxManager:  sp.TXManager(ctx),
			Logger:     sp.logger,
		})
	}
	return sp.wheelServ
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(
			sp.TXManager(ctx),
			sp.AuthRepo(ctx),
			sp.JWTCfg(),
			sp.AppCfg().OwnerAddress(),
			sp.logger,
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) LeaderboardService(ctx context.Context) service.LeaderboardService {
	if sp.leaderboardServ == nil {
		sp.leaderboardServ = leaderboard.NewLeaderboardService(
			sp.LedgerRepository(ctx),
			sp.LeaderboardCache(ctx),
			sp.logger,
		)
	}
	return sp.leaderboardServ
}

func (sp *ServiceProvider) SpinLimiter() *middleware.RateLimiter {
	if sp.spinLimiter == nil {
		cfg := sp.LimitsCfg()
		sp.spinLimiter = middleware.NewRateLimiter(cfg.SpinRatePerSec(), cfg.SpinRateBurst(), sp.logger)
	}
	return sp.spinLimiter
}

func (sp *ServiceProvider) WheelHandler(ctx context.Context) *wheelAPI.Handler {
	if sp.wheelHand == nil {
		sp.wheelHand = wheelAPI.NewHandler(wheelAPI.HandlerDeps{
			Serv:        sp.WheelService(ctx),
			Leaderboard: sp.LeaderboardService(ctx),
		})
	}
	return sp.wheelHand
}

func (sp *ServiceProvider) WalletHandler(ctx context.Context) *walletAPI.Handler {
	if sp.walletHand == nil {
		sp.walletHand = walletAPI.NewHandler(walletAPI.HandlerDeps{Serv: sp.TreasuryService(ctx)})
	}
	return sp.walletHand
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.AuthService(ctx)})
	}
	return sp.authHand
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: true,
			MaxAge:           60 * 15,
		}))
		r.Use(middleware.RequestLogger(sp.logger))
		r.Use(metrics.InstrumentHandler)

		r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			resp.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Handle("/metrics", metrics.Handler())

		requireAuth := middleware.Auth(sp.JWTCfg().AccessTokenSecretKey())

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/nonce", authHandler.Nonce)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Wheel endpoints
		wheelHandler := sp.WheelHandler(ctx)
		r.Route("/wheel", func(rr chi.Router) {
			rr.Get("/info", wheelHandler.Info)
			rr.Get("/stats", wheelHandler.Stats)
			rr.Get("/leaderboard", wheelHandler.Leaderboard)
			rr.Get("/players/{address}/spins", wheelHandler.PlayerSpins)
			rr.Get("/players/{address}/winnings", wheelHandler.PlayerWinnings)

			rr.Group(func(pr chi.Router) {
				pr.Use(requireAuth)
				pr.With(sp.SpinLimiter().Handler("spin")).Post("/spin", wheelHandler.Spin)
				pr.Post("/spins/{id}/claim", wheelHandler.Claim)
			})
		})

		// Wallet endpoints
		walletHandler := sp.WalletHandler(ctx)
		r.Route("/wallet", func(rr chi.Router) {
			rr.Use(requireAuth)
			rr.Get("/balance", walletHandler.Balance)
			rr.Post("/deposit", walletHandler.Deposit)
		})

		// House endpoints
		r.Route("/house", func(rr chi.Router) {
			rr.Get("/balance", walletHandler.HouseBalance)

			rr.Group(func(owner chi.Router) {
				owner.Use(requireAuth, middleware.OwnerOnly)
				owner.Post("/fund", walletHandler.Fund)
				owner.Post("/withdraw", walletHandler.Withdraw)
			})
		})

		sp.router = r
	}

	return sp.router
}

// Close освобождает соединения с внешними хранилищами
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
	if sp.redisClient != nil {
		if err := sp.redisClient.Close(); err != nil {
			sp.logger.WithError(err).Warn("close redis")
		}
	}
}
