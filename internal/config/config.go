package config

import (
	"time"

	servModel "lucky_wheel/internal/service/wheel/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	RandomCrypto = "crypto"
	RandomHMAC   = "hmac"
)

type AppConfig interface {
	StorageDriver() string
	OwnerAddress() string
	LogLevel() logrus.Level
}

type GameConfig interface {
	Paytable() servModel.Paytable
}

type RandomConfig interface {
	Source() string
	ServerSeed() string
}

type LimitsConfig interface {
	SpinRatePerSec() float64
	SpinRateBurst() int
	MaxDeposit() int64
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
	PoolConfig() *pgxpool.Config
}

type RedisConfig interface {
	Enabled() bool
	Address() string
	Password() string
	DB() int
	LeaderboardTTL() time.Duration
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}
