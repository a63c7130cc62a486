package env

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"lucky_wheel/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgDSNEnvName      = "PG_DSN"
	pgMaxConnsEnvName = "PG_MAX_CONNS"
)

type pgConfig struct {
	dsn  string
	pool *pgxpool.Config
}

// NewPGConfig разбирает DSN при загрузке, PG_MAX_CONNS необязателен
func NewPGConfig() (config.PGConfig, error) {
	dsn := os.Getenv(pgDSNEnvName)
	if len(dsn) == 0 {
		return nil, errors.New("pg dsn not found")
	}

	pool, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", pgDSNEnvName, err)
	}

	if raw := os.Getenv(pgMaxConnsEnvName); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("invalid %s: %q", pgMaxConnsEnvName, raw)
		}
		pool.MaxConns = int32(v)
	}

	return &pgConfig{
		dsn:  dsn,
		pool: pool,
	}, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.dsn
}

func (cfg *pgConfig) PoolConfig() *pgxpool.Config {
	return cfg.pool.Copy()
}
