package env

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"lucky_wheel/internal/config"
)

const (
	redisAddrEnvName = "REDIS_ADDR"
	redisPassEnvName = "REDIS_PASS"
	redisDBEnvName   = "REDIS_DB"
	redisTTLEnvName  = "LEADERBOARD_CACHE_TTL"

	defaultLeaderboardTTL = time.Minute
)

type redisConfig struct {
	address  string
	password string
	db       int
	ttl      time.Duration
}

// NewRedisConfig пустой REDIS_ADDR отключает кэш и публикацию событий
func NewRedisConfig() (config.RedisConfig, error) {
	cfg := &redisConfig{
		address:  os.Getenv(redisAddrEnvName),
		password: os.Getenv(redisPassEnvName),
		ttl:      defaultLeaderboardTTL,
	}

	if raw := os.Getenv(redisDBEnvName); raw != "" {
		db, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid redis db: %w", err)
		}
		cfg.db = db
	}

	if raw := os.Getenv(redisTTLEnvName); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid leaderboard cache ttl: %w", err)
		}
		cfg.ttl = ttl
	}

	return cfg, nil
}

func (c *redisConfig) Enabled() bool                 { return c.address != "" }
func (c *redisConfig) Address() string               { return c.address }
func (c *redisConfig) Password() string              { return c.password }
func (c *redisConfig) DB() int                       { return c.db }
func (c *redisConfig) LeaderboardTTL() time.Duration { return c.ttl }
