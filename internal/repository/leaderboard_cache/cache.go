package leaderboard_cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"lucky_wheel/internal/model"
	"lucky_wheel/internal/repository"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "lucky_wheel:leaderboard:"

type cache struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

func NewLeaderboardCache(rdb redis.UniversalClient, ttl time.Duration) repository.LeaderboardCache {
	return &cache{rdb: rdb, ttl: ttl}
}

func key(limit int) string {
	return keyPrefix + strconv.Itoa(limit)
}

// Get достает лидерборд из Redis. false, если ключа нет
func (c *cache) Get(ctx context.Context, limit int) ([]model.Winner, bool, error) {
	val, err := c.rdb.Get(ctx, key(limit)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}

	var winners []model.Winner
	if err = json.Unmarshal([]byte(val), &winners); err != nil {
		return nil, false, err
	}
	return winners, true, nil
}

// Set кладет лидерборд в Redis с TTL
func (c *cache) Set(ctx context.Context, limit int, winners []model.Winner) error {
	b, err := json.Marshal(winners)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key(limit), b, c.ttl).Err()
}

// Invalidate удаляет все закэшированные варианты лидерборда
func (c *cache) Invalidate(ctx context.Context) error {
	var keys []string
	iter := c.rdb.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}
