package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	"jobstreet_backend/internal/config"
	"jobstreet_backend/internal/logger"

	"github.com/redis/go-redis/v9"
)

// Cache wraps a redis client. When redis is unreachable the wrapper
// stays nil-safe and every call becomes a no-op, so the application
// keeps serving from the database.
type Cache struct {
	client *redis.Client
	ttl    time.Duration

	warnedUnavailable atomic.Bool
}

// New connects to redis from config. Returns a bypassing cache when
// no address is configured or the ping fails.
func New(cfg *config.Config) *Cache {
	ttl := time.Duration(cfg.Redis.TTL) * time.Second

	if cfg.Redis.Addr == "" {
		return &Cache{client: nil, ttl: ttl}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, bypassing cache", "error", err.Error())
		_ = client.Close()
		return &Cache{client: nil, ttl: ttl}
	}

	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) isUnavailable() bool {
	return c == nil || c.client == nil
}

func (c *Cache) warnUnavailableOnce(err error) {
	if c == nil {
		return
	}
	if c.warnedUnavailable.CompareAndSwap(false, true) {
		logger.Warn("redis unavailable, bypassing cache", "error", err.Error())
	}
}

// GetJSON reads key into out. Returns false on miss or when bypassing.
func (c *Cache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if c.isUnavailable() {
		return false, nil
	}
	b, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		c.warnUnavailableOnce(err)
		return false, err
	}
	if len(b) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores value under key with the configured TTL.
func (c *Cache) SetJSON(ctx context.Context, key string, value any) error {
	if c.isUnavailable() {
		return nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, key, b, c.ttl).Err(); err != nil {
		c.warnUnavailableOnce(err)
		return err
	}
	return nil
}

// Delete removes a single key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if c.isUnavailable() {
		return nil
	}
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.warnUnavailableOnce(err)
		return err
	}
	return nil
}

// DeleteByPattern scans and removes all keys matching pattern.
func (c *Cache) DeleteByPattern(ctx context.Context, pattern string) error {
	if c.isUnavailable() || pattern == "" {
		return nil
	}
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			logger.Warn("redis delete failed", "key", iter.Val(), "error", err.Error())
		}
	}
	return iter.Err()
}
