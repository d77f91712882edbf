package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache — реализация кэша поверх Redis для многоэкземплярного запуска.
type RedisCache struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisCache создает кэш на базе go-redis.
func NewRedisCache(addr string, logger *slog.Logger) *RedisCache {
	if logger == nil {
		logger = slog.Default()
	}

	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		logger: logger,
	}
}

// Get возвращает значение по ключу; недоступность Redis считается промахом.
func (c *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("redis get failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return "", false
	}

	return value, true
}

// Set записывает значение с TTL; ошибка записи только логируется.
func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.logger.Warn("redis set failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}
