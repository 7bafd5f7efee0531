// Package cache expone el cliente Redis usado por el rate limiter de login.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client contrato mínimo que necesita el rate limiter.
type Client interface {
	// IncrWithTTL incrementa la clave y, si es el primer uso, fija su TTL.
	// Devuelve el contador tras incrementar.
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
	Close() error
}

// RedisCache implementación de Client sobre go-redis.
type RedisCache struct {
	rdb *redis.Client
}

// NewRedisClient conecta a Redis con la URL dada (redis://...).
func NewRedisClient(redisURL string) (*RedisCache, error) {
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL vacío")
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisCache{rdb: rdb}, nil
}

// IncrWithTTL incrementa el contador de la clave; en el primer incremento
// de la ventana fija el TTL.
func (c *RedisCache) IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	count, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		_ = c.rdb.Expire(ctx, key, ttl).Err()
	}
	return count, nil
}

// Close cierra la conexión.
func (c *RedisCache) Close() error {
	return c.rdb.Close()
}
