// Package redis holds the Redis client constructor and Redis-backed stores.
package redis

import (
	"context"
	"fmt"

	goredis "github.com/go-redis/redis/v8"

	"github.com/heartmarshall/learning-log/internal/config"
)

// NewClient creates a Redis client from SessionConfig and pings it so that a
// bad address fails at startup.
func NewClient(ctx context.Context, cfg config.SessionConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.RedisAddr, err)
	}

	return client, nil
}
