package redisclient

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"biblioteca-service/pkg/config"
)

// Client wraps the go-redis client so callers do not depend on the
// driver directly.
type Client struct {
	raw *redis.Client
}

// New connects to Redis and verifies the connection with a ping.
func New(cfg config.RedisConfig) (*Client, error) {
	raw := redis.NewClient(&redis.Options{
		Addr:         cfg.GetRedisAddr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := raw.Ping(ctx).Err(); err != nil {
		_ = raw.Close()
		return nil, err
	}
	return &Client{raw: raw}, nil
}

// Raw exposes the underlying driver client for packages that need the
// concrete type (Pub/Sub).
func (c *Client) Raw() *redis.Client {
	return c.raw
}

// Close releases the connection pool.
func (c *Client) Close() error {
	if c == nil || c.raw == nil {
		return nil
	}
	return c.raw.Close()
}
