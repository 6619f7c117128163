// Package inredis provides a Redis-backed counter shared by all worker processes.
package inredis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/Igbinosa-Christian/scissorapp/internal/limiter"
)

// Check interface implementation explicitly
var (
	_ limiter.Counter = (*Counter)(nil)
)

// Counter struct defines data structure handling and provides support for adding new implementations.
type Counter struct {
	log    *zap.Logger
	client *redis.Client
}

// InitCounter initializes a Counter object from a Redis DSN.
func InitCounter(redisDSN string, logger *zap.Logger) (*Counter, error) {
	opts, err := redis.ParseURL(redisDSN)
	if err != nil {
		return nil, err
	}
	return &Counter{
		log:    logger,
		client: redis.NewClient(opts),
	}, nil
}

// Increment raises the counter under key by one and sets the window expiry on first increment.
func (c *Counter) Increment(ctx context.Context, key string, expiry time.Duration) (int64, error) {
	count, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := c.client.Expire(ctx, key, expiry).Err(); err != nil {
			c.log.Error("Could not set quota window expiry", zap.String("key", key), zap.Error(err))
			return 0, err
		}
	}
	return count, nil
}

// Close closes the underlying Redis connection.
func (c *Counter) Close() error {
	return c.client.Close()
}
