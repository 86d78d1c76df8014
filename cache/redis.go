// Package cache
package cache

import (
	"context"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type Redis struct {
	namespace string
	client    *redis.Client

	logger *zap.Logger
}

func NewRedis(client *redis.Client, namespace string, logger *zap.Logger) *Redis {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Redis{
		namespace: namespace,
		client:    client,
		logger:    logger.With(zap.String("cache", "redis")),
	}
}

func (c *Redis) key(key string) string {
	return c.namespace + key
}

func (c *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	result, err := c.client.Get(ctx, c.key(key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return result, true, nil
}

// Set stores value without expiration; entries are only ever overwritten.
// Failures are returned, not logged: the caller decides how loud they are.
func (c *Redis) Set(ctx context.Context, key, value string) error {
	return c.client.Set(ctx, c.key(key), value, 0).Err()
}

func (c *Redis) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *Redis) Close() error {
	c.logger.Info("close redis connection")
	return c.client.Close()
}
