// Package cache
package cache

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type Adapter string

const (
	RedisAdapter  Adapter = "redis"
	MemoryAdapter Adapter = "memory"
)

const DefaultNamespace = "#volumevault#"

type Config struct {
	Adapter  Adapter
	URL      string
	DB       int
	Password string

	IsFlush bool

	// Namespace prefixes every key the store writes.
	Namespace string

	Logger *zap.Logger
}

// Store is the key/value storage the price cache persists its entry to.
// Get reports ok=false for a missing key.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error

	Ping(ctx context.Context) error
	Close() error
}

func New(cfg Config) (Store, error) {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Namespace == "" {
		cfg.Namespace = DefaultNamespace
	}
	cfg.Logger.Debug("create cache client with config",
		zap.String("adapter", string(cfg.Adapter)), zap.String("url", cfg.URL), zap.Int("db", cfg.DB))
	switch cfg.Adapter {
	case RedisAdapter:
		return newRedis(cfg)
	case MemoryAdapter:
		return NewMemory(), nil
	}
	return nil, errors.New("invalid cache config")
}

func newRedis(cfg Config) (Store, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.URL,
		DB:       cfg.DB,
		Password: cfg.Password,
	})

	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}
	if cfg.IsFlush {
		msg, err := redisClient.FlushDB(context.Background()).Result()
		if err != nil {
			return nil, err
		}
		if msg != "OK" {
			return nil, errors.New("cannot flush cache db")
		}
	}

	return NewRedis(redisClient, cfg.Namespace, cfg.Logger), nil
}
