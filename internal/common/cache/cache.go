package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"food-delivery/internal/common/config"
)

// Cache is a small read-through cache used for menu snapshots. A miss is
// reported as an empty value, not an error.
type Cache interface {
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Key(operation, key string) string
}

type redisCache struct {
	client      *redis.Client
	serviceName string
}

func NewRedis(cfg config.Redis, serviceName string) Cache {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	return &redisCache{
		client:      redis.NewClient(&redis.Options{Addr: addr}),
		serviceName: serviceName,
	}
}

func (r *redisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *redisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *redisCache) Key(operation, key string) string {
	return fmt.Sprintf("%s:%s:%s", r.serviceName, operation, key)
}

// Noop disables caching; used when no Redis host is configured and in tests.
type Noop struct{}

func (Noop) Set(context.Context, string, string, time.Duration) error { return nil }
func (Noop) Get(context.Context, string) (string, error)              { return "", nil }
func (Noop) Key(operation, key string) string                         { return operation + ":" + key }
