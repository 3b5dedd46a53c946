package cache

import (
	"context"
	"time"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// Redis is a Cache backed by a shared Redis instance, for deployments where
// several replicas should reuse each other's validation results. Values are
// stored as JSON; TTL maps onto the key's Redis expiry.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis wraps client. prefix namespaces every key so several caches can
// share one database.
func NewRedis(client *redis.Client, prefix string) *Redis {
	if prefix == "" {
		prefix = "veriform:"
	}
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) Get(ctx context.Context, key string) (any, bool) {
	raw, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		// Treat transport errors like misses: the validator falls back to
		// the underlying check.
		return nil, false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false
	}
	return v, true
}

func (r *Redis) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = r.client.Set(ctx, r.prefix+key, raw, ttl).Err()
}

func (r *Redis) Clear(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}
