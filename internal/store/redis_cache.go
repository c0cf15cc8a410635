package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	pkgredis "github.com/mx-space/portfolio/internal/pkg/redis"
)

// RedisCache is a VolatileCache shared between instances.
type RedisCache struct {
	rc *pkgredis.Client
}

func NewRedisCache(rc *pkgredis.Client) *RedisCache { return &RedisCache{rc: rc} }

func (r *RedisCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	val, err := r.rc.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if val == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, fmt.Errorf("redis cache: decode %q: %w", key, err)
	}
	return true, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("redis cache: encode %q: %w", key, err)
	}
	if ttl < 0 {
		ttl = 0
	}
	return r.rc.Set(ctx, key, string(b), ttl)
}

func (r *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.rc.Del(ctx, keys...)
}

func (r *RedisCache) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	return r.rc.IncrWindow(ctx, key, window)
}
