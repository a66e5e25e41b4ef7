package clientstate

import (
	"context"
	"errors"
	"time"

	"voyago/internal/utils"
	"voyago/pkg/cache"

	"github.com/redis/go-redis/v9"
)

// redisKV persists client state per user in redis. Entries never expire;
// the client owns their lifecycle.
type redisKV struct {
	cache  *cache.RedisCache
	prefix string
}

// NewRedisKV returns a KV scoped to one user's client state.
func NewRedisKV(c *cache.RedisCache, userID string) KV {
	return &redisKV{
		cache:  c,
		prefix: utils.CacheKeyClientStatePrefix + userID + ":",
	}
}

func (kv *redisKV) Put(ctx context.Context, key string, value interface{}) error {
	return kv.cache.Set(ctx, kv.prefix+key, value, time.Duration(0))
}

func (kv *redisKV) Fetch(ctx context.Context, key string, dest interface{}) error {
	err := kv.cache.Get(ctx, kv.prefix+key, dest)
	if errors.Is(err, redis.Nil) {
		return ErrNoValue
	}
	return err
}

func (kv *redisKV) Remove(ctx context.Context, key string) error {
	return kv.cache.Delete(ctx, kv.prefix+key)
}
