package mongodb

import (
	"context"
	"time"
)

// CacheService is the subset of the cache the repositories need.
// Satisfied by *cache.RedisCache; nil disables caching.
type CacheService interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
}
