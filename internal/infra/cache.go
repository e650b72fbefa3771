package infra

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	mem "simsem/pkg/memcache"
)

// RedisCache adapts a redis client to the byte-cache shape the services
// expect.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Redis get error for key %s: %v", key, err)
		}
		return nil, false
	}
	return value, true
}

func (r *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Printf("Redis set error for key %s: %v", key, err)
	}
}

// MemoryCache adapts the in-process TTL cache to the same shape.
type MemoryCache struct {
	cache *mem.TTLCache
}

func NewMemoryCache(cache *mem.TTLCache) *MemoryCache {
	return &MemoryCache{cache: cache}
}

func (m *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	return m.cache.Get(key)
}

func (m *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	m.cache.Set(key, value, ttl)
}
