// file: database/redis.go
package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client

func InitRedis(addr, password string, db int) {
	RDB = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
		PoolSize: 100,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := RDB.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
}

// RedisCache adapts the shared client to the small cache surface the
// services need (challenge listings, analytics responses).
type RedisCache struct {
	Client *redis.Client
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.Client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	r.Client.Set(ctx, key, value, ttl)
}

func (r *RedisCache) Delete(ctx context.Context, pattern string) {
	keys, err := r.Client.Keys(ctx, pattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	r.Client.Del(ctx, keys...)
}
