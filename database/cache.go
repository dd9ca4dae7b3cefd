package database

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"api/config"
	"api/metrics"

	"github.com/redis/go-redis/v9"
)

var Cache *redis.Client

const cacheTTL = 5 * time.Minute

// InitCache connects to Redis when a host is configured. The cache is
// optional; without it every lookup is a miss.
func InitCache() {
	if config.RedisHost == "" {
		log.Println("Redis not configured, cache disabled")
		return
	}

	Cache = redis.NewClient(&redis.Options{
		Addr:     config.RedisHost + ":" + config.RedisPort,
		Password: config.RedisPassword,
	})

	if err := Cache.Ping(context.Background()).Err(); err != nil {
		log.Println("Redis unreachable, cache disabled: ", err)
		Cache = nil
	}
}

// GetFromCache fetches a cached JSON value into dest. The boolean reports
// whether the key was present.
func GetFromCache(ctx context.Context, key string, dest interface{}) (bool, error) {
	if Cache == nil {
		return false, nil
	}

	data, err := Cache.Get(ctx, key).Bytes()
	if err == redis.Nil {
		metrics.CacheMisses.Inc()
		return false, nil
	}
	if err != nil {
		metrics.CacheMisses.Inc()
		return false, err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		metrics.CacheMisses.Inc()
		return false, err
	}

	metrics.CacheHits.Inc()
	return true, nil
}

// SetToCache stores a JSON-encoded value under the key
func SetToCache(ctx context.Context, key string, value interface{}) error {
	if Cache == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return Cache.Set(ctx, key, data, cacheTTL).Err()
}

// InvalidateCache removes the given keys
func InvalidateCache(ctx context.Context, keys ...string) {
	if Cache == nil {
		return
	}

	if err := Cache.Del(ctx, keys...).Err(); err != nil {
		log.Println("failed to invalidate cache: ", err)
	}
}
