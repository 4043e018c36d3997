// Package cache wraps a Redis client behind JSON get/set helpers. The cache
// is best-effort: when Redis is unreachable every operation degrades to a
// miss or a no-op and the caller falls through to the database.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/launchbase/launchbase/config"
	"github.com/launchbase/launchbase/pkg/metrics"
)

var rdb *redis.Client

// Connect initialises the Redis client and verifies the connection with a
// ping. Returns an error so the caller can react (log a warning and keep
// running without a cache, or abort).
func Connect(ctx context.Context) error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
		DB:       0,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("cache: redis ping: %w", err)
	}

	rdb = client
	return nil
}

// Get retrieves a cached value by key and unmarshals into dest.
// Returns true on a cache hit, false on miss or error.
func Get(ctx context.Context, key string, dest interface{}) bool {
	if rdb == nil {
		return false
	}

	val, err := rdb.Get(ctx, key).Result()
	if err != nil {
		metrics.RecordCache("redis", false)
		return false
	}

	hit := json.Unmarshal([]byte(val), dest) == nil
	metrics.RecordCache("redis", hit)
	return hit
}

// Set stores value under key for the given TTL.
func Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if rdb == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return rdb.Set(ctx, key, data, ttl).Err()
}

// Del removes one or more keys.
func Del(ctx context.Context, keys ...string) error {
	if rdb == nil {
		return nil
	}
	return rdb.Del(ctx, keys...).Err()
}

// DelPattern removes every key matching a glob pattern, scanning rather than
// using KEYS so a large keyspace never blocks the server.
func DelPattern(ctx context.Context, pattern string) error {
	if rdb == nil {
		return nil
	}

	iter := rdb.Scan(ctx, 0, pattern, 100).Iterator()
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
	return rdb.Del(ctx, keys...).Err()
}

// Close releases the client. Safe to call when Connect never succeeded.
func Close() error {
	if rdb == nil {
		return nil
	}
	return rdb.Close()
}
