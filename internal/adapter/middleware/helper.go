package middleware

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

func buildKey(uri string) string { return "cache:get:" + uri }

// ---- Redis helpers ----
func loadEntry(ctx context.Context, rdb *redis.Client, key string) (cacheEntry, error) {
	var e cacheEntry
	v, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return e, err
	}
	if err := json.Unmarshal(v, &e); err != nil {
		return e, err
	}
	return e, nil
}

func saveEntry(ctx context.Context, rdb *redis.Client, key string, entry cacheEntry, ttl time.Duration) error {
	payload, _ := json.Marshal(entry)
	return rdb.Set(ctx, key, payload, ttl).Err()
}
