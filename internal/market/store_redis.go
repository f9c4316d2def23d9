// Copyright (c) 2026 Stocktells. All rights reserved.

package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// # Range Cache

// RedisHistoryCache implements [HistoryCache] with JSON-encoded series.
//
// A corrupted cache entry is treated as a miss, never as a failure: the
// service simply refetches from the provider.
type RedisHistoryCache struct {
	client *redis.Client
}

// NewHistoryCache creates a new Redis-backed HistoryCache.
func NewHistoryCache(client *redis.Client) *RedisHistoryCache {
	return &RedisHistoryCache{client: client}
}

/*
Get returns the cached series for a key.

Parameters:
  - context: context.Context
  - key: string

Returns:
  - []Bar: Cached series on hit
  - bool: True on a cache hit
  - error: Connectivity failures
*/
func (cache *RedisHistoryCache) Get(context context.Context, key string) ([]Bar, bool, error) {

	payload, err := cache.client.Get(context, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis_market_cache_get_failed: %w", err)
	}

	var bars []Bar
	if err := json.Unmarshal(payload, &bars); err != nil {
		// Unreadable entry: treat as a miss and let the caller refetch.
		return nil, false, nil
	}

	return bars, true, nil
}

/*
Set stores a series under a key with a TTL.

Parameters:
  - context: context.Context
  - key: string
  - bars: []Bar
  - ttl: time.Duration

Returns:
  - error: Persistence failures
*/
func (cache *RedisHistoryCache) Set(context context.Context, key string, bars []Bar, ttl time.Duration) error {

	payload, err := json.Marshal(bars)
	if err != nil {
		return fmt.Errorf("redis_market_cache_encode_failed: %w", err)
	}

	if err := cache.client.Set(context, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis_market_cache_set_failed: %w", err)
	}

	return nil
}
