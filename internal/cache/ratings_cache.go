package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"cortado/internal/dto"
)

const rowsKey = "cortado:ratings:rows"

// RatingsCache caches the dashboard's joined projection in Redis so the
// dashboard doesn't hit the store on every refresh. A nil receiver or nil
// client is a valid no-op cache: every read misses, writes do nothing.
type RatingsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRatingsCache connects to Redis and verifies the connection. An empty
// addr returns a disabled no-op cache.
func NewRatingsCache(addr, password string, ttl time.Duration) (*RatingsCache, error) {
	if addr == "" {
		return &RatingsCache{ttl: ttl}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RatingsCache{client: rdb, ttl: ttl}, nil
}

// GetRows returns the cached projection and whether it was present. Cache
// trouble is reported as a miss, never as a failure.
func (c *RatingsCache) GetRows(ctx context.Context) ([]dto.RatingRow, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, rowsKey).Bytes()
	if err != nil {
		return nil, false
	}

	var rows []dto.RatingRow
	if err := json.Unmarshal(payload, &rows); err != nil {
		return nil, false
	}
	return rows, true
}

// SetRows stores the projection with the configured TTL.
func (c *RatingsCache) SetRows(ctx context.Context, rows []dto.RatingRow) {
	if c == nil || c.client == nil {
		return
	}

	payload, err := json.Marshal(rows)
	if err != nil {
		return
	}
	c.client.Set(ctx, rowsKey, payload, c.ttl)
}

// Invalidate drops the cached projection after a successful submission.
func (c *RatingsCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, rowsKey)
}

// Close releases the Redis connection.
func (c *RatingsCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
