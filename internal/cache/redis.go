// Package cache provides a Redis read-through cache for product lookups.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/maisonlabs/boutique/internal/domain"
)

// ErrMiss is returned when the requested product is not cached.
var ErrMiss = errors.New("cache: miss")

const defaultTTL = 15 * time.Minute

// ProductCache stores product snapshots in Redis with a bounded TTL.
// Entries may go stale between writes; callers that need current stock
// must read from the repository instead.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProductCache creates a product cache with the default TTL.
func NewProductCache(client *redis.Client) *ProductCache {
	return &ProductCache{client: client, ttl: defaultTTL}
}

func (c *ProductCache) Get(ctx context.Context, id string) (*domain.ProductProps, error) {
	data, err := c.client.Get(ctx, cacheKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var props domain.ProductProps
	if err := json.Unmarshal(data, &props); err != nil {
		return nil, fmt.Errorf("unmarshal product failed: %w", err)
	}
	return &props, nil
}

func (c *ProductCache) Set(ctx context.Context, props domain.ProductProps) error {
	data, err := json.Marshal(props)
	if err != nil {
		return fmt.Errorf("marshal product failed: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey(props.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *ProductCache) Delete(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, cacheKey(id)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func cacheKey(id string) string {
	return fmt.Sprintf("product:%s", id)
}
