package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/coworkia/coworking-api/internal/core/ports"
)

const profileTTL = 5 * time.Minute

// ProfileCache caches user projections in Redis.
// Key format: user:<id>
type ProfileCache struct {
	client *redis.Client
}

// NewProfileCache creates a ProfileCache wrapping the given Redis client.
func NewProfileCache(client *redis.Client) *ProfileCache {
	return &ProfileCache{client: client}
}

// Get returns the cached projection, or (nil, nil) on a miss.
func (c *ProfileCache) Get(ctx context.Context, id string) (*ports.UserProfile, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("profile cache get: %w", err)
	}

	var p ports.UserProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("profile cache decode: %w", err)
	}
	return &p, nil
}

// Set stores the projection (expires after profileTTL).
func (c *ProfileCache) Set(ctx context.Context, p *ports.UserProfile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("profile cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(p.ID), raw, profileTTL).Err()
}

// Invalidate drops the cached projection after a mutation.
func (c *ProfileCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *ProfileCache) key(id string) string {
	return "user:" + id
}
