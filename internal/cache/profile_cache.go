package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"portfolio-api/internal/model"
)

// ProfileCache keeps profile projections in redis. User records are immutable
// once created, so a cached profile can never go stale relative to this
// service's own writes; the TTL only bounds how long an out-of-band deletion
// stays visible.
type ProfileCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewProfileCache(client *redisv9.Client, ttl time.Duration) *ProfileCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ProfileCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *ProfileCache) GetProfile(ctx context.Context, userID uint) (model.Profile, bool, error) {
	key := c.profileKey(userID)
	raw, err := c.client.Get(ctx, key).Result()
	if err == redisv9.Nil {
		return model.Profile{}, false, nil
	}
	if err != nil {
		return model.Profile{}, false, fmt.Errorf("redis get profile failed: %w", err)
	}

	var profile model.Profile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return model.Profile{}, false, fmt.Errorf("unmarshal cached profile failed: %w", err)
	}
	return profile, true, nil
}

func (c *ProfileCache) SetProfile(ctx context.Context, userID uint, profile model.Profile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile cache failed: %w", err)
	}
	if err := c.client.Set(ctx, c.profileKey(userID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set profile failed: %w", err)
	}
	return nil
}

func (c *ProfileCache) profileKey(userID uint) string {
	return fmt.Sprintf("user:profile:%d", userID)
}
