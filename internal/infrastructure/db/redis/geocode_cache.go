package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/travel-journal/journal-api/internal/core/domain"
)

const defaultGeocodeTTL = 24 * time.Hour

// GeocodeCache stores resolved coordinates as JSON.
// Key format: geocode:<normalised address>
type GeocodeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGeocodeCache wraps client; entries expire after ttl (24h when ttl <= 0).
func NewGeocodeCache(client *redis.Client, ttl time.Duration) *GeocodeCache {
	if ttl <= 0 {
		ttl = defaultGeocodeTTL
	}
	return &GeocodeCache{client: client, ttl: ttl}
}

// Get reports a miss with ok=false and a nil error.
func (c *GeocodeCache) Get(ctx context.Context, address string) (domain.Coordinates, bool, error) {
	raw, err := c.client.Get(ctx, c.key(address)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("geocode cache get: %w", err)
	}

	var coords domain.Coordinates
	if err := json.Unmarshal(raw, &coords); err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("geocode cache decode: %w", err)
	}
	return coords, true, nil
}

func (c *GeocodeCache) Set(ctx context.Context, address string, coords domain.Coordinates) error {
	b, err := json.Marshal(coords)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(address), b, c.ttl).Err()
}

func (c *GeocodeCache) key(address string) string {
	return "geocode:" + address
}
