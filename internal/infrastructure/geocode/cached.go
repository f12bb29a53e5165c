package geocode

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/travel-journal/journal-api/internal/core/domain"
	"github.com/travel-journal/journal-api/internal/core/ports"
	"github.com/travel-journal/journal-api/internal/pkg/metrics"
)

// CoordinateStore abstracts the lookup cache (Redis).
type CoordinateStore interface {
	Get(ctx context.Context, address string) (domain.Coordinates, bool, error)
	Set(ctx context.Context, address string, coords domain.Coordinates) error
}

// Cached wraps a Geocoder with a lookup cache. Store failures are logged and
// bypassed; only successful lookups are stored.
//
// Keys are case-folded with whitespace collapsed, so "PARIS" is answered from
// an earlier "paris" lookup instead of asking the provider again. This assumes
// the provider itself ignores case and spacing, which holds for Google.
type Cached struct {
	next  ports.Geocoder
	store CoordinateStore
	log   zerolog.Logger
}

func NewCached(next ports.Geocoder, store CoordinateStore, log zerolog.Logger) *Cached {
	return &Cached{next: next, store: store, log: log}
}

func (c *Cached) Resolve(ctx context.Context, address string) (domain.Coordinates, error) {
	key := normalize(address)

	coords, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.log.Warn().Err(err).Str("address", key).Msg("geocode cache lookup failed, resolving anyway")
	} else if ok {
		metrics.GeocodeRequestsTotal.WithLabelValues("cache_hit").Inc()
		return coords, nil
	}

	coords, err = c.next.Resolve(ctx, address)
	if err != nil {
		return domain.Coordinates{}, err
	}

	if err := c.store.Set(ctx, key, coords); err != nil {
		c.log.Warn().Err(err).Str("address", key).Msg("failed to cache geocode result")
	}
	return coords, nil
}

// normalize folds case and collapses whitespace so "  Paris " and "paris"
// share a cache slot.
func normalize(address string) string {
	return strings.ToLower(strings.Join(strings.Fields(address), " "))
}
