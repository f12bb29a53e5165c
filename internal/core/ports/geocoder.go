package ports

import (
	"context"

	"github.com/travel-journal/journal-api/internal/core/domain"
)

// Geocoder resolves a free-text address into coordinates. Provider failures
// are reported as *domain.UpstreamError.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (domain.Coordinates, error)
}
