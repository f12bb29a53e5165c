package ports

import (
	"context"

	"github.com/travel-journal/journal-api/internal/core/domain"
)

// EntryRepository defines persistence operations for journal entries.
type EntryRepository interface {
	Create(ctx context.Context, e *domain.Entry) error
	FindByID(ctx context.Context, id string) (*domain.Entry, error)
	// FindByAuthor returns the author's entries in creation order.
	FindByAuthor(ctx context.Context, authorID string) ([]*domain.Entry, error)
	// UpdateText overwrites headline, journal text and updated_at only.
	UpdateText(ctx context.Context, e *domain.Entry) error
	Delete(ctx context.Context, id string) error
}
