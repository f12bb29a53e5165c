package ports

import (
	"context"

	"github.com/travel-journal/journal-api/internal/core/domain"
)

// CreateEntryInput carries the data needed to create an entry.
// ActorID is the authenticated caller; when set it must match Author.
type CreateEntryInput struct {
	Headline     string
	JournalText  string
	LocationName string
	Author       string
	ActorID      string
}

// UpdateEntryInput carries the mutable fields of an entry.
type UpdateEntryInput struct {
	ID          string
	Headline    string
	JournalText string
	ActorID     string
}

// EntryService defines use-case operations for journal entries.
type EntryService interface {
	GetEntry(ctx context.Context, id string) (*domain.Entry, error)
	ListByAuthor(ctx context.Context, userID string) ([]*domain.Entry, error)
	CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.Entry, error)
	UpdateEntry(ctx context.Context, input UpdateEntryInput) (*domain.Entry, error)
	DeleteEntry(ctx context.Context, id, actorID string) error
}
