package ports

import (
	"context"

	"github.com/travel-journal/journal-api/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// List returns every user without password hashes.
	List(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
