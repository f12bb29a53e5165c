package ports

import (
	"context"

	"github.com/travel-journal/journal-api/internal/core/domain"
)

// SignupInput carries the fields required to register a user.
type SignupInput struct {
	FirstName    string
	LastName     string
	MobileNumber string
	Email        string
	Password     string
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	UserID string
	Email  string
	Token  string
}

type UserService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}
