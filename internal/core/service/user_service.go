package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/travel-journal/journal-api/internal/core/domain"
	"github.com/travel-journal/journal-api/internal/core/ports"
)

const (
	minPasswordLen = 6
	// bcrypt ignores input past 72 bytes and GenerateFromPassword rejects it.
	maxPasswordLen = 72
)

var validate = validator.New()

// UserService implements signup, login and listing.
type UserService struct {
	repo         ports.UserRepository
	jwtSecret    string
	tokenTTL     time.Duration
	defaultImage string
	logger       zerolog.Logger
}

func NewUserService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, defaultImage string, logger zerolog.Logger) *UserService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &UserService{
		repo:         repo,
		jwtSecret:    jwtSecret,
		tokenTTL:     tokenTTL,
		defaultImage: defaultImage,
		logger:       logger,
	}
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []*domain.User{}
	}
	return users, nil
}

func (s *UserService) Signup(ctx context.Context, input ports.SignupInput) (*domain.User, error) {
	email := normalizeEmail(input.Email)
	if err := validateSignup(input, email); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil && existing != nil:
		return nil, domain.ErrUserExists
	case err != nil && !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("signup: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		MobileNumber: strings.TrimSpace(input.MobileNumber),
		Email:        email,
		PasswordHash: string(hash),
		Image:        s.defaultImage,
		Places:       []string{},
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user signed up")
	return created, nil
}

// Login never distinguishes an unknown email from a wrong password.
func (s *UserService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &ports.LoginResult{UserID: user.ID, Email: user.Email, Token: token}, nil
}

func (s *UserService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateSignup(in ports.SignupInput, email string) error {
	switch {
	case strings.TrimSpace(in.FirstName) == "":
		return domain.ValidationError("firstName is required")
	case strings.TrimSpace(in.LastName) == "":
		return domain.ValidationError("lastName is required")
	case strings.TrimSpace(in.MobileNumber) == "":
		return domain.ValidationError("mobileNumber is required")
	case email == "":
		return domain.ValidationError("email is required")
	case len(in.Password) < minPasswordLen:
		return domain.ValidationError(fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	case len(in.Password) > maxPasswordLen:
		return domain.ValidationError(fmt.Sprintf("password must be at most %d bytes", maxPasswordLen))
	}
	if err := validate.Var(email, "email"); err != nil {
		return domain.ValidationError("email must be a valid email")
	}
	return nil
}
