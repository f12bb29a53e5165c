package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/travel-journal/journal-api/internal/core/domain"
	"github.com/travel-journal/journal-api/internal/core/ports"
)

type stubUserRepo struct {
	users   map[string]*domain.User // keyed by email
	nextID  int
	findErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	stored := cloneUser(user)
	stored.ID = "user-" + strconv.Itoa(r.nextID)
	r.users[stored.Email] = stored
	return cloneUser(stored), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		c := cloneUser(u)
		c.PasswordHash = ""
		out = append(out, c)
	}
	return out, nil
}

const testImage = "https://example.com/avatar.jpg"

func newTestUserService(repo *stubUserRepo) *UserService {
	return NewUserService(repo, "secret", time.Hour, testImage, discardLogger)
}

func aliceSignup() ports.SignupInput {
	return ports.SignupInput{
		FirstName:    "Alice",
		LastName:     "Liddell",
		MobileNumber: "+44 20 7946 0000",
		Email:        "alice@example.com",
		Password:     "wonderland",
	}
}

func TestUserService_Signup_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	user, err := svc.Signup(context.Background(), aliceSignup())
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatal("expected generated id")
	}
	if user.Name() != "Alice Liddell" {
		t.Errorf("unexpected name %q", user.Name())
	}
	if user.Image != testImage {
		t.Errorf("expected default image, got %q", user.Image)
	}
	if user.Places == nil || len(user.Places) != 0 {
		t.Errorf("expected empty places, got %#v", user.Places)
	}
	if user.PasswordHash == "wonderland" {
		t.Fatal("password must not be stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("wonderland")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestUserService_Signup_NormalizesEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	in := aliceSignup()
	in.Email = "  Alice@Example.COM "
	user, err := svc.Signup(context.Background(), in)
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
}

func TestUserService_Signup_Validation(t *testing.T) {
	mutate := map[string]func(*ports.SignupInput){
		"missing first name": func(in *ports.SignupInput) { in.FirstName = "" },
		"missing last name":  func(in *ports.SignupInput) { in.LastName = " " },
		"missing mobile":     func(in *ports.SignupInput) { in.MobileNumber = "" },
		"missing email":      func(in *ports.SignupInput) { in.Email = "" },
		"malformed email":    func(in *ports.SignupInput) { in.Email = "not-an-email" },
		"short password":     func(in *ports.SignupInput) { in.Password = "12345" },
		"long password":      func(in *ports.SignupInput) { in.Password = strings.Repeat("a", 80) },
	}

	for name, fn := range mutate {
		t.Run(name, func(t *testing.T) {
			svc := newTestUserService(newStubUserRepo())
			in := aliceSignup()
			fn(&in)
			if _, err := svc.Signup(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestUserService_Signup_PasswordAtBcryptLimit(t *testing.T) {
	svc := newTestUserService(newStubUserRepo())
	in := aliceSignup()
	in.Password = strings.Repeat("a", 72)

	if _, err := svc.Signup(context.Background(), in); err != nil {
		t.Fatalf("72-byte password must be accepted, got %v", err)
	}
}

func TestUserService_Signup_Duplicate(t *testing.T) {
	svc := newTestUserService(newStubUserRepo())

	if _, err := svc.Signup(context.Background(), aliceSignup()); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if _, err := svc.Signup(context.Background(), aliceSignup()); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_Signup_LookupFailure(t *testing.T) {
	repo := newStubUserRepo()
	repo.findErr = errors.New("server selection timeout")
	svc := newTestUserService(repo)

	_, err := svc.Signup(context.Background(), aliceSignup())
	if err == nil || errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestUserService_Login_Success(t *testing.T) {
	svc := newTestUserService(newStubUserRepo())

	created, err := svc.Signup(context.Background(), aliceSignup())
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	res, err := svc.Login(context.Background(), "alice@example.com", "wonderland")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.UserID != created.ID || res.Email != "alice@example.com" {
		t.Fatalf("unexpected login result: %+v", res)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(res.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["user_id"] != created.ID {
		t.Fatalf("expected user_id %s, got %v", created.ID, claims["user_id"])
	}
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc := newTestUserService(newStubUserRepo())
	_, _ = svc.Signup(context.Background(), aliceSignup())

	for _, pw := range []string{"Wonderland", "wonderland ", "other"} {
		if _, err := svc.Login(context.Background(), "alice@example.com", pw); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("password %q: expected ErrInvalidCredentials, got %v", pw, err)
		}
	}
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc := newTestUserService(newStubUserRepo())

	if _, err := svc.Login(context.Background(), "ghost@example.com", "whatever"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_Login_LookupFailure(t *testing.T) {
	repo := newStubUserRepo()
	repo.findErr = errors.New("connection reset")
	svc := newTestUserService(repo)

	_, err := svc.Login(context.Background(), "alice@example.com", "wonderland")
	if err == nil || errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestUserService_ListUsers_EmptyIsNonNil(t *testing.T) {
	svc := newTestUserService(newStubUserRepo())

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if users == nil {
		t.Fatal("expected non-nil slice")
	}
}

func TestUserService_ListUsers_OmitsHashes(t *testing.T) {
	svc := newTestUserService(newStubUserRepo())
	_, _ = svc.Signup(context.Background(), aliceSignup())

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 1 || users[0].PasswordHash != "" {
		t.Fatalf("expected one user without hash, got %+v", users)
	}
}
