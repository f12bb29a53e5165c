package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("invalid inputs passed, please check your data")
	ErrEntryNotFound      = errors.New("entry not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
)

// ValidationError wraps ErrValidation with a human-readable reason.
func ValidationError(reason string) error {
	return fmt.Errorf("%w: %s", ErrValidation, reason)
}

// UpstreamError is returned when an external provider (e.g. the geocoder)
// rejects or fails a request. Status is the HTTP status surfaced to clients.
type UpstreamError struct {
	Provider string
	Status   int
	Message  string
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
