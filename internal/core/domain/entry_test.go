package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestEntry_IsOwnedBy(t *testing.T) {
	e := &Entry{Author: "u1"}

	if !e.IsOwnedBy("u1") {
		t.Error("expected u1 to own the entry")
	}
	if e.IsOwnedBy("u2") {
		t.Error("u2 must not own the entry")
	}
	if e.IsOwnedBy("") {
		t.Error("empty actor must never own an entry")
	}
}

func TestUser_Name(t *testing.T) {
	u := &User{FirstName: "Ada", LastName: "Lovelace"}
	if got := u.Name(); got != "Ada Lovelace" {
		t.Fatalf("expected %q, got %q", "Ada Lovelace", got)
	}
}

func TestValidationError_WrapsSentinel(t *testing.T) {
	err := ValidationError("headline is required")
	if !errors.Is(err, ErrValidation) {
		t.Fatal("expected error to wrap ErrValidation")
	}
	if !strings.Contains(err.Error(), "headline is required") {
		t.Fatalf("reason missing from %q", err.Error())
	}
}

func TestUpstreamError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := error(&UpstreamError{Provider: "geocoder", Status: 502, Message: "lookup failed", Err: cause})

	if !errors.Is(err, cause) {
		t.Fatal("expected UpstreamError to unwrap to its cause")
	}
	var ue *UpstreamError
	if !errors.As(err, &ue) || ue.Status != 502 {
		t.Fatalf("expected *UpstreamError with status 502, got %+v", ue)
	}
}
