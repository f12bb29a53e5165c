package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/travel-journal/journal-api/internal/core/domain"
	"github.com/travel-journal/journal-api/internal/core/ports"
)

type stubEntryService struct {
	getFn    func(ctx context.Context, id string) (*domain.Entry, error)
	listFn   func(ctx context.Context, userID string) ([]*domain.Entry, error)
	createFn func(ctx context.Context, in ports.CreateEntryInput) (*domain.Entry, error)
	updateFn func(ctx context.Context, in ports.UpdateEntryInput) (*domain.Entry, error)
	deleteFn func(ctx context.Context, id, actorID string) error
}

func (s *stubEntryService) GetEntry(ctx context.Context, id string) (*domain.Entry, error) {
	return s.getFn(ctx, id)
}

func (s *stubEntryService) ListByAuthor(ctx context.Context, userID string) ([]*domain.Entry, error) {
	return s.listFn(ctx, userID)
}

func (s *stubEntryService) CreateEntry(ctx context.Context, in ports.CreateEntryInput) (*domain.Entry, error) {
	return s.createFn(ctx, in)
}

func (s *stubEntryService) UpdateEntry(ctx context.Context, in ports.UpdateEntryInput) (*domain.Entry, error) {
	return s.updateFn(ctx, in)
}

func (s *stubEntryService) DeleteEntry(ctx context.Context, id, actorID string) error {
	return s.deleteFn(ctx, id, actorID)
}

func newTestContext(method, target, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set("user_id", userID)
	}
	return c, rec
}

func TestEntryHandler_GetByID(t *testing.T) {
	stub := &stubEntryService{
		getFn: func(_ context.Context, id string) (*domain.Entry, error) {
			if id != "e1" {
				t.Fatalf("unexpected id %q", id)
			}
			return &domain.Entry{ID: "e1", Headline: "Paris", Author: "u1"}, nil
		},
	}
	c, rec := newTestContext(http.MethodGet, "/api/entries/e1", "", "")
	c.SetParamNames("id")
	c.SetParamValues("e1")

	if err := NewEntryHandler(stub).GetByID(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["entry"]["id"] != "e1" || resp["entry"]["headline"] != "Paris" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestEntryHandler_GetByID_NotFound(t *testing.T) {
	stub := &stubEntryService{
		getFn: func(context.Context, string) (*domain.Entry, error) { return nil, domain.ErrEntryNotFound },
	}
	c, _ := newTestContext(http.MethodGet, "/api/entries/nope", "", "")

	if err := NewEntryHandler(stub).GetByID(c); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestEntryHandler_ListByUser_Empty(t *testing.T) {
	stub := &stubEntryService{
		listFn: func(_ context.Context, userID string) ([]*domain.Entry, error) {
			if userID != "u1" {
				t.Fatalf("unexpected user %q", userID)
			}
			return []*domain.Entry{}, nil
		},
	}
	c, rec := newTestContext(http.MethodGet, "/api/entries/user/u1", "", "")
	c.SetParamNames("userId")
	c.SetParamValues("u1")

	if err := NewEntryHandler(stub).ListByUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"entries":[]}` {
		t.Fatalf("expected empty entries array, got %s", got)
	}
}

func TestEntryHandler_Create_DefaultsAuthorToCaller(t *testing.T) {
	stub := &stubEntryService{
		createFn: func(_ context.Context, in ports.CreateEntryInput) (*domain.Entry, error) {
			if in.Author != "u1" || in.ActorID != "u1" {
				t.Fatalf("expected author and actor u1, got %q/%q", in.Author, in.ActorID)
			}
			return &domain.Entry{
				ID:           "e1",
				Headline:     in.Headline,
				JournalText:  in.JournalText,
				LocationName: in.LocationName,
				Author:       in.Author,
				Coordinates:  domain.Coordinates{Latitude: 48.85, Longitude: 2.35},
			}, nil
		},
	}
	body := `{"headline":"Paris","journalText":"Lovely city","locationName":"Paris, France"}`
	c, rec := newTestContext(http.MethodPost, "/api/entries", body, "u1")

	if err := NewEntryHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp struct {
		Entry domain.Entry `json:"entry"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Entry.Coordinates.Latitude != 48.85 || resp.Entry.Author != "u1" {
		t.Fatalf("unexpected entry: %+v", resp.Entry)
	}
}

func TestEntryHandler_Create_ForwardsExplicitAuthor(t *testing.T) {
	stub := &stubEntryService{
		createFn: func(_ context.Context, in ports.CreateEntryInput) (*domain.Entry, error) {
			if in.Author != "u2" || in.ActorID != "u1" {
				t.Fatalf("unexpected author/actor %q/%q", in.Author, in.ActorID)
			}
			return nil, domain.ErrForbidden
		},
	}
	body := `{"headline":"Paris","journalText":"Lovely city","locationName":"Paris","author":"u2"}`
	c, _ := newTestContext(http.MethodPost, "/api/entries", body, "u1")

	if err := NewEntryHandler(stub).Create(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestEntryHandler_Create_InvalidInput(t *testing.T) {
	stub := &stubEntryService{
		createFn: func(context.Context, ports.CreateEntryInput) (*domain.Entry, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewEntryHandler(stub)

	t.Run("malformed json", func(t *testing.T) {
		c, _ := newTestContext(http.MethodPost, "/api/entries", "{", "u1")
		err := h.Create(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %v", err)
		}
	})

	t.Run("short journal text", func(t *testing.T) {
		c, _ := newTestContext(http.MethodPost, "/api/entries", `{"headline":"x","journalText":"abc","locationName":"Paris"}`, "u1")
		err := h.Create(c)
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
		if !strings.Contains(err.Error(), "journalText") {
			t.Fatalf("expected message to name journalText, got %q", err.Error())
		}
	})

	t.Run("missing location", func(t *testing.T) {
		c, _ := newTestContext(http.MethodPost, "/api/entries", `{"headline":"x","journalText":"long enough"}`, "u1")
		if err := h.Create(c); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestEntryHandler_Create_Unauthenticated(t *testing.T) {
	c, _ := newTestContext(http.MethodPost, "/api/entries", `{}`, "")

	err := NewEntryHandler(&stubEntryService{}).Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestEntryHandler_Create_GeocodeFailure(t *testing.T) {
	upstreamErr := &domain.UpstreamError{Provider: "geocoder", Status: 422, Message: "Could not find location for the specified address."}
	stub := &stubEntryService{
		createFn: func(context.Context, ports.CreateEntryInput) (*domain.Entry, error) { return nil, upstreamErr },
	}
	c, _ := newTestContext(http.MethodPost, "/api/entries", `{"headline":"x","journalText":"long enough","locationName":"Atlantis"}`, "u1")

	var ue *domain.UpstreamError
	if err := NewEntryHandler(stub).Create(c); !errors.As(err, &ue) || ue.Status != 422 {
		t.Fatalf("expected geocode error, got %v", err)
	}
}

func TestEntryHandler_Update(t *testing.T) {
	stub := &stubEntryService{
		updateFn: func(_ context.Context, in ports.UpdateEntryInput) (*domain.Entry, error) {
			if in.ID != "e1" || in.ActorID != "u1" || in.Headline != "New" {
				t.Fatalf("unexpected input %+v", in)
			}
			return &domain.Entry{ID: in.ID, Headline: in.Headline, JournalText: in.JournalText, Author: "u1"}, nil
		},
	}
	c, rec := newTestContext(http.MethodPatch, "/api/entries/e1", `{"headline":"New","journalText":"Updated text"}`, "u1")
	c.SetParamNames("id")
	c.SetParamValues("e1")

	if err := NewEntryHandler(stub).Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestEntryHandler_Update_NotOwner(t *testing.T) {
	stub := &stubEntryService{
		updateFn: func(context.Context, ports.UpdateEntryInput) (*domain.Entry, error) { return nil, domain.ErrForbidden },
	}
	c, _ := newTestContext(http.MethodPatch, "/api/entries/e1", `{"headline":"New","journalText":"Updated text"}`, "u2")
	c.SetParamNames("id")
	c.SetParamValues("e1")

	if err := NewEntryHandler(stub).Update(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestEntryHandler_Delete(t *testing.T) {
	stub := &stubEntryService{
		deleteFn: func(_ context.Context, id, actorID string) error {
			if id != "e1" || actorID != "u1" {
				t.Fatalf("unexpected args %q %q", id, actorID)
			}
			return nil
		},
	}
	c, rec := newTestContext(http.MethodDelete, "/api/entries/e1", "", "u1")
	c.SetParamNames("id")
	c.SetParamValues("e1")

	if err := NewEntryHandler(stub).Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Deleted entry." {
		t.Fatalf("unexpected message %q", resp["message"])
	}
}

func TestEntryHandler_Delete_Missing(t *testing.T) {
	stub := &stubEntryService{
		deleteFn: func(context.Context, string, string) error { return domain.ErrEntryNotFound },
	}
	c, _ := newTestContext(http.MethodDelete, "/api/entries/gone", "", "u1")

	if err := NewEntryHandler(stub).Delete(c); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}
