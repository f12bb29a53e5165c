package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/travel-journal/journal-api/internal/core/domain"
	"github.com/travel-journal/journal-api/internal/core/ports"
)

const minJournalTextLen = 5

type EntryService struct {
	repo         ports.EntryRepository
	geocoder     ports.Geocoder
	defaultPhoto string
	logger       zerolog.Logger
	now          func() time.Time
}

func NewEntryService(repo ports.EntryRepository, geocoder ports.Geocoder, defaultPhoto string, logger zerolog.Logger) *EntryService {
	return &EntryService{
		repo:         repo,
		geocoder:     geocoder,
		defaultPhoto: defaultPhoto,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *EntryService) GetEntry(ctx context.Context, id string) (*domain.Entry, error) {
	return s.repo.FindByID(ctx, id)
}

// ListByAuthor never returns a nil slice; an author without entries yields [].
func (s *EntryService) ListByAuthor(ctx context.Context, userID string) ([]*domain.Entry, error) {
	entries, err := s.repo.FindByAuthor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	if entries == nil {
		entries = []*domain.Entry{}
	}
	return entries, nil
}

// CreateEntry validates the input, geocodes the location once and persists
// the new entry. Geocoding errors are returned unchanged.
func (s *EntryService) CreateEntry(ctx context.Context, input ports.CreateEntryInput) (*domain.Entry, error) {
	if err := validateEntryText(input.Headline, input.JournalText); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.LocationName) == "" {
		return nil, domain.ValidationError("locationName is required")
	}
	if input.Author == "" {
		return nil, domain.ValidationError("author is required")
	}
	if input.ActorID != "" && input.ActorID != input.Author {
		return nil, domain.ErrForbidden
	}

	coords, err := s.geocoder.Resolve(ctx, input.LocationName)
	if err != nil {
		s.logger.Warn().Err(err).Str("location", input.LocationName).Msg("geocoding failed")
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate entry id: %w", err)
	}

	now := s.now()
	entry := &domain.Entry{
		ID:           id.String(),
		Headline:     input.Headline,
		JournalText:  input.JournalText,
		Photo:        s.defaultPhoto,
		LocationName: input.LocationName,
		Coordinates:  coords,
		Author:       input.Author,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Error().Err(err).Msg("failed to create entry")
		return nil, fmt.Errorf("create entry: %w", err)
	}

	s.logger.Info().Str("entry_id", entry.ID).Str("author", entry.Author).Msg("entry created")
	return entry, nil
}

// UpdateEntry rewrites headline and journal text. Concurrent updates are
// last-write-wins.
func (s *EntryService) UpdateEntry(ctx context.Context, input ports.UpdateEntryInput) (*domain.Entry, error) {
	if err := validateEntryText(input.Headline, input.JournalText); err != nil {
		return nil, err
	}

	entry, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if !entry.IsOwnedBy(input.ActorID) {
		return nil, domain.ErrForbidden
	}

	entry.Headline = input.Headline
	entry.JournalText = input.JournalText
	entry.UpdatedAt = s.now()

	if err := s.repo.UpdateText(ctx, entry); err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}

	s.logger.Info().Str("entry_id", entry.ID).Msg("entry updated")
	return entry, nil
}

func (s *EntryService) DeleteEntry(ctx context.Context, id, actorID string) error {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !entry.IsOwnedBy(actorID) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	s.logger.Info().Str("entry_id", id).Msg("entry deleted")
	return nil
}

func validateEntryText(headline, journalText string) error {
	if strings.TrimSpace(headline) == "" {
		return domain.ValidationError("headline is required")
	}
	if utf8.RuneCountInString(journalText) < minJournalTextLen {
		return domain.ValidationError(fmt.Sprintf("journalText must be at least %d characters", minJournalTextLen))
	}
	return nil
}
