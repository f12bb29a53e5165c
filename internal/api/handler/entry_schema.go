package handler

import "github.com/travel-journal/journal-api/internal/core/domain"

type createEntryRequest struct {
	Headline     string `json:"headline" validate:"required"`
	JournalText  string `json:"journalText" validate:"required,min=5"`
	LocationName string `json:"locationName" validate:"required"`
	// Author defaults to the authenticated user when omitted.
	Author string `json:"author"`
}

type updateEntryRequest struct {
	Headline    string `json:"headline" validate:"required"`
	JournalText string `json:"journalText" validate:"required,min=5"`
}

type entryResponse struct {
	Entry *domain.Entry `json:"entry"`
}

type entryListResponse struct {
	Entries []*domain.Entry `json:"entries"`
}

type messageResponse struct {
	Message string `json:"message"`
}
