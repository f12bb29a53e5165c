package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/travel-journal/journal-api/internal/core/ports"
	"github.com/travel-journal/journal-api/internal/pkg/metrics"
)

type EntryHandler struct {
	entryService ports.EntryService
}

func NewEntryHandler(entryService ports.EntryService) *EntryHandler {
	return &EntryHandler{entryService: entryService}
}

// GetByID returns a single entry.
//
// @Summary      Get an entry
// @Tags         entries
// @Produce      json
// @Param        id   path      string  true  "Entry ID"
// @Success      200  {object}  entryResponse
// @Failure      404  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /api/entries/{id} [get]
func (h *EntryHandler) GetByID(c echo.Context) error {
	entry, err := h.entryService.GetEntry(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entryResponse{Entry: entry})
}

// ListByUser returns every entry written by a user, oldest first.
//
// @Summary      List a user's entries
// @Tags         entries
// @Produce      json
// @Param        userId  path      string  true  "Author ID"
// @Success      200     {object}  entryListResponse
// @Failure      500     {object}  messageResponse
// @Router       /api/entries/user/{userId} [get]
func (h *EntryHandler) ListByUser(c echo.Context) error {
	entries, err := h.entryService.ListByAuthor(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entryListResponse{Entries: entries})
}

// Create writes a new entry, resolving its location through the geocoder.
//
// @Summary      Create an entry
// @Tags         entries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEntryRequest  true  "Entry payload"
// @Success      201   {object}  entryResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      422   {object}  messageResponse
// @Failure      502   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/entries [post]
func (h *EntryHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createEntryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	author := req.Author
	if author == "" {
		author = userID
	}

	entry, err := h.entryService.CreateEntry(c.Request().Context(), ports.CreateEntryInput{
		Headline:     req.Headline,
		JournalText:  req.JournalText,
		LocationName: req.LocationName,
		Author:       author,
		ActorID:      userID,
	})
	if err != nil {
		return err
	}

	metrics.EntryOperationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, entryResponse{Entry: entry})
}

// Update replaces the headline and text of an entry owned by the caller.
//
// @Summary      Update an entry
// @Tags         entries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Entry ID"
// @Param        body  body      updateEntryRequest  true  "Mutable fields"
// @Success      200   {object}  entryResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Failure      422   {object}  messageResponse
// @Router       /api/entries/{id} [patch]
func (h *EntryHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateEntryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	entry, err := h.entryService.UpdateEntry(c.Request().Context(), ports.UpdateEntryInput{
		ID:          c.Param("id"),
		Headline:    req.Headline,
		JournalText: req.JournalText,
		ActorID:     userID,
	})
	if err != nil {
		return err
	}

	metrics.EntryOperationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, entryResponse{Entry: entry})
}

// Delete removes an entry owned by the caller.
//
// @Summary      Delete an entry
// @Tags         entries
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Entry ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/entries/{id} [delete]
func (h *EntryHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.entryService.DeleteEntry(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}

	metrics.EntryOperationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Deleted entry."})
}
