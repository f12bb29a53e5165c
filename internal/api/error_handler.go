package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/travel-journal/journal-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, auth middleware).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var ue *domain.UpstreamError
	if errors.As(err, &ue) {
		if ue.Status >= http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("provider", ue.Provider).
				Str("path", c.Path()).
				Msg("upstream failure")
		}
		return ue.Status, ue.Message
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrEntryNotFound):
		return http.StatusNotFound, "Could not find an entry for the provided id."
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "Could not find a user for the provided id."
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusUnprocessableEntity, "User exists already, please login instead."
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials, could not log you in."
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "You are not allowed to modify this entry."
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Something went wrong, please try again later."
}
