package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUserID returns the caller id injected by the Auth middleware. A missing
// id means the route was mounted without Auth, so reject with 401 before any
// service call.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}

// bindAndValidate decodes the request body into req and runs struct validation.
// Undecodable bodies are a 400; rule violations surface as ErrValidation (422).
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}
