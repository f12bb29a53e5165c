package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/travel-journal/journal-api/internal/core/domain"
	"github.com/travel-journal/journal-api/internal/core/ports"
	"github.com/travel-journal/journal-api/internal/pkg/metrics"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns every registered user without credentials.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {object}  userListResponse
// @Failure      500  {object}  messageResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userListResponse{Users: toUserDTOs(users)})
}

// Signup creates a new user account.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "User registration details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  messageResponse
// @Failure      422   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/users/signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	// The service stores the trimmed, lower-cased form; validate that shape.
	req.Email = strings.TrimSpace(req.Email)
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userService.Signup(c.Request().Context(), ports.SignupInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		MobileNumber: req.MobileNumber,
		Email:        req.Email,
		Password:     req.Password,
	})
	if err != nil {
		return err
	}

	metrics.UsersSignedUpTotal.Inc()
	return c.JSON(http.StatusCreated, userResponse{User: toUserDTO(user)})
}

// Login authenticates a user and returns a JWT token.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /api/users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.userService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		result := "error"
		if errors.Is(err, domain.ErrInvalidCredentials) {
			result = "invalid_credentials"
		}
		metrics.LoginAttemptsTotal.WithLabelValues(result).Inc()
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Message: "Logged in!",
		UserID:  res.UserID,
		Email:   res.Email,
		Token:   res.Token,
	})
}
