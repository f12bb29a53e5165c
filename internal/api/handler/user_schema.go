package handler

import (
	"time"

	"github.com/travel-journal/journal-api/internal/core/domain"
)

type signupRequest struct {
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	MobileNumber string `json:"mobileNumber" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6,max=72"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userDTO is the public projection of a user. Name is derived from first and
// last name and is never stored.
type userDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	MobileNumber string    `json:"mobileNumber"`
	Email        string    `json:"email"`
	Image        string    `json:"image"`
	Places       []string  `json:"places"`
	CreatedAt    time.Time `json:"createdAt"`
}

type userResponse struct {
	User userDTO `json:"user"`
}

type userListResponse struct {
	Users []userDTO `json:"users"`
}

type loginResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
	Email   string `json:"email"`
	Token   string `json:"token"`
}

func toUserDTO(u *domain.User) userDTO {
	places := u.Places
	if places == nil {
		places = []string{}
	}
	return userDTO{
		ID:           u.ID,
		Name:         u.Name(),
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		MobileNumber: u.MobileNumber,
		Email:        u.Email,
		Image:        u.Image,
		Places:       places,
		CreatedAt:    u.CreatedAt,
	}
}

func toUserDTOs(users []*domain.User) []userDTO {
	out := make([]userDTO, 0, len(users))
	for _, u := range users {
		out = append(out, toUserDTO(u))
	}
	return out
}
