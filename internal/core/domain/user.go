package domain

import "time"

// User models a journal author.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	MobileNumber string    `json:"mobileNumber"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Image        string    `json:"image"`
	Places       []string  `json:"places"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Name is the display name older clients read as a single field.
func (u *User) Name() string {
	return u.FirstName + " " + u.LastName
}
