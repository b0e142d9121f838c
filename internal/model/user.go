package model

import (
	"time"

	"github.com/google/uuid"
)

// User is the stored account record. The credential field never leaves the
// user directory: every read path converts to SanitizedUser first.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
}

// SanitizedUser is the credential-free projection handed to callers.
type SanitizedUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u User) Sanitize() SanitizedUser {
	return SanitizedUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func NewUser(name, email, password string) User {
	return User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  password,
		CreatedAt: time.Now(),
	}
}
