package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Its ID is the durable identity key: group
// members created through invite redemption carry it, and IsUser matching
// during redemption compares the user's contact against member contacts.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the user's email address (unique). Used for login and as the
	// contact identity during invite redemption.
	Email string `json:"email"`

	// Phone is an optional contact number.
	Phone string `json:"phone,omitempty"`

	// Avatar is an optional profile picture URL.
	Avatar string `json:"avatar,omitempty"`

	// PasswordHash is the bcrypt hash of the user's password. Never
	// serialized into API responses.
	PasswordHash string `json:"-"`

	// CreatedAt is when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// NewUser creates a user with a fresh id and creation timestamp.
func NewUser(email, name, passwordHash string) *User {
	return &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
}
