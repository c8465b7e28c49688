// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/smartfin/smartfin/internal/models"
)

// ErrUserNotFound is returned by user lookups that match nothing.
var ErrUserNotFound = errors.New("user not found")

// Store defines the persistence contract: user accounts plus one data
// document per user. This abstraction allows swapping backends (SQLite,
// in-memory for tests) without changing the service layer.
type Store interface {
	// LoadDocument returns the user's document. A user with no stored
	// document gets the default document, never an error.
	LoadDocument(ctx context.Context, userID string) (*models.Document, error)

	// SaveDocument replaces the user's document wholesale.
	SaveDocument(ctx context.Context, userID string, doc *models.Document) error

	// CreateUser persists a new user account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email address.
	// Returns ErrUserNotFound if no account matches.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by id.
	// Returns ErrUserNotFound if no account matches.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// UpdateUser updates an existing user's profile fields.
	UpdateUser(ctx context.Context, user *models.User) error

	// Close releases any resources held by the store.
	Close() error
}
