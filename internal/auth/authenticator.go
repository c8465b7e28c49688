package auth

import (
	"context"

	"github.com/smartfin/smartfin/internal/models"
)

// Authenticator is the auth collaborator contract: it issues User records
// whose ID is the durable identity key used throughout the group ledger.
// The abstraction allows swapping auth methods (password, OAuth, external
// providers) without changing the service layer.
type Authenticator interface {
	// Register creates a new user account with the given credential.
	Register(ctx context.Context, email, name, credential string) (*models.User, error)

	// Authenticate verifies the user's credentials and returns the user if
	// successful.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks if the credential meets the
	// implementation's requirements.
	ValidateCredential(credential string) error
}
