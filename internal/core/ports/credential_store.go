package ports

import (
	"context"

	"github.com/minusd/favorite-places/internal/core/domain"
)

// CredentialStore owns account records and verifies credentials.
type CredentialStore interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Authenticate returns domain.ErrAuthenticationFailed for both an unknown
	// username and a wrong password.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
}

// PasswordHasher is a one-way salted hashing scheme.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Matches(plaintext, hash string) bool
}
