package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/minusd/favorite-places/internal/core/domain"
	"github.com/minusd/favorite-places/internal/core/ports"
)

// credentialStore implements ports.CredentialStore on top of a user
// repository and a password hasher.
type credentialStore struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	// dummyHash is compared against when the username is unknown so both
	// failure paths pay for one hash comparison.
	dummyHash string
}

// NewCredentialStore returns a CredentialStore backed by repo.
func NewCredentialStore(repo ports.UserRepository, hasher ports.PasswordHasher) (ports.CredentialStore, error) {
	dummy, err := hasher.Hash("dummy-password-for-unknown-users")
	if err != nil {
		return nil, fmt.Errorf("credential store: %w", err)
	}
	return &credentialStore{repo: repo, hasher: hasher, dummyHash: dummy}, nil
}

func (s *credentialStore) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *credentialStore) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = s.hasher.Matches(password, s.dummyHash)
			return nil, domain.ErrAuthenticationFailed
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if !s.hasher.Matches(password, user.PasswordHash) {
		return nil, domain.ErrAuthenticationFailed
	}
	return user, nil
}

func (s *credentialStore) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	return s.repo.Create(ctx, user)
}
