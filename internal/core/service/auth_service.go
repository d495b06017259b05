package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/minusd/favorite-places/internal/core/domain"
	"github.com/minusd/favorite-places/internal/core/markup"
	"github.com/minusd/favorite-places/internal/core/ports"
)

// AuthService coordinates sign-up and sign-in: it screens untrusted fields,
// delegates to the credential store and asks the token issuer for a token.
// Credentials and tokens are never logged.
type AuthService struct {
	store  ports.CredentialStore
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	log    zerolog.Logger
	now    func() time.Time
}

func NewAuthService(store ports.CredentialStore, hasher ports.PasswordHasher, tokens ports.TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{
		store:  store,
		hasher: hasher,
		tokens: tokens,
		log:    log,
		now:    time.Now,
	}
}

func (s *AuthService) SignUp(ctx context.Context, in ports.SignUpInput) (*domain.Token, error) {
	if field, found := markup.FirstSuspicious(
		markup.Field{Name: "username", Value: in.Username},
		markup.Field{Name: "email", Value: in.Email},
	); found {
		s.log.Warn().Str("operation", "sign_up").Str("field", field).Msg("suspicious markup rejected")
		return nil, &domain.FieldError{Field: field}
	}
	if strings.TrimSpace(in.Username) == "" {
		return nil, &domain.FieldError{Field: "username"}
	}
	if in.Password == "" {
		return nil, &domain.FieldError{Field: "password"}
	}

	_, err := s.store.FindByUsername(ctx, in.Username)
	switch {
	case err == nil:
		return nil, domain.ErrDuplicateUser
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("sign up: lookup: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if errors.Is(err, domain.ErrPasswordTooLong) {
		return nil, &domain.FieldError{Field: "password"}
	}
	if err != nil {
		return nil, fmt.Errorf("sign up: hash: %w", err)
	}

	now := s.now().UTC()
	created, err := s.store.Save(ctx, &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUser) {
			return nil, domain.ErrDuplicateUser
		}
		return nil, fmt.Errorf("sign up: save: %w", err)
	}

	token, err := s.tokens.Issue(created)
	if err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}

	s.log.Info().Str("user_id", created.ID).Msg("user signed up")
	return token, nil
}

func (s *AuthService) SignIn(ctx context.Context, in ports.SignInInput) (*domain.Token, error) {
	if markup.ContainsSuspiciousMarkup(in.Username) {
		s.log.Warn().Str("operation", "sign_in").Str("field", "username").Msg("suspicious markup rejected")
		return nil, &domain.FieldError{Field: "username"}
	}
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrAuthenticationFailed
	}

	user, err := s.store.Authenticate(ctx, in.Username, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrAuthenticationFailed) {
			s.log.Info().Str("operation", "sign_in").Msg("authentication failed")
			return nil, domain.ErrAuthenticationFailed
		}
		return nil, fmt.Errorf("sign in: %w", err)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("user signed in")
	return token, nil
}
