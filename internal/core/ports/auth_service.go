package ports

import (
	"context"

	"github.com/minusd/favorite-places/internal/core/domain"
)

// SignUpInput carries the transient credentials of a new account.
type SignUpInput struct {
	Username string
	Email    string
	Password string
}

// SignInInput carries the transient credentials of a sign-in attempt.
type SignInInput struct {
	Username string
	Password string
}

type AuthService interface {
	SignUp(ctx context.Context, in SignUpInput) (*domain.Token, error)
	SignIn(ctx context.Context, in SignInInput) (*domain.Token, error)
}

// TokenIssuer mints tokens for authenticated users.
type TokenIssuer interface {
	Issue(user *domain.User) (*domain.Token, error)
}

// TokenVerifier checks a token's signature and expiry.
type TokenVerifier interface {
	Verify(token string) (*domain.Claims, error)
}
