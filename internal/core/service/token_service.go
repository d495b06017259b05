package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/minusd/favorite-places/internal/core/domain"
)

const (
	defaultTokenTTL    = 24 * time.Hour
	defaultTokenIssuer = "favorite-places"
)

// TokenConfig holds the process-wide signing settings.
type TokenConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

// TokenService issues and verifies HS256 bearer tokens. Verification is
// stateless: it never consults the credential store, so a token outlives
// the deletion of its user until it expires.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
	parser *jwt.Parser
}

type tokenClaims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func NewTokenService(cfg TokenConfig) (*TokenService, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("%w: token secret is required", domain.ErrMisconfigured)
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTokenTTL
	}
	if cfg.Issuer == "" {
		cfg.Issuer = defaultTokenIssuer
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &TokenService{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TTL,
		issuer: cfg.Issuer,
		now:    cfg.Now,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(cfg.Issuer),
			jwt.WithExpirationRequired(),
			jwt.WithTimeFunc(cfg.Now),
		),
	}, nil
}

// TTL returns the fixed validity window of issued tokens. Expiry is rounded
// up to the next whole second, so a token never lapses before issue time + TTL.
func (s *TokenService) TTL() time.Duration { return s.ttl }

func (s *TokenService) Issue(user *domain.User) (*domain.Token, error) {
	if user == nil || !user.Role.IsValid() {
		return nil, fmt.Errorf("issue token: %w", domain.ErrInvalidRole)
	}

	now := s.now().UTC()
	issuedAt := now.Truncate(time.Second)
	exact := now.Add(s.ttl)
	expiresAt := exact.Truncate(time.Second)
	if expiresAt.Before(exact) {
		expiresAt = expiresAt.Add(time.Second)
	}

	claims := tokenClaims{
		UserID: user.ID,
		Role:   user.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.Username,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &domain.Token{Value: signed, ExpiresAt: expiresAt}, nil
}

// Verify checks signature, issuer and expiry. Every failure is reported as
// domain.ErrInvalidToken.
func (s *TokenService) Verify(token string) (*domain.Claims, error) {
	var claims tokenClaims
	parsed, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: expired", domain.ErrInvalidToken)
		}
		return nil, domain.ErrInvalidToken
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, domain.ErrInvalidToken
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	out := &domain.Claims{
		ID:      claims.ID,
		Subject: claims.Subject,
		UserID:  claims.UserID,
		Role:    role,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	out.ExpiresAt = claims.ExpiresAt.Time
	return out, nil
}
