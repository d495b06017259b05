package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minusd/favorite-places/internal/api/metrics"
	"github.com/minusd/favorite-places/internal/core/domain"
	"github.com/minusd/favorite-places/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignUp creates a user account and returns a bearer token for it.
// POST /api/auth/sign-up → 201
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := bindAndValidate(c, &req); err != nil {
		metrics.RecordAuth("sign_up", rejected(err))
		return err
	}

	token, err := h.authService.SignUp(c.Request().Context(), ports.SignUpInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	metrics.RecordAuth("sign_up", err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, tokenResponse{Token: token.Value, ExpiresAt: token.ExpiresAt})
}

// SignIn authenticates a user and returns a bearer token.
// POST /api/auth/sign-in → 200
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := bindAndValidate(c, &req); err != nil {
		metrics.RecordAuth("sign_in", rejected(err))
		return err
	}

	token, err := h.authService.SignIn(c.Request().Context(), ports.SignInInput{
		Username: req.Username,
		Password: req.Password,
	})
	metrics.RecordAuth("sign_in", err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: token.Value, ExpiresAt: token.ExpiresAt})
}

// rejected classifies a bind, markup or validation failure for metrics.
func rejected(err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return err
	}
	return domain.ErrInvalidInput
}
