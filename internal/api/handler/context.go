package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minusd/favorite-places/internal/api/middleware"
	"github.com/minusd/favorite-places/internal/core/domain"
)

// ctxClaims extracts the claims injected by the Auth middleware. A route
// reached without them is misconfigured; treat it as unauthenticated.
func ctxClaims(c echo.Context) (*domain.Claims, error) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok || claims.UserID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
