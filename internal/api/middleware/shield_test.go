package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
)

func newShieldedEcho() *echo.Echo {
	e := echo.New()
	e.Use(echomiddleware.Recover())
	e.Use(Shield())
	e.GET("/ok", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/fail", func(c echo.Context) error {
		return errors.New("boom")
	})
	e.GET("/panic", func(c echo.Context) error {
		panic("boom")
	})
	return e
}

func TestShield_SetsHeadersOnEveryOutcome(t *testing.T) {
	e := newShieldedEcho()

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"success", "/ok", http.StatusOK},
		{"handler error", "/fail", http.StatusInternalServerError},
		{"unknown route", "/missing", http.StatusNotFound},
		{"panic", "/panic", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			for k, v := range SecurityHeaders() {
				assert.Equal(t, v, rec.Header().Get(k), k)
			}
		})
	}
}

func TestShield_LeavesBodyUntouched(t *testing.T) {
	e := newShieldedEcho()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSecurityHeaders_Values(t *testing.T) {
	h := SecurityHeaders()

	assert.Len(t, h, 5)
	assert.Equal(t, "nosniff", h[echo.HeaderXContentTypeOptions])
	assert.Equal(t, "DENY", h[echo.HeaderXFrameOptions])
	assert.Equal(t, "strict-origin-when-cross-origin", h[echo.HeaderReferrerPolicy])
	assert.Equal(t, "1; mode=block", h[echo.HeaderXXSSProtection])
	assert.Equal(t,
		"default-src 'self'; script-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data: https:; font-src 'self'; connect-src 'self'",
		h[echo.HeaderContentSecurityPolicy])
}

func TestSecurityHeaders_ReturnsCopy(t *testing.T) {
	h := SecurityHeaders()
	h[echo.HeaderXFrameOptions] = "SAMEORIGIN"

	assert.Equal(t, "DENY", SecurityHeaders()[echo.HeaderXFrameOptions])
}

func TestApplySecurityHeaders(t *testing.T) {
	h := http.Header{}
	ApplySecurityHeaders(h)

	assert.Equal(t, "DENY", h.Get("X-Frame-Options"))
	assert.Equal(t, "1; mode=block", h.Get("X-XSS-Protection"))
}
