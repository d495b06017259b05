package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/minusd/favorite-places/internal/api/middleware"
	"github.com/minusd/favorite-places/internal/core/domain"
	"github.com/minusd/favorite-places/internal/core/ports"
)

type stubPlaceService struct {
	listFn   func(ctx context.Context, userID string) ([]*domain.Place, error)
	createFn func(ctx context.Context, userID string, in ports.PlaceInput) (*domain.Place, error)
	updateFn func(ctx context.Context, placeID, userID string, in ports.PlaceInput) (*domain.Place, error)
	deleteFn func(ctx context.Context, placeID, userID string) error
}

func (s *stubPlaceService) List(ctx context.Context, userID string) ([]*domain.Place, error) {
	return s.listFn(ctx, userID)
}

func (s *stubPlaceService) Create(ctx context.Context, userID string, in ports.PlaceInput) (*domain.Place, error) {
	return s.createFn(ctx, userID, in)
}

func (s *stubPlaceService) Update(ctx context.Context, placeID, userID string, in ports.PlaceInput) (*domain.Place, error) {
	return s.updateFn(ctx, placeID, userID, in)
}

func (s *stubPlaceService) Delete(ctx context.Context, placeID, userID string) error {
	return s.deleteFn(ctx, placeID, userID)
}

func withClaims(c echo.Context, userID string) {
	c.Set(middleware.ClaimsKey, &domain.Claims{Subject: "alice", UserID: userID, Role: domain.RoleUser})
}

func TestPlaceHandler_List(t *testing.T) {
	handler := NewPlaceHandler(&stubPlaceService{
		listFn: func(ctx context.Context, userID string) ([]*domain.Place, error) {
			if userID != "u1" {
				t.Fatalf("unexpected user: %s", userID)
			}
			return []*domain.Place{{ID: "p1", UserID: "u1", Name: "Cafe"}}, nil
		},
	})
	c, rec := newJSONContext(http.MethodGet, "/api/places", "")
	withClaims(c, "u1")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"place_name":"Cafe"`) || strings.Contains(body, "u1") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestPlaceHandler_Create(t *testing.T) {
	handler := NewPlaceHandler(&stubPlaceService{
		createFn: func(ctx context.Context, userID string, in ports.PlaceInput) (*domain.Place, error) {
			if userID != "u1" || in.Name != "Park" || in.Description != "green" {
				t.Fatalf("unexpected args: %s %+v", userID, in)
			}
			return &domain.Place{ID: "p1", UserID: userID, Name: in.Name, Description: in.Description}, nil
		},
	})
	c, rec := newJSONContext(http.MethodPost, "/api/places", `{"place_name":"Park","description":"green"}`)
	withClaims(c, "u1")

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestPlaceHandler_Create_Validation(t *testing.T) {
	handler := NewPlaceHandler(&stubPlaceService{})
	c, _ := newJSONContext(http.MethodPost, "/api/places", `{"place_name":"P"}`)
	withClaims(c, "u1")

	var he *echo.HTTPError
	if err := handler.Create(c); !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestPlaceHandler_RequiresClaims(t *testing.T) {
	handler := NewPlaceHandler(&stubPlaceService{})
	c, _ := newJSONContext(http.MethodGet, "/api/places", "")

	var he *echo.HTTPError
	if err := handler.List(c); !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestPlaceHandler_Update_PassesIDAndOwner(t *testing.T) {
	handler := NewPlaceHandler(&stubPlaceService{
		updateFn: func(ctx context.Context, placeID, userID string, in ports.PlaceInput) (*domain.Place, error) {
			if placeID != "p1" || userID != "u2" {
				t.Fatalf("unexpected args: %s %s", placeID, userID)
			}
			return nil, domain.ErrForbidden
		},
	})
	c, _ := newJSONContext(http.MethodPut, "/api/places/p1", `{"place_name":"Park"}`)
	c.SetParamNames("id")
	c.SetParamValues("p1")
	withClaims(c, "u2")

	if err := handler.Update(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestPlaceHandler_Delete(t *testing.T) {
	handler := NewPlaceHandler(&stubPlaceService{
		deleteFn: func(ctx context.Context, placeID, userID string) error {
			if placeID != "p1" || userID != "u1" {
				t.Fatalf("unexpected args: %s %s", placeID, userID)
			}
			return nil
		},
	})
	c, rec := newJSONContext(http.MethodDelete, "/api/places/p1", "")
	c.SetParamNames("id")
	c.SetParamValues("p1")
	withClaims(c, "u1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
