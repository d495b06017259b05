package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minusd/favorite-places/internal/api/metrics"
	"github.com/minusd/favorite-places/internal/core/ports"
)

// PlaceHandler serves the caller's own favorite places.
type PlaceHandler struct {
	service ports.PlaceService
}

func NewPlaceHandler(service ports.PlaceService) *PlaceHandler {
	return &PlaceHandler{service: service}
}

// List handles GET /api/places.
func (h *PlaceHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	places, err := h.service.List(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, places)
}

// Create handles POST /api/places.
func (h *PlaceHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req placeRequest
	if err := bindAndValidate(c, &req); err != nil {
		metrics.RecordSuspicious("create_place", err)
		return err
	}

	place, err := h.service.Create(c.Request().Context(), claims.UserID, req.input())
	if err != nil {
		metrics.RecordSuspicious("create_place", err)
		return err
	}
	return c.JSON(http.StatusCreated, place)
}

// Update handles PUT /api/places/:id.
func (h *PlaceHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req placeRequest
	if err := bindAndValidate(c, &req); err != nil {
		metrics.RecordSuspicious("update_place", err)
		return err
	}

	place, err := h.service.Update(c.Request().Context(), c.Param("id"), claims.UserID, req.input())
	if err != nil {
		metrics.RecordSuspicious("update_place", err)
		return err
	}
	return c.JSON(http.StatusOK, place)
}

// Delete handles DELETE /api/places/:id.
func (h *PlaceHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), claims.UserID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (r placeRequest) input() ports.PlaceInput {
	return ports.PlaceInput{Name: r.Name, Description: r.Description}
}
