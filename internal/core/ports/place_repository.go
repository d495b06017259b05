package ports

import (
	"context"

	"github.com/minusd/favorite-places/internal/core/domain"
)

// PlaceRepository defines persistence operations for favorite places.
type PlaceRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.Place, error)
	// FindByID returns domain.ErrPlaceNotFound when no place matches.
	FindByID(ctx context.Context, id string) (*domain.Place, error)
	Create(ctx context.Context, p *domain.Place) (*domain.Place, error)
	Update(ctx context.Context, p *domain.Place) (*domain.Place, error)
	Delete(ctx context.Context, id string) error
}
