package ports

import (
	"context"

	"github.com/minusd/favorite-places/internal/core/domain"
)

// PlaceInput carries the editable fields of a favorite place.
type PlaceInput struct {
	Name        string
	Description string
}

// PlaceService defines use-case operations on a user's favorite places.
// Every mutating call checks that userID owns the place.
type PlaceService interface {
	List(ctx context.Context, userID string) ([]*domain.Place, error)
	Create(ctx context.Context, userID string, in PlaceInput) (*domain.Place, error)
	Update(ctx context.Context, placeID, userID string, in PlaceInput) (*domain.Place, error)
	Delete(ctx context.Context, placeID, userID string) error
}

type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Profile(ctx context.Context, username string) (*domain.User, error)
}
