package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/minusd/favorite-places/internal/core/domain"
	"github.com/minusd/favorite-places/internal/core/markup"
	"github.com/minusd/favorite-places/internal/core/ports"
)

type PlaceService struct {
	repo   ports.PlaceRepository
	logger zerolog.Logger
}

func NewPlaceService(repo ports.PlaceRepository, logger zerolog.Logger) *PlaceService {
	return &PlaceService{repo: repo, logger: logger}
}

func (s *PlaceService) List(ctx context.Context, userID string) ([]*domain.Place, error) {
	places, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}
	return places, nil
}

func (s *PlaceService) Create(ctx context.Context, userID string, in ports.PlaceInput) (*domain.Place, error) {
	if err := screenPlace(in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Place{
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to create place")
		return nil, fmt.Errorf("create place: %w", err)
	}

	s.logger.Info().Str("place_id", created.ID).Str("user_id", userID).Msg("place created")
	return created, nil
}

// Update replaces name and description of a place owned by userID.
func (s *PlaceService) Update(ctx context.Context, placeID, userID string, in ports.PlaceInput) (*domain.Place, error) {
	if err := screenPlace(in); err != nil {
		return nil, err
	}

	place, err := s.owned(ctx, placeID, userID)
	if err != nil {
		return nil, err
	}

	place.Name = in.Name
	place.Description = in.Description
	place.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, place)
	if err != nil {
		return nil, fmt.Errorf("update place: %w", err)
	}
	return updated, nil
}

func (s *PlaceService) Delete(ctx context.Context, placeID, userID string) error {
	if _, err := s.owned(ctx, placeID, userID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, placeID); err != nil {
		return fmt.Errorf("delete place: %w", err)
	}
	s.logger.Info().Str("place_id", placeID).Str("user_id", userID).Msg("place deleted")
	return nil
}

func (s *PlaceService) owned(ctx context.Context, placeID, userID string) (*domain.Place, error) {
	place, err := s.repo.FindByID(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if place.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return place, nil
}

func screenPlace(in ports.PlaceInput) error {
	if field, found := markup.FirstSuspicious(
		markup.Field{Name: "place_name", Value: in.Name},
		markup.Field{Name: "description", Value: in.Description},
	); found {
		return &domain.FieldError{Field: field}
	}
	return nil
}
