package usecase

import (
	"context"

	"columbus/internal/domain/entity"

	"github.com/google/uuid"
)

// SavedPlaceUsecase manages the caller's bookmarks.
type SavedPlaceUsecase interface {
	Save(ctx context.Context, identity entity.Identity, input *SavePlaceInput) (*entity.SavedPlace, error)
	List(ctx context.Context, identity entity.Identity) ([]*entity.SavedPlace, error)
	SetVisited(ctx context.Context, identity entity.Identity, placeID uuid.UUID, visited bool) (*entity.SavedPlace, error)
}

// SavePlaceInput is one bookmark.
type SavePlaceInput struct {
	DestinationID *uuid.UUID `json:"destinationId,omitempty"`
	PlaceName     string     `json:"placeName" validate:"required,max=255"`
	Notes         string     `json:"notes,omitempty" validate:"omitempty,max=2000"`
}
