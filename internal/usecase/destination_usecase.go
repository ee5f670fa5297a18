package usecase

import (
	"context"

	"columbus/internal/domain/entity"
)

// DestinationUsecase suggests destinations from the catalog, optionally
// supplemented by the text generator.
type DestinationUsecase interface {
	Suggest(ctx context.Context, input *SuggestDestinationsInput) ([]*entity.DestinationSuggestion, error)
}

// SuggestDestinationsInput holds the optional query filters.
type SuggestDestinationsInput struct {
	Budget      *float64 `query:"budget" validate:"omitempty,gte=0"`
	TravelStyle string   `query:"travelStyle" validate:"omitempty,travel_style"`
	Limit       int      `query:"limit" validate:"omitempty,min=1,max=20"`
}
