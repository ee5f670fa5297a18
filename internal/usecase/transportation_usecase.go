package usecase

import (
	"context"

	"columbus/internal/domain/entity"
)

// TransportationUsecase proxies route lookups to the directions provider.
type TransportationUsecase interface {
	Guidance(ctx context.Context, input *TransportationInput) (*entity.TransportationGuidance, error)
}

// TransportationInput holds the route query.
type TransportationInput struct {
	Origin      string `query:"origin" validate:"required,max=300"`
	Destination string `query:"destination" validate:"required,max=300"`
	Mode        string `query:"mode" validate:"omitempty,oneof=driving walking bicycling transit"`
}
