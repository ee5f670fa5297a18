package service

import (
	"context"

	"columbus/internal/domain/entity"
)

// DirectionsService looks up routes between two free-text places.
type DirectionsService interface {
	Directions(ctx context.Context, origin, destination string, mode entity.TravelMode) (*entity.TransportationGuidance, error)

	// Name identifies the provider in errors and metrics.
	Name() string
}
