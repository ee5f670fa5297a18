package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "columbus/internal/delivery/context"
	"columbus/internal/domain/entity"
	domainerrors "columbus/internal/domain/errors"
	"columbus/internal/domain/service"
	"columbus/internal/usecase"
)

type transportationService struct {
	directions service.DirectionsService
	logger     *slog.Logger
}

// NewTransportationService creates a new transportation service instance
func NewTransportationService(directions service.DirectionsService, logger *slog.Logger) usecase.TransportationUsecase {
	return &transportationService{
		directions: directions,
		logger:     logger,
	}
}

func (srv *transportationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Guidance returns the provider's routes between origin and destination.
// An empty route list is reported as not found.
func (srv *transportationService) Guidance(ctx context.Context, input *usecase.TransportationInput) (*entity.TransportationGuidance, error) {
	var invalid []string

	origin := strings.TrimSpace(input.Origin)
	if origin == "" {
		invalid = append(invalid, "origin")
	}
	destination := strings.TrimSpace(input.Destination)
	if destination == "" {
		invalid = append(invalid, "destination")
	}
	mode := entity.TravelMode(strings.ToLower(strings.TrimSpace(input.Mode)))
	if mode == "" {
		mode = entity.TravelModeTransit
	} else if !mode.IsValid() {
		invalid = append(invalid, "mode")
	}
	if len(invalid) > 0 {
		return nil, domainerrors.NewValidationError("invalid or missing fields", invalid...)
	}

	guidance, err := srv.directions.Directions(ctx, origin, destination, mode)
	if err != nil {
		return nil, domainerrors.NewUpstreamError(srv.directions.Name(), err)
	}
	if len(guidance.Routes) == 0 {
		return nil, domainerrors.ErrNotFound.WithMessage("No routes found between origin and destination")
	}

	srv.log(ctx).Debug("Directions resolved",
		slog.String("mode", string(mode)),
		slog.Int("routes", len(guidance.Routes)),
	)

	return guidance, nil
}
