package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"columbus/internal/domain/entity"
	domainerrors "columbus/internal/domain/errors"
	mockSvc "columbus/internal/mocks/service"
	"columbus/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestTransportationService(t *testing.T) (usecase.TransportationUsecase, *mockSvc.MockDirectionsService) {
	directions := mockSvc.NewMockDirectionsService(t)

	return NewTransportationService(directions, slog.New(slog.NewTextHandler(io.Discard, nil))), directions
}

func TestTransportationService_Guidance(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to transit", func(t *testing.T) {
		svc, directions := createTestTransportationService(t)
		directions.EXPECT().Directions(ctx, "Shinjuku Station", "Tokyo Tower", entity.TravelModeTransit).
			Return(&entity.TransportationGuidance{
				Origin:      "Shinjuku Station",
				Destination: "Tokyo Tower",
				Mode:        entity.TravelModeTransit,
				Routes:      []entity.RouteGuide{{Summary: "Oedo Line", DurationSeconds: 1500}},
			}, nil)

		guidance, err := svc.Guidance(ctx, &usecase.TransportationInput{Origin: " Shinjuku Station ", Destination: "Tokyo Tower"})

		require.NoError(t, err)
		require.Len(t, guidance.Routes, 1)
		assert.Equal(t, "Oedo Line", guidance.Routes[0].Summary)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc, _ := createTestTransportationService(t)

		_, err := svc.Guidance(ctx, &usecase.TransportationInput{Mode: "teleport"})

		require.True(t, errors.Is(err, domainerrors.ErrValidation))
		assert.Equal(t, "invalid or missing fields: origin, destination, mode", domainerrors.AsAppError(err).Message())
	})

	t.Run("no routes", func(t *testing.T) {
		svc, directions := createTestTransportationService(t)
		directions.EXPECT().Directions(ctx, "Tokyo", "Honolulu", entity.TravelModeDriving).
			Return(&entity.TransportationGuidance{Mode: entity.TravelModeDriving}, nil)

		_, err := svc.Guidance(ctx, &usecase.TransportationInput{Origin: "Tokyo", Destination: "Honolulu", Mode: "DRIVING"})

		assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	})

	t.Run("provider failure", func(t *testing.T) {
		svc, directions := createTestTransportationService(t)
		directions.EXPECT().Directions(ctx, "A", "B", entity.TravelModeWalking).Return(nil, errors.New("REQUEST_DENIED"))
		directions.EXPECT().Name().Return("googlemaps")

		_, err := svc.Guidance(ctx, &usecase.TransportationInput{Origin: "A", Destination: "B", Mode: "walking"})

		require.Error(t, err)
		appErr := domainerrors.AsAppError(err)
		assert.Equal(t, domainerrors.CodeUpstream, appErr.ErrorCode())
		assert.Equal(t, "REQUEST_DENIED", appErr.Details())
	})
}
