package impl

import (
	"context"
	"log/slog"

	deliverycontext "columbus/internal/delivery/context"
	"columbus/internal/domain/repository"
	"columbus/internal/domain/service"
	"columbus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type snapshotService struct {
	itineraryRepo repository.ItineraryRepository
	snapshots     service.ItinerarySnapshotStore
	logger        *slog.Logger
}

// NewSnapshotService creates a new snapshot service instance
func NewSnapshotService(
	itineraryRepo repository.ItineraryRepository,
	snapshots service.ItinerarySnapshotStore,
	logger *slog.Logger,
) usecase.SnapshotUsecase {
	return &snapshotService{
		itineraryRepo: itineraryRepo,
		snapshots:     snapshots,
		logger:        logger,
	}
}

func (srv *snapshotService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Refresh rewrites the snapshot from the relational row. Redelivered or
// out-of-order events are harmless since the current row is always reloaded.
func (srv *snapshotService) Refresh(ctx context.Context, event *service.ItineraryEvent) error {
	itineraryID, err := uuid.Parse(event.ItineraryID)
	if err != nil {
		return errors.Wrapf(usecase.ErrMalformedEvent, "invalid itinerary id %q", event.ItineraryID)
	}

	logger := srv.log(ctx).With(
		slog.String("eventType", event.EventType),
		slog.String("itineraryID", itineraryID.String()),
	)

	itinerary, err := srv.itineraryRepo.FindByID(ctx, itineraryID)
	if err != nil {
		if errors.Is(err, repository.ErrItineraryNotFound) {
			if err := srv.snapshots.Delete(ctx, itineraryID); err != nil {
				return errors.Wrap(err, "failed to delete itinerary snapshot")
			}
			logger.Info("Itinerary gone, snapshot deleted")

			return nil
		}

		return errors.Wrap(err, "failed to load itinerary")
	}

	if err := srv.snapshots.Put(ctx, itinerary); err != nil {
		return errors.Wrap(err, "failed to write itinerary snapshot")
	}

	logger.Info("Itinerary snapshot refreshed")

	return nil
}
