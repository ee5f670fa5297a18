package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"columbus/internal/domain/entity"
	domainerrors "columbus/internal/domain/errors"
	"columbus/internal/domain/repository"
	"columbus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type savedPlaceService struct {
	savedPlaceRepo  repository.SavedPlaceRepository
	destinationRepo repository.DestinationRepository
	logger          *slog.Logger
	now             func() time.Time
}

// NewSavedPlaceService creates a new saved place service instance
func NewSavedPlaceService(
	savedPlaceRepo repository.SavedPlaceRepository,
	destinationRepo repository.DestinationRepository,
	logger *slog.Logger,
) usecase.SavedPlaceUsecase {
	return &savedPlaceService{
		savedPlaceRepo:  savedPlaceRepo,
		destinationRepo: destinationRepo,
		logger:          logger,
		now:             time.Now,
	}
}

// Save bookmarks a place. Saving the same place twice refreshes its notes.
func (srv *savedPlaceService) Save(ctx context.Context, identity entity.Identity, input *usecase.SavePlaceInput) (*entity.SavedPlace, error) {
	placeName := strings.TrimSpace(input.PlaceName)
	if placeName == "" {
		return nil, domainerrors.NewValidationError("invalid or missing fields", "placeName")
	}

	if input.DestinationID != nil {
		if _, err := srv.destinationRepo.FindByID(ctx, *input.DestinationID); err != nil {
			if errors.Is(err, repository.ErrDestinationNotFound) {
				return nil, domainerrors.NewValidationError("unknown destination", "destinationId")
			}

			return nil, errors.Wrap(err, "failed to find destination")
		}
	}

	place, err := srv.savedPlaceRepo.Upsert(ctx, &entity.SavedPlace{
		ID:            uuid.New(),
		UserID:        identity.UserID,
		DestinationID: input.DestinationID,
		PlaceName:     placeName,
		Notes:         strings.TrimSpace(input.Notes),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save place")
	}

	return place, nil
}

func (srv *savedPlaceService) List(ctx context.Context, identity entity.Identity) ([]*entity.SavedPlace, error) {
	places, err := srv.savedPlaceRepo.ListByUser(ctx, identity.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list saved places")
	}

	return places, nil
}

// SetVisited marks a bookmark of the caller as visited or not visited.
func (srv *savedPlaceService) SetVisited(ctx context.Context, identity entity.Identity, placeID uuid.UUID, visited bool) (*entity.SavedPlace, error) {
	place, err := srv.savedPlaceRepo.FindByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, repository.ErrSavedPlaceNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessage("Saved place not found")
		}

		return nil, errors.Wrap(err, "failed to find saved place")
	}
	if place.UserID != identity.UserID {
		return nil, domainerrors.ErrForbidden.WithMessage("You do not own this saved place")
	}

	var visitedAt *time.Time
	if visited {
		now := srv.now().UTC()
		visitedAt = &now
	}

	updated, err := srv.savedPlaceRepo.SetVisited(ctx, placeID, visited, visitedAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update saved place")
	}

	srv.logger.DebugContext(ctx, "Saved place visit flag changed",
		slog.String("placeID", placeID.String()),
		slog.Bool("visited", visited),
	)

	return updated, nil
}
