package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"columbus/internal/domain/entity"
	"columbus/internal/domain/repository"
	"columbus/internal/domain/service"
	mockRepo "columbus/internal/mocks/repository"
	mockSvc "columbus/internal/mocks/service"
	"columbus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSnapshotService(t *testing.T) (*snapshotService, *mockRepo.MockItineraryRepository, *mockSvc.MockItinerarySnapshotStore) {
	repo := mockRepo.NewMockItineraryRepository(t)
	store := mockSvc.NewMockItinerarySnapshotStore(t)
	svc := NewSnapshotService(repo, store, slog.New(slog.NewTextHandler(io.Discard, nil))).(*snapshotService)

	return svc, repo, store
}

func TestSnapshotService_Refresh(t *testing.T) {
	ctx := context.Background()
	itineraryID := uuid.New()
	event := &service.ItineraryEvent{EventType: service.EventItineraryUpdated, ItineraryID: itineraryID.String()}

	t.Run("writes the current row", func(t *testing.T) {
		svc, repo, store := createTestSnapshotService(t)
		itinerary := &entity.Itinerary{ID: itineraryID, Title: "Tokyo"}
		repo.EXPECT().FindByID(ctx, itineraryID).Return(itinerary, nil)
		store.EXPECT().Put(ctx, itinerary).Return(nil)

		require.NoError(t, svc.Refresh(ctx, event))
	})

	t.Run("deletes the snapshot of a removed itinerary", func(t *testing.T) {
		svc, repo, store := createTestSnapshotService(t)
		repo.EXPECT().FindByID(ctx, itineraryID).Return(nil, repository.ErrItineraryNotFound)
		store.EXPECT().Delete(ctx, itineraryID).Return(nil)

		require.NoError(t, svc.Refresh(ctx, event))
	})

	t.Run("store failure is returned", func(t *testing.T) {
		svc, repo, store := createTestSnapshotService(t)
		repo.EXPECT().FindByID(ctx, itineraryID).Return(&entity.Itinerary{ID: itineraryID}, nil)
		store.EXPECT().Put(ctx, &entity.Itinerary{ID: itineraryID}).Return(errors.New("READONLY"))

		err := svc.Refresh(ctx, event)

		require.Error(t, err)
		assert.False(t, errors.Is(err, usecase.ErrMalformedEvent))
	})

	t.Run("malformed id", func(t *testing.T) {
		svc, _, _ := createTestSnapshotService(t)

		err := svc.Refresh(ctx, &service.ItineraryEvent{ItineraryID: "not-a-uuid"})

		assert.True(t, errors.Is(err, usecase.ErrMalformedEvent))
	})
}
