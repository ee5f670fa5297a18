package usecase

import (
	"context"

	"columbus/internal/domain/service"

	"github.com/pkg/errors"
)

// ErrMalformedEvent is returned for events that can never be processed.
var ErrMalformedEvent = errors.New("malformed itinerary event")

// SnapshotUsecase keeps the key-value itinerary snapshot in line with the relational store.
type SnapshotUsecase interface {
	// Refresh reloads the itinerary named by event and rewrites its snapshot,
	// or deletes the snapshot when the itinerary no longer exists.
	Refresh(ctx context.Context, event *service.ItineraryEvent) error
}
