package repository

import (
	"context"
	"errors"

	"columbus/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrItineraryNotFound is returned when an itinerary does not exist.
var ErrItineraryNotFound = errors.New("itinerary not found")

// ItineraryRepository persists itineraries and their derived day rows.
type ItineraryRepository interface {
	// Create persists a new itinerary.
	Create(ctx context.Context, itinerary *entity.Itinerary) error

	// FindByID retrieves an itinerary, reading from the primary so a freshly
	// created row is always visible.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Itinerary, error)

	// FindByIDForUpdate retrieves an itinerary and locks its row until the
	// surrounding transaction ends. Only meaningful inside TransactionManager.Execute.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Itinerary, error)

	// Update writes the mutable columns of itinerary and refreshes its UpdatedAt.
	Update(ctx context.Context, itinerary *entity.Itinerary) error

	// IncrementViewCount bumps the view counter by one.
	IncrementViewCount(ctx context.Context, id uuid.UUID) error

	// ReplaceDays deletes the itinerary's day rows and inserts days in their place.
	ReplaceDays(ctx context.Context, itineraryID uuid.UUID, days []*entity.ItineraryDay) error

	// ListDays returns the day rows ordered by day number.
	ListDays(ctx context.Context, itineraryID uuid.UUID) ([]*entity.ItineraryDay, error)
}
