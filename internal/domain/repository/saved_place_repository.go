package repository

import (
	"context"
	"errors"
	"time"

	"columbus/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSavedPlaceNotFound is returned when a bookmark does not exist.
var ErrSavedPlaceNotFound = errors.New("saved place not found")

// SavedPlaceRepository persists user bookmarks.
type SavedPlaceRepository interface {
	// Upsert inserts a bookmark or refreshes the notes of the existing one with
	// the same (user, destination, place name).
	Upsert(ctx context.Context, place *entity.SavedPlace) (*entity.SavedPlace, error)

	// FindByID retrieves a bookmark.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SavedPlace, error)

	// ListByUser returns a user's bookmarks, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SavedPlace, error)

	// SetVisited flips the visited flag; visitedAt is nil when clearing it.
	SetVisited(ctx context.Context, id uuid.UUID, visited bool, visitedAt *time.Time) (*entity.SavedPlace, error)
}
