package repository

import (
	"context"
	"errors"

	"columbus/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPreferencesNotFound is returned when a user never saved preferences.
var ErrPreferencesNotFound = errors.New("preferences not found")

// PreferenceRepository persists the single preference row of each user.
type PreferenceRepository interface {
	// FindByUserID retrieves the preferences of a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserPreferences, error)

	// Upsert atomically inserts or fully replaces the user's preference row,
	// guarded by the unique user_id constraint.
	Upsert(ctx context.Context, prefs *entity.UserPreferences) (*entity.UserPreferences, error)
}
