package repository

import (
	"context"
	"errors"

	"columbus/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDestinationNotFound is returned when a catalog entry does not exist.
var ErrDestinationNotFound = errors.New("destination not found")

// DestinationRepository reads the destination catalog.
type DestinationRepository interface {
	// Search returns catalog rows matching filter ordered by popularity score
	// descending, then name and id for a stable order.
	Search(ctx context.Context, filter entity.DestinationFilter) ([]*entity.Destination, error)

	// FindByID retrieves a destination by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Destination, error)

	// FindByName retrieves the most popular destination whose name matches case-insensitively.
	FindByName(ctx context.Context, name string) (*entity.Destination, error)
}
