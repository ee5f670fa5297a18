package entity

import (
	"time"

	"github.com/google/uuid"
)

// SavedPlace is a user bookmark of a named place, unique per (user, destination, place name).
type SavedPlace struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	DestinationID *uuid.UUID `json:"destination_id,omitempty"`
	PlaceName     string     `json:"place_name"`
	Notes         string     `json:"notes,omitempty"`
	IsVisited     bool       `json:"is_visited"`
	VisitedAt     *time.Time `json:"visited_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
