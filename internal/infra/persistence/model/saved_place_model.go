package model

import (
	"time"

	"github.com/google/uuid"
)

// SavedPlaceModel mirrors the 'saved_places' table,
// UNIQUE (user_id, destination_id, place_name).
type SavedPlaceModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	DestinationID *uuid.UUID `gorm:"type:uuid"`
	PlaceName     string     `gorm:"type:varchar(255);not null"`
	Notes         *string    `gorm:"type:text"`
	IsVisited     bool       `gorm:"not null;default:false"`
	VisitedAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (SavedPlaceModel) TableName() string {
	return "saved_places"
}
