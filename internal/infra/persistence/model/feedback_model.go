package model

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackModel mirrors the 'feedback' table (rating CHECK 1..5).
type FeedbackModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID       *uuid.UUID `gorm:"type:uuid;index"`
	ItineraryID  *uuid.UUID `gorm:"type:uuid"`
	Rating       int        `gorm:"not null"`
	Comment      *string    `gorm:"type:text"`
	FeedbackType string     `gorm:"type:varchar(50);not null;default:general"`
	IsResolved   bool       `gorm:"not null;default:false"`
	ResolvedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (FeedbackModel) TableName() string {
	return "feedback"
}
