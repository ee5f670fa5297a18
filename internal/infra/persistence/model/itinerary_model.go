package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ItineraryModel mirrors the 'itineraries' table. itinerary_data holds the
// generated document verbatim.
type ItineraryModel struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID             uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title              string         `gorm:"type:varchar(255);not null"`
	DestinationID      *uuid.UUID     `gorm:"type:uuid;index"`
	DestinationName    string         `gorm:"type:varchar(255);not null"`
	StartDate          *time.Time     `gorm:"type:date"`
	EndDate            *time.Time     `gorm:"type:date"`
	DurationDays       int            `gorm:"not null"`
	BudgetTotal        *float64       `gorm:"type:decimal(10,2)"`
	BudgetCurrency     string         `gorm:"type:varchar(3);default:USD"`
	TravelStyle        *string        `gorm:"type:varchar(50)"`
	Status             string         `gorm:"type:varchar(50);default:draft;index"`
	ItineraryData      datatypes.JSON `gorm:"type:jsonb;not null"`
	AIModelVersion     *string        `gorm:"column:ai_model_version;type:varchar(50)"`
	GenerationMetadata datatypes.JSON `gorm:"type:jsonb"`
	IsPublic           bool           `gorm:"not null;default:false"`
	ViewCount          int            `gorm:"not null;default:0"`
	CompletedAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Days []ItineraryDayModel `gorm:"foreignKey:ItineraryID"`
}

// TableName explicitly sets the table name for GORM.
func (ItineraryModel) TableName() string {
	return "itineraries"
}

// ItineraryDayModel mirrors the 'itinerary_days' table, derived from itinerary_data.
type ItineraryDayModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ItineraryID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_itinerary_days_number"`
	DayNumber      int            `gorm:"not null;uniqueIndex:idx_itinerary_days_number"`
	Date           *time.Time     `gorm:"type:date"`
	Title          string         `gorm:"type:varchar(255)"`
	Activities     datatypes.JSON `gorm:"type:jsonb"`
	Meals          datatypes.JSON `gorm:"type:jsonb"`
	Transportation datatypes.JSON `gorm:"type:jsonb"`
	DailyCost      datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ItineraryDayModel) TableName() string {
	return "itinerary_days"
}
