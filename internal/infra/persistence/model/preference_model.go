package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserPreferenceModel mirrors the 'user_preferences' table (UNIQUE user_id).
type UserPreferenceModel struct {
	ID                      uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID                  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	TravelStyle             *string        `gorm:"type:varchar(50)"`
	BudgetPreference        *string        `gorm:"type:varchar(50)"`
	AccommodationPreference *string        `gorm:"type:varchar(50)"`
	FoodPreference          *string        `gorm:"type:varchar(50)"`
	ActivityPreferences     datatypes.JSON `gorm:"type:jsonb"`
	AccessibilityNeeds      *string        `gorm:"type:text"`
	DietaryRestrictions     *string        `gorm:"type:text"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserPreferenceModel) TableName() string {
	return "user_preferences"
}
