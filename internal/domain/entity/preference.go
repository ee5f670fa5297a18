package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserPreferences holds a user's saved travel defaults. There is at most one
// row per user and every save replaces it entirely.
type UserPreferences struct {
	ID                      uuid.UUID   `json:"id,omitempty"`
	UserID                  uuid.UUID   `json:"user_id"`
	TravelStyle             TravelStyle `json:"travel_style"`
	BudgetPreference        string      `json:"budget_preference"`
	AccommodationPreference string      `json:"accommodation_preference"`
	FoodPreference          string      `json:"food_preference"`
	ActivityPreferences     []string    `json:"activity_preferences"`
	AccessibilityNeeds      string      `json:"accessibility_needs"`
	DietaryRestrictions     string      `json:"dietary_restrictions"`
	CreatedAt               *time.Time  `json:"created_at,omitempty"`
	UpdatedAt               *time.Time  `json:"updated_at,omitempty"`
}

// DefaultUserPreferences is returned for users who never saved preferences.
func DefaultUserPreferences(userID uuid.UUID) *UserPreferences {
	return &UserPreferences{
		UserID:              userID,
		ActivityPreferences: []string{},
	}
}
