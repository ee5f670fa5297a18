package usecase

import (
	"context"

	"columbus/internal/domain/entity"
)

// PreferenceUsecase reads and replaces the caller's saved travel defaults.
type PreferenceUsecase interface {
	// GetPreferences never fails with not found; users without a row get defaults.
	GetPreferences(ctx context.Context, identity entity.Identity) (*entity.UserPreferences, error)

	// SavePreferences replaces the stored row entirely.
	SavePreferences(ctx context.Context, identity entity.Identity, input *SavePreferencesInput) (*entity.UserPreferences, error)
}

// SavePreferencesInput is the full replacement preference row.
type SavePreferencesInput struct {
	TravelStyle             string   `json:"travel_style" validate:"omitempty,travel_style"`
	BudgetPreference        string   `json:"budget_preference" validate:"omitempty,oneof=budget moderate luxury"`
	AccommodationPreference string   `json:"accommodation_preference" validate:"omitempty,max=100"`
	FoodPreference          string   `json:"food_preference" validate:"omitempty,max=100"`
	ActivityPreferences     []string `json:"activity_preferences" validate:"omitempty,max=50,dive,max=100"`
	AccessibilityNeeds      string   `json:"accessibility_needs" validate:"omitempty,max=1000"`
	DietaryRestrictions     string   `json:"dietary_restrictions" validate:"omitempty,max=1000"`
}
