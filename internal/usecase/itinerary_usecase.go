package usecase

import (
	"context"
	"encoding/json"
	"time"

	"columbus/internal/domain/entity"

	"github.com/google/uuid"
)

// ItineraryUsecase defines the itinerary lifecycle operations.
type ItineraryUsecase interface {
	// Generate asks the text generator for a new itinerary document and stores it as a draft.
	Generate(ctx context.Context, identity entity.Identity, input *GenerateItineraryInput) (*GenerateItineraryOutput, error)

	// Get returns an itinerary visible to the caller.
	Get(ctx context.Context, identity entity.Identity, itineraryID uuid.UUID) (*entity.Itinerary, error)

	// ListDays returns the normalized day rows of an itinerary visible to the caller.
	ListDays(ctx context.Context, identity entity.Identity, itineraryID uuid.UUID) ([]*entity.ItineraryDay, error)

	// ShareQRCode renders the share code of an itinerary visible to the caller.
	ShareQRCode(ctx context.Context, identity entity.Identity, itineraryID uuid.UUID) ([]byte, error)

	// Update applies a whitelisted partial update on an itinerary owned by the caller.
	Update(ctx context.Context, identity entity.Identity, itineraryID uuid.UUID, input *UpdateItineraryInput) (*UpdateItineraryOutput, error)
}

// --- Input DTOs ---

// TripPreferences are per-request overrides of the stored preferences.
type TripPreferences struct {
	Activities          []string `json:"activities,omitempty" validate:"omitempty,max=20,dive,max=100"`
	AccommodationType   string   `json:"accommodationType,omitempty" validate:"omitempty,max=100"`
	DietaryRestrictions string   `json:"dietaryRestrictions,omitempty" validate:"omitempty,max=500"`
}

// GenerateItineraryInput defines the data required to generate an itinerary.
type GenerateItineraryInput struct {
	Destination    string           `json:"destination" validate:"required,max=200"`
	DurationDays   int              `json:"durationDays" validate:"required,min=1,max=30"`
	Budget         float64          `json:"budget" validate:"gte=0"`
	BudgetCurrency string           `json:"budgetCurrency,omitempty" validate:"omitempty,iso4217"`
	TravelStyle    string           `json:"travelStyle" validate:"required,travel_style"`
	StartDate      string           `json:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Preferences    *TripPreferences `json:"preferences,omitempty" validate:"omitempty"`

	// IdempotencyKey comes from the Idempotency-Key header, not the body.
	IdempotencyKey string `json:"-"`
}

// GenerateItineraryOutput is returned after a successful generation.
type GenerateItineraryOutput struct {
	ItineraryID uuid.UUID       `json:"itinerary_id"`
	Itinerary   json.RawMessage `json:"itinerary"`
	CreatedAt   time.Time       `json:"created_at"`
}

// UpdateItineraryInput carries the raw request fields; only whitelisted keys are applied.
type UpdateItineraryInput struct {
	Fields map[string]json.RawMessage
}

// UpdateItineraryOutput echoes the identifier and the new update timestamp.
type UpdateItineraryOutput struct {
	ItineraryID uuid.UUID `json:"itinerary_id"`
	UpdatedAt   time.Time `json:"updated_at"`
}
