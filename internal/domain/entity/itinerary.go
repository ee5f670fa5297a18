package entity

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/google/uuid"
)

// ItineraryStatus is the lifecycle state of an itinerary.
type ItineraryStatus string

const (
	ItineraryStatusDraft     ItineraryStatus = "draft"
	ItineraryStatusActive    ItineraryStatus = "active"
	ItineraryStatusCompleted ItineraryStatus = "completed"
	ItineraryStatusArchived  ItineraryStatus = "archived"
)

// itineraryTransitions is the strict lifecycle: draft -> active -> completed,
// and archived reachable from anywhere.
var itineraryTransitions = map[ItineraryStatus][]ItineraryStatus{
	ItineraryStatusDraft:     {ItineraryStatusActive, ItineraryStatusArchived},
	ItineraryStatusActive:    {ItineraryStatusCompleted, ItineraryStatusArchived},
	ItineraryStatusCompleted: {ItineraryStatusArchived},
	ItineraryStatusArchived:  {},
}

// IsValid reports whether the status is one of the known values.
func (s ItineraryStatus) IsValid() bool {
	_, ok := itineraryTransitions[s]

	return ok
}

// CanTransitionTo reports whether the strict lifecycle allows moving to next.
// Staying in the same status is always allowed.
func (s ItineraryStatus) CanTransitionTo(next ItineraryStatus) bool {
	if s == next {
		return true
	}

	return slices.Contains(itineraryTransitions[s], next)
}

// Itinerary is the central aggregate: a generated trip plan owned by one user.
// ItineraryData holds the full day-by-day document exactly as generated or last
// replaced by its owner; ItineraryDay rows are derived from it.
type Itinerary struct {
	ID                 uuid.UUID           `json:"id"`
	UserID             uuid.UUID           `json:"user_id"`
	Title              string              `json:"title"`
	DestinationID      *uuid.UUID          `json:"destination_id,omitempty"`
	DestinationName    string              `json:"destination_name"`
	StartDate          *time.Time          `json:"start_date,omitempty"`
	EndDate            *time.Time          `json:"end_date,omitempty"`
	DurationDays       int                 `json:"duration_days"`
	BudgetTotal        *float64            `json:"budget_total,omitempty"`
	BudgetCurrency     string              `json:"budget_currency"`
	TravelStyle        TravelStyle         `json:"travel_style"`
	Status             ItineraryStatus     `json:"status"`
	ItineraryData      json.RawMessage     `json:"itinerary_data"`
	AIModelVersion     string              `json:"ai_model_version,omitempty"`
	GenerationMetadata *GenerationMetadata `json:"generation_metadata,omitempty"`
	IsPublic           bool                `json:"is_public"`
	ViewCount          int                 `json:"view_count"`
	CompletedAt        *time.Time          `json:"completed_at,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

// IsOwnedBy reports whether userID owns the itinerary.
func (it *Itinerary) IsOwnedBy(userID uuid.UUID) bool {
	return it.UserID == userID
}

// IsVisibleTo reports whether userID may read the itinerary.
func (it *Itinerary) IsVisibleTo(userID uuid.UUID) bool {
	return it.IsOwnedBy(userID) || it.IsPublic
}

// GenerationMetadata records how an itinerary document was produced.
type GenerationMetadata struct {
	Model         string `json:"model"`
	GenerationMs  int64  `json:"generation_ms"`
	InputTokens   int    `json:"input_tokens"`
	OutputTokens  int    `json:"output_tokens"`
	PromptVersion string `json:"prompt_version"`
}

// ItineraryDay is the normalized breakout of one day of an itinerary document.
type ItineraryDay struct {
	ID             uuid.UUID       `json:"id"`
	ItineraryID    uuid.UUID       `json:"itinerary_id"`
	DayNumber      int             `json:"day_number"`
	Date           *time.Time      `json:"date,omitempty"`
	Title          string          `json:"title"`
	Activities     json.RawMessage `json:"activities,omitempty"`
	Meals          json.RawMessage `json:"meals,omitempty"`
	Transportation json.RawMessage `json:"transportation,omitempty"`
	DailyCost      json.RawMessage `json:"daily_cost,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ItineraryPatch is a validated whitelisted partial update.
// Nil fields are left untouched.
type ItineraryPatch struct {
	Title         *string
	StartDate     *time.Time
	EndDate       *time.Time
	Status        *ItineraryStatus
	ItineraryData json.RawMessage
	IsPublic      *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p *ItineraryPatch) IsEmpty() bool {
	return p == nil || (p.Title == nil && p.StartDate == nil && p.EndDate == nil &&
		p.Status == nil && p.ItineraryData == nil && p.IsPublic == nil)
}
