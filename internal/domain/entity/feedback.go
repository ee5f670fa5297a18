package entity

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackType categorizes a feedback item.
type FeedbackType string

const (
	FeedbackTypeGeneral   FeedbackType = "general"
	FeedbackTypeItinerary FeedbackType = "itinerary"
	FeedbackTypeBug       FeedbackType = "bug"
	FeedbackTypeFeature   FeedbackType = "feature"
)

const (
	MinFeedbackRating = 1
	MaxFeedbackRating = 5
)

// Feedback is a rating with optional comment submitted by a user.
type Feedback struct {
	ID          uuid.UUID    `json:"id"`
	UserID      *uuid.UUID   `json:"user_id,omitempty"`
	ItineraryID *uuid.UUID   `json:"itinerary_id,omitempty"`
	Rating      int          `json:"rating"`
	Comment     string       `json:"comment,omitempty"`
	Type        FeedbackType `json:"feedback_type"`
	IsResolved  bool         `json:"is_resolved"`
	ResolvedAt  *time.Time   `json:"resolved_at,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// IsValidRating reports whether rating is within the accepted range.
func IsValidRating(rating int) bool {
	return rating >= MinFeedbackRating && rating <= MaxFeedbackRating
}
