package usecase

import (
	"context"

	"columbus/internal/domain/entity"

	"github.com/google/uuid"
)

// FeedbackUsecase collects ratings and lets support staff resolve them.
type FeedbackUsecase interface {
	Submit(ctx context.Context, identity entity.Identity, input *SubmitFeedbackInput) (*entity.Feedback, error)
	Resolve(ctx context.Context, identity entity.Identity, feedbackID uuid.UUID, resolved bool) (*entity.Feedback, error)
}

// SubmitFeedbackInput is one feedback submission.
type SubmitFeedbackInput struct {
	Rating       int        `json:"rating" validate:"required,min=1,max=5"`
	Comment      string     `json:"comment,omitempty" validate:"omitempty,max=4000"`
	FeedbackType string     `json:"feedbackType,omitempty" validate:"omitempty,oneof=general itinerary bug feature"`
	ItineraryID  *uuid.UUID `json:"itineraryId,omitempty"`
}
