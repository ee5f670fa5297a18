package repository

import (
	"context"
	"errors"
	"time"

	"columbus/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFeedbackNotFound is returned when a feedback item does not exist.
var ErrFeedbackNotFound = errors.New("feedback not found")

// FeedbackRepository persists feedback items.
type FeedbackRepository interface {
	// Create persists a new feedback item.
	Create(ctx context.Context, feedback *entity.Feedback) error

	// SetResolved flips the resolution flag; resolvedAt is nil when reopening.
	SetResolved(ctx context.Context, id uuid.UUID, resolved bool, resolvedAt *time.Time) (*entity.Feedback, error)
}
