package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "columbus/internal/delivery/context"
	"columbus/internal/domain/entity"
	domainerrors "columbus/internal/domain/errors"
	"columbus/internal/domain/repository"
	"columbus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	logger       *slog.Logger
	now          func() time.Time
}

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService(feedbackRepo repository.FeedbackRepository, logger *slog.Logger) usecase.FeedbackUsecase {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		logger:       logger,
		now:          time.Now,
	}
}

func (srv *feedbackService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *feedbackService) Submit(ctx context.Context, identity entity.Identity, input *usecase.SubmitFeedbackInput) (*entity.Feedback, error) {
	var invalid []string

	if !entity.IsValidRating(input.Rating) {
		invalid = append(invalid, "rating")
	}
	feedbackType := entity.FeedbackType(strings.ToLower(strings.TrimSpace(input.FeedbackType)))
	switch feedbackType {
	case "":
		feedbackType = entity.FeedbackTypeGeneral
	case entity.FeedbackTypeGeneral, entity.FeedbackTypeItinerary, entity.FeedbackTypeBug, entity.FeedbackTypeFeature:
	default:
		invalid = append(invalid, "feedbackType")
	}
	if len(invalid) > 0 {
		return nil, domainerrors.NewValidationError("invalid fields", invalid...)
	}

	userID := identity.UserID
	feedback := &entity.Feedback{
		ID:          uuid.New(),
		UserID:      &userID,
		ItineraryID: input.ItineraryID,
		Rating:      input.Rating,
		Comment:     strings.TrimSpace(input.Comment),
		Type:        feedbackType,
	}

	if err := srv.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, errors.Wrap(err, "failed to create feedback")
	}

	srv.log(ctx).Info("Feedback submitted",
		slog.String("feedbackID", feedback.ID.String()),
		slog.Int("rating", feedback.Rating),
	)

	return feedback, nil
}

// Resolve flips the resolution flag. Only support staff may resolve feedback.
func (srv *feedbackService) Resolve(ctx context.Context, identity entity.Identity, feedbackID uuid.UUID, resolved bool) (*entity.Feedback, error) {
	if !identity.HasRole(entity.RoleSupport) {
		return nil, domainerrors.ErrForbidden.WithMessage("Only support staff may resolve feedback")
	}

	var resolvedAt *time.Time
	if resolved {
		now := srv.now().UTC()
		resolvedAt = &now
	}

	feedback, err := srv.feedbackRepo.SetResolved(ctx, feedbackID, resolved, resolvedAt)
	if err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessage("Feedback not found")
		}

		return nil, errors.Wrap(err, "failed to resolve feedback")
	}

	return feedback, nil
}
