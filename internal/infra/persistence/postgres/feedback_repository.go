package postgres

import (
	"context"
	"time"

	"columbus/internal/domain/entity"
	domainerrors "columbus/internal/domain/errors"
	"columbus/internal/domain/repository"
	"columbus/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository is the constructor for feedbackRepository.
func NewFeedbackRepository(db *gorm.DB) repository.FeedbackRepository {
	return &feedbackRepository{
		db: db,
	}
}

func (repo *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	feedbackM := fromFeedbackDomain(feedback)
	if feedbackM.ID == uuid.Nil {
		feedbackM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(feedbackM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.NewValidationError("rating must be between 1 and 5", "rating")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewValidationError("unknown reference", "itinerary_id")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create feedback")
	}

	feedback.ID = feedbackM.ID
	feedback.CreatedAt = feedbackM.CreatedAt
	feedback.UpdatedAt = feedbackM.UpdatedAt

	return nil
}

func (repo *feedbackRepository) SetResolved(ctx context.Context, id uuid.UUID, resolved bool, resolvedAt *time.Time) (*entity.Feedback, error) {
	var feedbackM model.FeedbackModel

	result := repo.db.WithContext(ctx).
		Model(&feedbackM).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_resolved": resolved,
			"resolved_at": resolvedAt,
			"updated_at":  time.Now().UTC(),
		})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to resolve feedback")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrFeedbackNotFound
	}

	return toFeedbackDomain(&feedbackM), nil
}

// --- Mapper Functions ---

func toFeedbackDomain(data *model.FeedbackModel) *entity.Feedback {
	if data == nil {
		return nil
	}

	return &entity.Feedback{
		ID:          data.ID,
		UserID:      data.UserID,
		ItineraryID: data.ItineraryID,
		Rating:      data.Rating,
		Comment:     strVal(data.Comment),
		Type:        entity.FeedbackType(data.FeedbackType),
		IsResolved:  data.IsResolved,
		ResolvedAt:  data.ResolvedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromFeedbackDomain(data *entity.Feedback) *model.FeedbackModel {
	if data == nil {
		return nil
	}

	return &model.FeedbackModel{
		ID:           data.ID,
		UserID:       data.UserID,
		ItineraryID:  data.ItineraryID,
		Rating:       data.Rating,
		Comment:      strPtr(data.Comment),
		FeedbackType: string(data.Type),
		IsResolved:   data.IsResolved,
		ResolvedAt:   data.ResolvedAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
