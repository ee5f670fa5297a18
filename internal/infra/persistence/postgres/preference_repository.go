package postgres

import (
	"context"

	"columbus/internal/domain/entity"
	domainerrors "columbus/internal/domain/errors"
	"columbus/internal/domain/repository"
	"columbus/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// preferenceReplacedColumns are overwritten wholesale on every save.
var preferenceReplacedColumns = []string{
	"travel_style",
	"budget_preference",
	"accommodation_preference",
	"food_preference",
	"activity_preferences",
	"accessibility_needs",
	"dietary_restrictions",
	"updated_at",
}

type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(db *gorm.DB) repository.PreferenceRepository {
	return &preferenceRepository{
		db: db,
	}
}

func (repo *preferenceRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserPreferences, error) {
	var prefM model.UserPreferenceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&prefM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreferencesNotFound
		}

		return nil, errors.Wrap(err, "failed to find preferences by user")
	}

	return toPreferenceDomain(&prefM), nil
}

// Upsert relies on the unique user_id index so two concurrent first saves
// collapse into one row instead of racing a read-then-insert.
func (repo *preferenceRepository) Upsert(ctx context.Context, prefs *entity.UserPreferences) (*entity.UserPreferences, error) {
	prefM := fromPreferenceDomain(prefs)
	if prefM.ID == uuid.Nil {
		prefM.ID = uuid.New()
	}

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}},
				DoUpdates: clause.AssignmentColumns(preferenceReplacedColumns),
			},
			clause.Returning{},
		).
		Create(prefM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert preferences")
	}

	return toPreferenceDomain(prefM), nil
}

// --- Mapper Functions ---

func toPreferenceDomain(data *model.UserPreferenceModel) *entity.UserPreferences {
	if data == nil {
		return nil
	}
	createdAt, updatedAt := data.CreatedAt, data.UpdatedAt

	return &entity.UserPreferences{
		ID:                      data.ID,
		UserID:                  data.UserID,
		TravelStyle:             entity.TravelStyle(strVal(data.TravelStyle)),
		BudgetPreference:        strVal(data.BudgetPreference),
		AccommodationPreference: strVal(data.AccommodationPreference),
		FoodPreference:          strVal(data.FoodPreference),
		ActivityPreferences:     fromJSONColumn[string](data.ActivityPreferences),
		AccessibilityNeeds:      strVal(data.AccessibilityNeeds),
		DietaryRestrictions:     strVal(data.DietaryRestrictions),
		CreatedAt:               &createdAt,
		UpdatedAt:               &updatedAt,
	}
}

func fromPreferenceDomain(data *entity.UserPreferences) *model.UserPreferenceModel {
	if data == nil {
		return nil
	}

	return &model.UserPreferenceModel{
		ID:                      data.ID,
		UserID:                  data.UserID,
		TravelStyle:             strPtr(string(data.TravelStyle)),
		BudgetPreference:        strPtr(data.BudgetPreference),
		AccommodationPreference: strPtr(data.AccommodationPreference),
		FoodPreference:          strPtr(data.FoodPreference),
		ActivityPreferences:     toJSONColumn(data.ActivityPreferences),
		AccessibilityNeeds:      strPtr(data.AccessibilityNeeds),
		DietaryRestrictions:     strPtr(data.DietaryRestrictions),
	}
}
