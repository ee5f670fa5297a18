package postgres

import (
	"context"
	"encoding/json"
	"time"

	"columbus/internal/domain/entity"
	domainerrors "columbus/internal/domain/errors"
	"columbus/internal/domain/repository"
	"columbus/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// itineraryMutableColumns are the only columns Update ever writes.
var itineraryMutableColumns = []string{
	"title",
	"start_date",
	"end_date",
	"duration_days",
	"status",
	"itinerary_data",
	"is_public",
	"completed_at",
	"updated_at",
}

type itineraryRepository struct {
	db *gorm.DB
}

// NewItineraryRepository is the constructor for itineraryRepository.
func NewItineraryRepository(db *gorm.DB) repository.ItineraryRepository {
	return &itineraryRepository{
		db: db,
	}
}

func (repo *itineraryRepository) Create(ctx context.Context, itinerary *entity.Itinerary) error {
	itineraryM := fromItineraryDomain(itinerary)
	if itineraryM.ID == uuid.Nil {
		itineraryM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Omit("Days").Create(itineraryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewValidationError("unknown reference", "user_id", "destination_id")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.NewValidationError("itinerary is incomplete")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create itinerary")
	}

	itinerary.ID = itineraryM.ID
	itinerary.CreatedAt = itineraryM.CreatedAt
	itinerary.UpdatedAt = itineraryM.UpdatedAt

	return nil
}

// FindByID pins the read to the primary: a client that just received a
// generated id must be able to read it back even when replicas lag.
func (repo *itineraryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Itinerary, error) {
	var itineraryM model.ItineraryModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&itineraryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItineraryNotFound
		}

		return nil, errors.Wrap(err, "failed to find itinerary by ID")
	}

	return toItineraryDomain(&itineraryM), nil
}

// FindByIDForUpdate takes a row lock so concurrent patches of the same
// itinerary apply one after the other instead of overwriting each other.
func (repo *itineraryRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Itinerary, error) {
	var itineraryM model.ItineraryModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&itineraryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItineraryNotFound
		}

		return nil, errors.Wrap(err, "failed to lock itinerary")
	}

	return toItineraryDomain(&itineraryM), nil
}

func (repo *itineraryRepository) Update(ctx context.Context, itinerary *entity.Itinerary) error {
	itineraryM := fromItineraryDomain(itinerary)
	itineraryM.UpdatedAt = time.Now().UTC()

	result := repo.db.WithContext(ctx).
		Model(&model.ItineraryModel{ID: itinerary.ID}).
		Select(itineraryMutableColumns).
		Updates(itineraryM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update itinerary")
	}
	if result.RowsAffected == 0 {
		return repository.ErrItineraryNotFound
	}
	itinerary.UpdatedAt = itineraryM.UpdatedAt

	return nil
}

func (repo *itineraryRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ItineraryModel{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment view count")
	}
	if result.RowsAffected == 0 {
		return repository.ErrItineraryNotFound
	}

	return nil
}

// ReplaceDays is expected to run inside a transaction together with the
// itinerary update that produced days.
func (repo *itineraryRepository) ReplaceDays(ctx context.Context, itineraryID uuid.UUID, days []*entity.ItineraryDay) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("itinerary_id = ?", itineraryID).Delete(&model.ItineraryDayModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete itinerary days")
	}
	if len(days) == 0 {
		return nil
	}

	dayModels := make([]*model.ItineraryDayModel, 0, len(days))
	for _, day := range days {
		dayM := fromItineraryDayDomain(day)
		dayM.ItineraryID = itineraryID
		if dayM.ID == uuid.Nil {
			dayM.ID = uuid.New()
		}
		dayModels = append(dayModels, dayM)
	}

	if err := db.Create(&dayModels).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewValidationError("duplicate day number", "itinerary_data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert itinerary days")
	}

	return nil
}

func (repo *itineraryRepository) ListDays(ctx context.Context, itineraryID uuid.UUID) ([]*entity.ItineraryDay, error) {
	var dayModels []*model.ItineraryDayModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("itinerary_id = ?", itineraryID).
		Order("day_number ASC").
		Find(&dayModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list itinerary days")
	}

	days := make([]*entity.ItineraryDay, 0, len(dayModels))
	for _, dayM := range dayModels {
		days = append(days, toItineraryDayDomain(dayM))
	}

	return days, nil
}

// --- Mapper Functions ---

func toItineraryDomain(data *model.ItineraryModel) *entity.Itinerary {
	if data == nil {
		return nil
	}

	itinerary := &entity.Itinerary{
		ID:              data.ID,
		UserID:          data.UserID,
		Title:           data.Title,
		DestinationID:   data.DestinationID,
		DestinationName: data.DestinationName,
		StartDate:       data.StartDate,
		EndDate:         data.EndDate,
		DurationDays:    data.DurationDays,
		BudgetTotal:     data.BudgetTotal,
		BudgetCurrency:  data.BudgetCurrency,
		TravelStyle:     entity.TravelStyle(strVal(data.TravelStyle)),
		Status:          entity.ItineraryStatus(data.Status),
		ItineraryData:   columnToRaw(data.ItineraryData),
		AIModelVersion:  strVal(data.AIModelVersion),
		IsPublic:        data.IsPublic,
		ViewCount:       data.ViewCount,
		CompletedAt:     data.CompletedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	if raw := columnToRaw(data.GenerationMetadata); raw != nil {
		var meta entity.GenerationMetadata
		if err := json.Unmarshal(raw, &meta); err == nil {
			itinerary.GenerationMetadata = &meta
		}
	}

	return itinerary
}

func fromItineraryDomain(data *entity.Itinerary) *model.ItineraryModel {
	if data == nil {
		return nil
	}

	itineraryM := &model.ItineraryModel{
		ID:              data.ID,
		UserID:          data.UserID,
		Title:           data.Title,
		DestinationID:   data.DestinationID,
		DestinationName: data.DestinationName,
		StartDate:       data.StartDate,
		EndDate:         data.EndDate,
		DurationDays:    data.DurationDays,
		BudgetTotal:     data.BudgetTotal,
		BudgetCurrency:  data.BudgetCurrency,
		TravelStyle:     strPtr(data.TravelStyle.String()),
		Status:          string(data.Status),
		ItineraryData:   rawToColumn(data.ItineraryData),
		AIModelVersion:  strPtr(data.AIModelVersion),
		IsPublic:        data.IsPublic,
		ViewCount:       data.ViewCount,
		CompletedAt:     data.CompletedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	if data.GenerationMetadata != nil {
		if raw, err := json.Marshal(data.GenerationMetadata); err == nil {
			itineraryM.GenerationMetadata = datatypes.JSON(raw)
		}
	}

	return itineraryM
}

func toItineraryDayDomain(data *model.ItineraryDayModel) *entity.ItineraryDay {
	if data == nil {
		return nil
	}

	return &entity.ItineraryDay{
		ID:             data.ID,
		ItineraryID:    data.ItineraryID,
		DayNumber:      data.DayNumber,
		Date:           data.Date,
		Title:          data.Title,
		Activities:     columnToRaw(data.Activities),
		Meals:          columnToRaw(data.Meals),
		Transportation: columnToRaw(data.Transportation),
		DailyCost:      columnToRaw(data.DailyCost),
		CreatedAt:      data.CreatedAt,
	}
}

func fromItineraryDayDomain(data *entity.ItineraryDay) *model.ItineraryDayModel {
	if data == nil {
		return nil
	}

	return &model.ItineraryDayModel{
		ID:             data.ID,
		ItineraryID:    data.ItineraryID,
		DayNumber:      data.DayNumber,
		Date:           data.Date,
		Title:          data.Title,
		Activities:     rawToColumn(data.Activities),
		Meals:          rawToColumn(data.Meals),
		Transportation: rawToColumn(data.Transportation),
		DailyCost:      rawToColumn(data.DailyCost),
		CreatedAt:      data.CreatedAt,
	}
}
