package postgres

import (
	"context"
	"time"

	"columbus/internal/domain/entity"
	domainerrors "columbus/internal/domain/errors"
	"columbus/internal/domain/repository"
	"columbus/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type savedPlaceRepository struct {
	db *gorm.DB
}

// NewSavedPlaceRepository is the constructor for savedPlaceRepository.
func NewSavedPlaceRepository(db *gorm.DB) repository.SavedPlaceRepository {
	return &savedPlaceRepository{
		db: db,
	}
}

// Upsert keys on (user_id, destination_id, place_name). Saving the same place
// twice only refreshes its notes.
func (repo *savedPlaceRepository) Upsert(ctx context.Context, place *entity.SavedPlace) (*entity.SavedPlace, error) {
	placeM := fromSavedPlaceDomain(place)
	if placeM.ID == uuid.Nil {
		placeM.ID = uuid.New()
	}

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{
					{Name: "user_id"},
					{Name: "destination_id"},
					{Name: "place_name"},
				},
				DoUpdates: clause.AssignmentColumns([]string{"notes", "updated_at"}),
			},
			clause.Returning{},
		).
		Create(placeM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.NewValidationError("unknown destination", "destination_id")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to save place")
	}

	return toSavedPlaceDomain(placeM), nil
}

func (repo *savedPlaceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SavedPlace, error) {
	var placeM model.SavedPlaceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&placeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSavedPlaceNotFound
		}

		return nil, errors.Wrap(err, "failed to find saved place by ID")
	}

	return toSavedPlaceDomain(&placeM), nil
}

func (repo *savedPlaceRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SavedPlace, error) {
	var placeModels []*model.SavedPlaceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&placeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list saved places")
	}

	places := make([]*entity.SavedPlace, 0, len(placeModels))
	for _, placeM := range placeModels {
		places = append(places, toSavedPlaceDomain(placeM))
	}

	return places, nil
}

func (repo *savedPlaceRepository) SetVisited(ctx context.Context, id uuid.UUID, visited bool, visitedAt *time.Time) (*entity.SavedPlace, error) {
	var placeM model.SavedPlaceModel

	result := repo.db.WithContext(ctx).
		Model(&placeM).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_visited": visited,
			"visited_at": visitedAt,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update saved place")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrSavedPlaceNotFound
	}

	return toSavedPlaceDomain(&placeM), nil
}

// --- Mapper Functions ---

func toSavedPlaceDomain(data *model.SavedPlaceModel) *entity.SavedPlace {
	if data == nil {
		return nil
	}

	return &entity.SavedPlace{
		ID:            data.ID,
		UserID:        data.UserID,
		DestinationID: data.DestinationID,
		PlaceName:     data.PlaceName,
		Notes:         strVal(data.Notes),
		IsVisited:     data.IsVisited,
		VisitedAt:     data.VisitedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromSavedPlaceDomain(data *entity.SavedPlace) *model.SavedPlaceModel {
	if data == nil {
		return nil
	}

	return &model.SavedPlaceModel{
		ID:            data.ID,
		UserID:        data.UserID,
		DestinationID: data.DestinationID,
		PlaceName:     data.PlaceName,
		Notes:         strPtr(data.Notes),
		IsVisited:     data.IsVisited,
		VisitedAt:     data.VisitedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
