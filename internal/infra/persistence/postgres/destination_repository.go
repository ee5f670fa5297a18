package postgres

import (
	"context"
	"encoding/json"

	"columbus/internal/domain/entity"
	"columbus/internal/domain/repository"
	"columbus/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type destinationRepository struct {
	db *gorm.DB
}

// NewDestinationRepository is the constructor for destinationRepository.
func NewDestinationRepository(db *gorm.DB) repository.DestinationRepository {
	return &destinationRepository{
		db: db,
	}
}

// Search filters on the cheapest daily estimate and on the tag set.
func (repo *destinationRepository) Search(ctx context.Context, filter entity.DestinationFilter) ([]*entity.Destination, error) {
	query := repo.db.WithContext(ctx).Model(&model.DestinationModel{})

	if filter.MaxDailyBudget != nil {
		query = query.Where("COALESCE((estimated_daily_budget->>'budget')::numeric, 0) <= ?", *filter.MaxDailyBudget)
	}
	if filter.TravelStyle != "" {
		tags, _ := json.Marshal([]string{filter.TravelStyle.String()})
		query = query.Where("tags @> ?::jsonb", string(tags))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var destinationModels []*model.DestinationModel
	if err := query.
		Order("popularity_score DESC").
		Order("name ASC").
		Order("id ASC").
		Find(&destinationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search destinations")
	}

	destinations := make([]*entity.Destination, 0, len(destinationModels))
	for _, destinationM := range destinationModels {
		destinations = append(destinations, toDestinationDomain(destinationM))
	}

	return destinations, nil
}

func (repo *destinationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Destination, error) {
	var destinationM model.DestinationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&destinationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDestinationNotFound
		}

		return nil, errors.Wrap(err, "failed to find destination by ID")
	}

	return toDestinationDomain(&destinationM), nil
}

func (repo *destinationRepository) FindByName(ctx context.Context, name string) (*entity.Destination, error) {
	var destinationM model.DestinationModel

	if err := repo.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		Order("popularity_score DESC").
		First(&destinationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDestinationNotFound
		}

		return nil, errors.Wrap(err, "failed to find destination by name")
	}

	return toDestinationDomain(&destinationM), nil
}

// --- Mapper Functions ---

func toDestinationDomain(data *model.DestinationModel) *entity.Destination {
	if data == nil {
		return nil
	}

	destination := &entity.Destination{
		ID:                      data.ID,
		Name:                    data.Name,
		Country:                 data.Country,
		City:                    strVal(data.City),
		Region:                  strVal(data.Region),
		Description:             strVal(data.Description),
		BestTimeToVisit:         strVal(data.BestTimeToVisit),
		AverageTemperatureRange: strVal(data.AverageTemperatureRange),
		PopularActivities:       fromJSONColumn[string](data.PopularActivities),
		Tags:                    fromJSONColumn[string](data.Tags),
		IsPopular:               data.IsPopular,
		PopularityScore:         data.PopularityScore,
		CreatedAt:               data.CreatedAt,
		UpdatedAt:               data.UpdatedAt,
	}
	if data.Latitude != nil && data.Longitude != nil {
		destination.Location = &orb.Point{*data.Longitude, *data.Latitude}
	}
	if len(data.EstimatedDailyBudget) > 0 {
		// A malformed estimate leaves the zero budget, which only ever matches as "budget" tier.
		_ = json.Unmarshal(data.EstimatedDailyBudget, &destination.EstimatedDailyBudget)
	}

	return destination
}
