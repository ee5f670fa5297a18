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

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// UpsertBySubject inserts the user on first sign-in. On later sign-ins only the
// login timestamp and the identity-provider email are refreshed.
func (repo *userRepository) UpsertBySubject(ctx context.Context, user *entity.User) (*entity.User, error) {
	userM := fromUserDomain(user)
	if userM.ID == uuid.Nil {
		userM.ID = uuid.New()
	}

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "cognito_user_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"email", "last_login_at", "updated_at"}),
			},
			clause.Returning{},
		).
		Create(userM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.NewValidationError("username or email already in use", "username", "email")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert user")
	}

	return toUserDomain(userM), nil
}

// FindByID retrieves a single user by id.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// UpdateProfile applies the non-nil fields of update.
func (repo *userRepository) UpdateProfile(ctx context.Context, id uuid.UUID, update *entity.ProfileUpdate) (*entity.User, error) {
	updates := map[string]any{"updated_at": time.Now().UTC()}
	if update.FirstName != nil {
		updates["first_name"] = strPtr(*update.FirstName)
	}
	if update.LastName != nil {
		updates["last_name"] = strPtr(*update.LastName)
	}
	if update.PreferredCurrency != nil {
		updates["preferred_currency"] = *update.PreferredCurrency
	}
	if update.HomeCountry != nil {
		updates["home_country"] = strPtr(*update.HomeCountry)
	}
	if update.PreferredLanguage != nil {
		updates["preferred_language"] = *update.PreferredLanguage
	}

	var userM model.UserModel
	result := repo.db.WithContext(ctx).
		Model(&userM).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user profile")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrUserNotFound
	}

	return toUserDomain(&userM), nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                data.ID,
		Subject:           data.CognitoUserID,
		Email:             data.Email,
		Username:          data.Username,
		FirstName:         strVal(data.FirstName),
		LastName:          strVal(data.LastName),
		PreferredCurrency: data.PreferredCurrency,
		HomeCountry:       strVal(data.HomeCountry),
		PreferredLanguage: data.PreferredLanguage,
		IsActive:          data.IsActive,
		LastLoginAt:       data.LastLoginAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                data.ID,
		CognitoUserID:     data.Subject,
		Email:             data.Email,
		Username:          data.Username,
		FirstName:         strPtr(data.FirstName),
		LastName:          strPtr(data.LastName),
		PreferredCurrency: data.PreferredCurrency,
		HomeCountry:       strPtr(data.HomeCountry),
		PreferredLanguage: data.PreferredLanguage,
		IsActive:          data.IsActive,
		LastLoginAt:       data.LastLoginAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
