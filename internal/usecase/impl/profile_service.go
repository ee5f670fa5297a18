package impl

import (
	"context"
	"log/slog"
	"strings"

	"columbus/internal/domain/entity"
	domainerrors "columbus/internal/domain/errors"
	"columbus/internal/domain/repository"
	"columbus/internal/usecase"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetProfile retrieves the caller's profile.
func (srv *profileService) GetProfile(ctx context.Context, identity entity.Identity) (*entity.User, error) {
	srv.logger.Debug("Getting user profile", "userID", identity.UserID)

	user, err := srv.userRepo.FindByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound.WithMessage("User not found"), "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile applies the editable profile fields.
func (srv *profileService) UpdateProfile(ctx context.Context, identity entity.Identity, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.logger.Info("Updating user profile", "userID", identity.UserID)

	update := &entity.ProfileUpdate{
		FirstName:         trimmed(input.FirstName),
		LastName:          trimmed(input.LastName),
		PreferredCurrency: upper(input.PreferredCurrency),
		HomeCountry:       trimmed(input.HomeCountry),
		PreferredLanguage: trimmed(input.PreferredLanguage),
	}
	if update.IsEmpty() {
		return nil, domainerrors.NewValidationError("no updatable fields")
	}

	user, err := srv.userRepo.UpdateProfile(ctx, identity.UserID, update)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound.WithMessage("User not found"), "user not found")
		}

		return nil, errors.Wrap(err, "failed to update user profile")
	}

	return user, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)

	return &v
}

func upper(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.ToUpper(strings.TrimSpace(*s))

	return &v
}
