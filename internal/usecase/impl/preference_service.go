package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "columbus/internal/delivery/context"
	"columbus/internal/domain/entity"
	domainerrors "columbus/internal/domain/errors"
	"columbus/internal/domain/repository"
	"columbus/internal/usecase"

	"github.com/pkg/errors"
)

var budgetPreferences = []string{
	string(entity.BudgetTierBudget),
	string(entity.BudgetTierModerate),
	string(entity.BudgetTierLuxury),
}

type preferenceService struct {
	preferenceRepo repository.PreferenceRepository
	logger         *slog.Logger
}

// NewPreferenceService creates a new preference service instance
func NewPreferenceService(preferenceRepo repository.PreferenceRepository, logger *slog.Logger) usecase.PreferenceUsecase {
	return &preferenceService{
		preferenceRepo: preferenceRepo,
		logger:         logger,
	}
}

func (srv *preferenceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *preferenceService) GetPreferences(ctx context.Context, identity entity.Identity) (*entity.UserPreferences, error) {
	prefs, err := srv.preferenceRepo.FindByUserID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferencesNotFound) {
			return entity.DefaultUserPreferences(identity.UserID), nil
		}

		return nil, errors.Wrap(err, "failed to find preferences")
	}

	if prefs.ActivityPreferences == nil {
		prefs.ActivityPreferences = []string{}
	}

	return prefs, nil
}

// SavePreferences replaces the caller's row with exactly the submitted fields;
// omitted fields are cleared.
func (srv *preferenceService) SavePreferences(ctx context.Context, identity entity.Identity, input *usecase.SavePreferencesInput) (*entity.UserPreferences, error) {
	var invalid []string

	style := entity.TravelStyle(strings.ToLower(strings.TrimSpace(input.TravelStyle)))
	if style != "" && !style.IsValid() {
		invalid = append(invalid, "travel_style")
	}
	budget := strings.ToLower(strings.TrimSpace(input.BudgetPreference))
	if budget != "" && !slices.Contains(budgetPreferences, budget) {
		invalid = append(invalid, "budget_preference")
	}
	if len(invalid) > 0 {
		return nil, domainerrors.NewValidationError("invalid fields", invalid...)
	}

	activities := make([]string, 0, len(input.ActivityPreferences))
	for _, activity := range input.ActivityPreferences {
		if activity = strings.TrimSpace(activity); activity != "" {
			activities = append(activities, activity)
		}
	}

	saved, err := srv.preferenceRepo.Upsert(ctx, &entity.UserPreferences{
		UserID:                  identity.UserID,
		TravelStyle:             style,
		BudgetPreference:        budget,
		AccommodationPreference: strings.TrimSpace(input.AccommodationPreference),
		FoodPreference:          strings.TrimSpace(input.FoodPreference),
		ActivityPreferences:     activities,
		AccessibilityNeeds:      strings.TrimSpace(input.AccessibilityNeeds),
		DietaryRestrictions:     strings.TrimSpace(input.DietaryRestrictions),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save preferences")
	}

	srv.log(ctx).Info("Preferences saved", slog.String("userID", identity.UserID.String()))

	return saved, nil
}
