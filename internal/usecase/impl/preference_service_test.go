package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"columbus/internal/domain/entity"
	domainerrors "columbus/internal/domain/errors"
	"columbus/internal/domain/repository"
	mockRepo "columbus/internal/mocks/repository"
	"columbus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPreferenceService(t *testing.T) (usecase.PreferenceUsecase, *mockRepo.MockPreferenceRepository) {
	repo := mockRepo.NewMockPreferenceRepository(t)

	return NewPreferenceService(repo, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

func TestPreferenceService_GetPreferences(t *testing.T) {
	ctx := context.Background()
	identity := entity.Identity{UserID: uuid.New()}

	t.Run("defaults when nothing was saved", func(t *testing.T) {
		svc, repo := createTestPreferenceService(t)
		repo.EXPECT().FindByUserID(ctx, identity.UserID).Return(nil, repository.ErrPreferencesNotFound)

		prefs, err := svc.GetPreferences(ctx, identity)

		require.NoError(t, err)
		assert.Equal(t, identity.UserID, prefs.UserID)
		assert.NotNil(t, prefs.ActivityPreferences)
		assert.Empty(t, prefs.ActivityPreferences)
	})

	t.Run("stored row", func(t *testing.T) {
		svc, repo := createTestPreferenceService(t)
		repo.EXPECT().FindByUserID(ctx, identity.UserID).Return(&entity.UserPreferences{
			UserID:      identity.UserID,
			TravelStyle: entity.TravelStyleCultural,
		}, nil)

		prefs, err := svc.GetPreferences(ctx, identity)

		require.NoError(t, err)
		assert.Equal(t, entity.TravelStyleCultural, prefs.TravelStyle)
		assert.Equal(t, []string{}, prefs.ActivityPreferences)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, repo := createTestPreferenceService(t)
		repo.EXPECT().FindByUserID(ctx, identity.UserID).Return(nil, errors.New("connection refused"))

		_, err := svc.GetPreferences(ctx, identity)

		assert.Error(t, err)
	})
}

func TestPreferenceService_SavePreferences_FullReplace(t *testing.T) {
	ctx := context.Background()
	identity := entity.Identity{UserID: uuid.New()}
	svc, repo := createTestPreferenceService(t)

	repo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(p *entity.UserPreferences) bool {
			// Omitted fields are stored empty, never merged with the old row.
			return p.UserID == identity.UserID &&
				p.TravelStyle == entity.TravelStyleFoodie &&
				p.BudgetPreference == "moderate" &&
				p.AccommodationPreference == "" &&
				assert.ObjectsAreEqual([]string{"street food", "markets"}, p.ActivityPreferences)
		})).
		RunAndReturn(func(_ context.Context, p *entity.UserPreferences) (*entity.UserPreferences, error) {
			return p, nil
		})

	saved, err := svc.SavePreferences(ctx, identity, &usecase.SavePreferencesInput{
		TravelStyle:         "Foodie",
		BudgetPreference:    "moderate",
		ActivityPreferences: []string{" street food ", "", "markets"},
	})

	require.NoError(t, err)
	assert.Equal(t, identity.UserID, saved.UserID)
}

func TestPreferenceService_SavePreferences_Validation(t *testing.T) {
	svc, _ := createTestPreferenceService(t)

	_, err := svc.SavePreferences(context.Background(), entity.Identity{UserID: uuid.New()}, &usecase.SavePreferencesInput{
		TravelStyle:      "party",
		BudgetPreference: "cheap",
	})

	require.True(t, errors.Is(err, domainerrors.ErrValidation))
	assert.Equal(t, "invalid fields: travel_style, budget_preference", domainerrors.AsAppError(err).Message())
}
