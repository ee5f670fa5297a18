package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"columbus/internal/domain/entity"
	domainerrors "columbus/internal/domain/errors"
	"columbus/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_GetPreferences_Defaults(t *testing.T) {
	fx := newAPIFixtures(t)
	fx.preferenceUC.EXPECT().GetPreferences(mock.Anything, fx.identity).Return(entity.DefaultUserPreferences(fx.identity.UserID), nil)

	rec := fx.do(http.MethodGet, "/user/preferences", "", fx.signIn(t))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.True(t, env.Success)

	var prefs map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &prefs))
	assert.Equal(t, []any{}, prefs["activity_preferences"])
	assert.Equal(t, "", prefs["travel_style"])
}

func TestUserHandler_SavePreferences(t *testing.T) {
	t.Run("full replace", func(t *testing.T) {
		fx := newAPIFixtures(t)
		input := &usecase.SavePreferencesInput{
			TravelStyle:         "foodie",
			BudgetPreference:    "moderate",
			ActivityPreferences: []string{"markets", "cooking classes"},
		}
		fx.preferenceUC.EXPECT().SavePreferences(mock.Anything, fx.identity, input).Return(&entity.UserPreferences{
			UserID:              fx.identity.UserID,
			TravelStyle:         entity.TravelStyleFoodie,
			BudgetPreference:    "moderate",
			ActivityPreferences: input.ActivityPreferences,
		}, nil)

		body := `{"travel_style":"foodie","budget_preference":"moderate","activity_preferences":["markets","cooking classes"]}`
		rec := fx.do(http.MethodPost, "/user/preferences", body, fx.signIn(t))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Preferences saved successfully", decode(t, rec).Message)
	})

	t.Run("invalid budget preference", func(t *testing.T) {
		fx := newAPIFixtures(t)

		rec := fx.do(http.MethodPost, "/user/preferences", `{"budget_preference":"frugal"}`, fx.signIn(t))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid or missing fields: budget_preference", decode(t, rec).Message)
	})
}

func TestUserHandler_Profile(t *testing.T) {
	fx := newAPIFixtures(t)
	user := &entity.User{ID: fx.identity.UserID, Email: fx.identity.Email, Username: "ada", PreferredCurrency: "EUR"}

	fx.profileUC.EXPECT().GetProfile(mock.Anything, fx.identity).Return(user, nil)
	fx.profileUC.EXPECT().
		UpdateProfile(mock.Anything, fx.identity, mock.MatchedBy(func(input *usecase.UpdateProfileInput) bool {
			return input.PreferredCurrency != nil && *input.PreferredCurrency == "EUR" && input.FirstName == nil
		})).
		Return(user, nil)
	fx.userUC.EXPECT().ResolveIdentity(mock.Anything, mock.Anything).Return(&fx.identity, nil).Times(3)
	token := fx.token(t)

	rec := fx.do(http.MethodGet, "/user/profile", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), fx.identity.Subject)

	rec = fx.do(http.MethodPut, "/user/profile", `{"preferred_currency":"EUR"}`, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = fx.do(http.MethodPut, "/user/profile", `{"preferred_language":"not a tag!"}`, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid or missing fields: preferred_language", decode(t, rec).Message)
}

func TestUserHandler_SavedPlaces(t *testing.T) {
	t.Run("save", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.savedPlaceUC.EXPECT().
			Save(mock.Anything, fx.identity, &usecase.SavePlaceInput{PlaceName: "Senso-ji", Notes: "Go early"}).
			Return(&entity.SavedPlace{ID: uuid.New(), UserID: fx.identity.UserID, PlaceName: "Senso-ji"}, nil)

		rec := fx.do(http.MethodPost, "/user/saved-places", `{"placeName":"Senso-ji","notes":"Go early"}`, fx.signIn(t))

		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.savedPlaceUC.EXPECT().List(mock.Anything, fx.identity).Return([]*entity.SavedPlace{
			{ID: uuid.New(), PlaceName: "Senso-ji"},
		}, nil)

		rec := fx.do(http.MethodGet, "/user/saved-places", "", fx.signIn(t))

		require.Equal(t, http.StatusOK, rec.Code)
		var places []entity.SavedPlace
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &places))
		assert.Len(t, places, 1)
	})

	t.Run("mark visited", func(t *testing.T) {
		fx := newAPIFixtures(t)
		placeID := uuid.New()
		visitedAt := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
		fx.savedPlaceUC.EXPECT().SetVisited(mock.Anything, fx.identity, placeID, true).
			Return(&entity.SavedPlace{ID: placeID, IsVisited: true, VisitedAt: &visitedAt}, nil)

		rec := fx.do(http.MethodPut, "/user/saved-places/"+placeID.String()+"/visited", `{"visited":true}`, fx.signIn(t))

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("visited flag required", func(t *testing.T) {
		fx := newAPIFixtures(t)

		rec := fx.do(http.MethodPut, "/user/saved-places/"+uuid.NewString()+"/visited", `{}`, fx.signIn(t))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid or missing fields: visited", decode(t, rec).Message)
	})

	t.Run("not found", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.savedPlaceUC.EXPECT().SetVisited(mock.Anything, fx.identity, mock.Anything, false).
			Return(nil, domainerrors.ErrNotFound.WithMessage("Saved place not found"))

		rec := fx.do(http.MethodPut, "/user/saved-places/"+uuid.NewString()+"/visited", `{"visited":false}`, fx.signIn(t))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Saved place not found", decode(t, rec).Message)
	})
}
