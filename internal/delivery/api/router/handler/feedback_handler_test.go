package handler_test

import (
	"net/http"
	"testing"

	"columbus/internal/domain/entity"
	domainerrors "columbus/internal/domain/errors"
	"columbus/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFeedbackHandler_Submit(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.feedbackUC.EXPECT().
			Submit(mock.Anything, fx.identity, &usecase.SubmitFeedbackInput{Rating: 5, Comment: "Loved it", FeedbackType: "itinerary"}).
			Return(&entity.Feedback{ID: uuid.New(), Rating: 5, Type: entity.FeedbackTypeItinerary}, nil)

		rec := fx.do(http.MethodPost, "/feedback", `{"rating":5,"comment":"Loved it","feedbackType":"itinerary"}`, fx.signIn(t))

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, decode(t, rec).Success)
	})

	for _, body := range []string{`{"rating":0}`, `{"rating":6}`, `{"comment":"no rating"}`} {
		t.Run("rejects "+body, func(t *testing.T) {
			fx := newAPIFixtures(t)

			rec := fx.do(http.MethodPost, "/feedback", body, fx.signIn(t))

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "invalid or missing fields: rating", decode(t, rec).Message)
		})
	}
}

func TestFeedbackHandler_Resolve(t *testing.T) {
	t.Run("requires support role", func(t *testing.T) {
		fx := newAPIFixtures(t)

		rec := fx.do(http.MethodPut, "/feedback/"+uuid.NewString()+"/resolve", `{"resolved":true}`, fx.signIn(t))

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, domainerrors.CodeForbidden, decode(t, rec).Error.Code)
	})

	t.Run("support staff", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.identity.Roles = entity.Roles{entity.RoleTraveler, entity.RoleSupport}
		feedbackID := uuid.New()
		fx.feedbackUC.EXPECT().Resolve(mock.Anything, fx.identity, feedbackID, true).
			Return(&entity.Feedback{ID: feedbackID, Rating: 2, IsResolved: true}, nil)

		rec := fx.do(http.MethodPut, "/feedback/"+feedbackID.String()+"/resolve", `{"resolved":true}`, fx.signIn(t))

		require.Equal(t, http.StatusOK, rec.Code)
	})
}
