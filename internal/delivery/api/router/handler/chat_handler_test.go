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

func TestChatHandler_SendMessage(t *testing.T) {
	fx := newAPIFixtures(t)
	sessionID := uuid.New()
	itineraryID := uuid.New()
	sentAt := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

	fx.chatUC.EXPECT().
		SendMessage(mock.Anything, fx.identity, &usecase.ChatInput{
			Message:     "Where should I eat ramen?",
			SessionID:   &sessionID,
			ItineraryID: &itineraryID,
		}).
		Return(&usecase.ChatOutput{SessionID: sessionID, Message: "Try Fuunji in Shinjuku.", Timestamp: sentAt}, nil)

	body := `{"message":"Where should I eat ramen?","sessionId":"` + sessionID.String() + `","itineraryId":"` + itineraryID.String() + `"}`
	rec := fx.do(http.MethodPost, "/chat", body, fx.signIn(t))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"session_id":"`+sessionID.String()+`","message":"Try Fuunji in Shinjuku.","timestamp":"2026-10-15T10:00:00Z"}`,
		string(decode(t, rec).Data))
}

func TestChatHandler_SendMessage_EmptyMessage(t *testing.T) {
	fx := newAPIFixtures(t)

	rec := fx.do(http.MethodPost, "/chat", `{"message":""}`, fx.signIn(t))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid or missing fields: message", decode(t, rec).Message)
}

func TestChatHandler_ListMessages(t *testing.T) {
	t.Run("ordered log", func(t *testing.T) {
		fx := newAPIFixtures(t)
		sessionID := uuid.New()
		fx.chatUC.EXPECT().ListMessages(mock.Anything, fx.identity, sessionID).Return([]*entity.ChatMessage{
			{ID: uuid.New(), SessionID: sessionID, Role: entity.ChatRoleUser, Content: "Hi"},
			{ID: uuid.New(), SessionID: sessionID, Role: entity.ChatRoleAssistant, Content: "Hello!"},
		}, nil)

		rec := fx.do(http.MethodGet, "/chat/"+sessionID.String()+"/messages", "", fx.signIn(t))

		require.Equal(t, http.StatusOK, rec.Code)
		var messages []map[string]any
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &messages))
		require.Len(t, messages, 2)
		assert.Equal(t, "assistant", messages[1]["role"])
	})

	t.Run("someone else's session", func(t *testing.T) {
		fx := newAPIFixtures(t)
		sessionID := uuid.New()
		fx.chatUC.EXPECT().ListMessages(mock.Anything, fx.identity, sessionID).
			Return(nil, domainerrors.ErrForbidden.WithMessage("You do not own this chat session"))

		rec := fx.do(http.MethodGet, "/chat/"+sessionID.String()+"/messages", "", fx.signIn(t))

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, domainerrors.CodeForbidden, decode(t, rec).Error.Code)
	})
}
