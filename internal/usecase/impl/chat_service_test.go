package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"columbus/config"
	"columbus/internal/domain/entity"
	domainerrors "columbus/internal/domain/errors"
	"columbus/internal/domain/repository"
	"columbus/internal/domain/service"
	mockRepo "columbus/internal/mocks/repository"
	mockSvc "columbus/internal/mocks/service"
	"columbus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type chatServiceFixtures struct {
	service       *chatService
	chatRepo      *mockRepo.MockChatRepository
	itineraryRepo *mockRepo.MockItineraryRepository
	sessions      *mockSvc.MockChatSessionStore
	snapshots     *mockSvc.MockItinerarySnapshotStore
	generator     *mockSvc.MockTextGenerator
	identity      entity.Identity
}

func createTestChatService(t *testing.T) chatServiceFixtures {
	f := chatServiceFixtures{
		chatRepo:      mockRepo.NewMockChatRepository(t),
		itineraryRepo: mockRepo.NewMockItineraryRepository(t),
		sessions:      mockSvc.NewMockChatSessionStore(t),
		snapshots:     mockSvc.NewMockItinerarySnapshotStore(t),
		generator:     mockSvc.NewMockTextGenerator(t),
		identity:      entity.Identity{UserID: uuid.New(), Roles: entity.Roles{entity.RoleTraveler}},
	}

	f.service = NewChatService(ChatServiceParams{
		ChatRepo:      f.chatRepo,
		ItineraryRepo: f.itineraryRepo,
		Sessions:      f.sessions,
		Snapshots:     f.snapshots,
		Generator:     f.generator,
		Config:        &config.Config{Itinerary: &config.ItineraryConfig{ChatHistoryWindow: 6}},
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*chatService)
	f.service.now = func() time.Time { return fixedNow }

	return f
}

func chatRow(role entity.ChatRole, content string) *entity.ChatMessage {
	return &entity.ChatMessage{ID: uuid.New(), Role: role, Content: content}
}

func TestChatService_SendMessage_NewSession(t *testing.T) {
	fx := createTestChatService(t)
	ctx := context.Background()

	var appended []*entity.ChatMessage
	fx.chatRepo.EXPECT().ListRecent(ctx, mock.AnythingOfType("uuid.UUID"), 6).Return(nil, nil)
	fx.chatRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.ChatMessage")).
		Run(func(_ context.Context, msg *entity.ChatMessage) { appended = append(appended, msg) }).
		Return(nil).Twice()
	fx.generator.EXPECT().
		Generate(ctx, mock.MatchedBy(func(req *service.GenerationRequest) bool {
			return req.MaxTokens == chatReplyMaxTokens && req.System == chatSystemPrompt &&
				len(req.Messages) == 1 && req.Messages[0].Content == "Best ramen in Tokyo?"
		})).
		Return(&service.GenerationResult{Text: " Try Fuunji in Shinjuku. ", Model: "claude"}, nil)
	fx.sessions.EXPECT().
		Save(ctx, mock.MatchedBy(func(s *entity.ChatSession) bool {
			return s.UserID == fx.identity.UserID && s.MessageCount == 2 && s.LastActivityAt.Equal(fixedNow)
		})).
		Return(nil)

	out, err := fx.service.SendMessage(ctx, fx.identity, &usecase.ChatInput{Message: "  Best ramen in Tokyo?  "})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, out.SessionID)
	assert.Equal(t, "Try Fuunji in Shinjuku.", out.Message)
	assert.Equal(t, fixedNow, out.Timestamp)

	require.Len(t, appended, 2)
	assert.Equal(t, entity.ChatRoleUser, appended[0].Role)
	assert.Equal(t, "Best ramen in Tokyo?", appended[0].Content)
	assert.Equal(t, entity.ChatRoleAssistant, appended[1].Role)
	assert.Equal(t, out.SessionID, appended[0].SessionID)
	assert.Equal(t, out.SessionID, appended[1].SessionID)

	var metadata map[string]any
	require.NoError(t, json.Unmarshal(appended[1].Metadata, &metadata))
	assert.Equal(t, "claude", metadata["model"])
}

func TestChatService_SendMessage_Validation(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{"blank", "   "},
		{"too long", strings.Repeat("a", maxChatMessageLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestChatService(t)

			_, err := fx.service.SendMessage(context.Background(), fx.identity, &usecase.ChatInput{Message: tt.message})

			require.True(t, errors.Is(err, domainerrors.ErrValidation))
			assert.Contains(t, domainerrors.AsAppError(err).Message(), "message")
		})
	}
}

func TestChatService_SendMessage_ExistingSessionCarriesHistory(t *testing.T) {
	fx := createTestChatService(t)
	ctx := context.Background()
	sessionID := uuid.New()
	itineraryID := uuid.New()

	fx.sessions.EXPECT().Get(ctx, sessionID).Return(&entity.ChatSession{
		ID:           sessionID,
		UserID:       fx.identity.UserID,
		ItineraryID:  &itineraryID,
		MessageCount: 3,
	}, nil)
	fx.snapshots.EXPECT().Get(ctx, itineraryID).Return(&entity.Itinerary{
		ID:              itineraryID,
		UserID:          fx.identity.UserID,
		Title:           "Temples and Ramen",
		DestinationName: "Tokyo, Japan",
		DurationDays:    7,
		TravelStyle:     entity.TravelStyleCultural,
		ItineraryData:   json.RawMessage(`{"days":[{"day_number":1,"title":"Asakusa"}]}`),
	}, nil)
	// The window cut the conversation after a user turn.
	fx.chatRepo.EXPECT().ListRecent(ctx, sessionID, 6).Return([]*entity.ChatMessage{
		chatRow(entity.ChatRoleAssistant, "orphaned reply"),
		chatRow(entity.ChatRoleUser, "Where should I stay?"),
		chatRow(entity.ChatRoleAssistant, "Shinjuku is central."),
	}, nil)
	fx.chatRepo.EXPECT().Append(ctx, mock.Anything).Return(nil).Twice()
	fx.generator.EXPECT().
		Generate(ctx, mock.MatchedBy(func(req *service.GenerationRequest) bool {
			return len(req.Messages) == 3 &&
				req.Messages[0].Content == "Where should I stay?" &&
				req.Messages[1].Role == "assistant" &&
				req.Messages[2].Content == "And for food?" &&
				strings.Contains(req.System, "Destination: Tokyo, Japan") &&
				strings.Contains(req.System, "Day 1: Asakusa")
		})).
		Return(&service.GenerationResult{Text: "Omoide Yokocho."}, nil)
	fx.sessions.EXPECT().
		Save(ctx, mock.MatchedBy(func(s *entity.ChatSession) bool { return s.MessageCount == 5 })).
		Return(errors.New("redis down"))

	out, err := fx.service.SendMessage(ctx, fx.identity, &usecase.ChatInput{Message: "And for food?", SessionID: &sessionID})

	require.NoError(t, err)
	assert.Equal(t, sessionID, out.SessionID)
}

func TestChatService_SendMessage_SessionOwnedByAnotherUser(t *testing.T) {
	ctx := context.Background()

	t.Run("session record", func(t *testing.T) {
		fx := createTestChatService(t)
		sessionID := uuid.New()
		fx.sessions.EXPECT().Get(ctx, sessionID).Return(&entity.ChatSession{ID: sessionID, UserID: uuid.New()}, nil)

		_, err := fx.service.SendMessage(ctx, fx.identity, &usecase.ChatInput{Message: "hi", SessionID: &sessionID})

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("expired record falls back to message log", func(t *testing.T) {
		fx := createTestChatService(t)
		sessionID := uuid.New()
		other := uuid.New()
		fx.sessions.EXPECT().Get(ctx, sessionID).Return(nil, service.ErrCacheMiss)
		fx.chatRepo.EXPECT().FindSessionOwner(ctx, sessionID).Return(&other, nil)

		_, err := fx.service.SendMessage(ctx, fx.identity, &usecase.ChatInput{Message: "hi", SessionID: &sessionID})

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})
}

func TestChatService_SendMessage_InvisibleItineraryIsNotAttached(t *testing.T) {
	fx := createTestChatService(t)
	ctx := context.Background()
	itineraryID := uuid.New()

	fx.snapshots.EXPECT().Get(ctx, itineraryID).Return(nil, service.ErrCacheMiss)
	fx.itineraryRepo.EXPECT().FindByID(ctx, itineraryID).
		Return(&entity.Itinerary{ID: itineraryID, UserID: uuid.New(), DestinationName: "Secret Island"}, nil)
	fx.chatRepo.EXPECT().ListRecent(ctx, mock.Anything, 6).Return(nil, errors.New("timeout"))
	fx.chatRepo.EXPECT().
		Append(ctx, mock.MatchedBy(func(msg *entity.ChatMessage) bool { return msg.ItineraryID == nil })).
		Return(nil).Twice()
	fx.generator.EXPECT().
		Generate(ctx, mock.MatchedBy(func(req *service.GenerationRequest) bool {
			return !strings.Contains(req.System, "Secret Island")
		})).
		Return(&service.GenerationResult{Text: "Sure."}, nil)
	fx.sessions.EXPECT().Save(ctx, mock.Anything).Return(nil)

	_, err := fx.service.SendMessage(ctx, fx.identity, &usecase.ChatInput{Message: "hi", ItineraryID: &itineraryID})

	require.NoError(t, err)
}

func TestChatService_SendMessage_UnknownItineraryIsNotAttached(t *testing.T) {
	fx := createTestChatService(t)
	ctx := context.Background()
	itineraryID := uuid.New()

	fx.snapshots.EXPECT().Get(ctx, itineraryID).Return(nil, service.ErrCacheMiss)
	fx.itineraryRepo.EXPECT().FindByID(ctx, itineraryID).Return(nil, repository.ErrItineraryNotFound)
	fx.chatRepo.EXPECT().ListRecent(ctx, mock.Anything, 6).Return(nil, nil)
	fx.chatRepo.EXPECT().
		Append(ctx, mock.MatchedBy(func(msg *entity.ChatMessage) bool { return msg.ItineraryID == nil })).
		Return(nil).Twice()
	fx.generator.EXPECT().Generate(ctx, mock.Anything).Return(&service.GenerationResult{Text: "Hello."}, nil)
	fx.sessions.EXPECT().
		Save(ctx, mock.MatchedBy(func(session *entity.ChatSession) bool { return session.ItineraryID == nil })).
		Return(nil)

	out, err := fx.service.SendMessage(ctx, fx.identity, &usecase.ChatInput{Message: "hi", ItineraryID: &itineraryID})

	require.NoError(t, err)
	assert.Equal(t, "Hello.", out.Message)
}

func TestChatService_SendMessage_VisibleItineraryIsAttached(t *testing.T) {
	fx := createTestChatService(t)
	ctx := context.Background()
	itineraryID := uuid.New()

	fx.snapshots.EXPECT().Get(ctx, itineraryID).
		Return(&entity.Itinerary{ID: itineraryID, UserID: fx.identity.UserID, DestinationName: "Kyoto"}, nil)
	fx.chatRepo.EXPECT().ListRecent(ctx, mock.Anything, 6).Return(nil, nil)
	fx.chatRepo.EXPECT().
		Append(ctx, mock.MatchedBy(func(msg *entity.ChatMessage) bool {
			return msg.ItineraryID != nil && *msg.ItineraryID == itineraryID
		})).
		Return(nil).Twice()
	fx.generator.EXPECT().
		Generate(ctx, mock.MatchedBy(func(req *service.GenerationRequest) bool {
			return strings.Contains(req.System, "Kyoto")
		})).
		Return(&service.GenerationResult{Text: "Sure."}, nil)
	fx.sessions.EXPECT().Save(ctx, mock.Anything).Return(nil)

	_, err := fx.service.SendMessage(ctx, fx.identity, &usecase.ChatInput{Message: "hi", ItineraryID: &itineraryID})

	require.NoError(t, err)
}

func TestChatService_SendMessage_ProviderFailureKeepsUserMessage(t *testing.T) {
	fx := createTestChatService(t)
	ctx := context.Background()

	fx.chatRepo.EXPECT().ListRecent(ctx, mock.Anything, 6).Return(nil, nil)
	fx.chatRepo.EXPECT().
		Append(ctx, mock.MatchedBy(func(msg *entity.ChatMessage) bool { return msg.Role == entity.ChatRoleUser })).
		Return(nil).Once()
	fx.generator.EXPECT().Generate(ctx, mock.Anything).Return(nil, errors.New("context deadline exceeded"))
	fx.generator.EXPECT().Name().Return("anthropic")

	_, err := fx.service.SendMessage(ctx, fx.identity, &usecase.ChatInput{Message: "hi"})

	require.Error(t, err)
	appErr := domainerrors.AsAppError(err)
	assert.Equal(t, domainerrors.CodeUpstream, appErr.ErrorCode())
	assert.Contains(t, appErr.Message(), "anthropic")
}

func TestChatService_ListMessages(t *testing.T) {
	ctx := context.Background()
	sessionID := uuid.New()

	t.Run("owner gets the log", func(t *testing.T) {
		fx := createTestChatService(t)
		owner := fx.identity.UserID
		fx.chatRepo.EXPECT().FindSessionOwner(ctx, sessionID).Return(&owner, nil)
		fx.chatRepo.EXPECT().ListBySession(ctx, sessionID).Return([]*entity.ChatMessage{
			chatRow(entity.ChatRoleUser, "a"),
			chatRow(entity.ChatRoleAssistant, "b"),
		}, nil)

		messages, err := fx.service.ListMessages(ctx, fx.identity, sessionID)

		require.NoError(t, err)
		assert.Len(t, messages, 2)
	})

	t.Run("unknown session", func(t *testing.T) {
		fx := createTestChatService(t)
		fx.chatRepo.EXPECT().FindSessionOwner(ctx, sessionID).Return(nil, nil)

		_, err := fx.service.ListMessages(ctx, fx.identity, sessionID)

		assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	})

	t.Run("other user's session", func(t *testing.T) {
		fx := createTestChatService(t)
		other := uuid.New()
		fx.chatRepo.EXPECT().FindSessionOwner(ctx, sessionID).Return(&other, nil)

		_, err := fx.service.ListMessages(ctx, fx.identity, sessionID)

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("repository failure", func(t *testing.T) {
		fx := createTestChatService(t)
		fx.chatRepo.EXPECT().FindSessionOwner(ctx, sessionID).Return(nil, errors.New("connection refused"))

		_, err := fx.service.ListMessages(ctx, fx.identity, sessionID)

		assert.Error(t, err)
	})
}
