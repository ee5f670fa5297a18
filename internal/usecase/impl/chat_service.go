package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"columbus/config"
	deliverycontext "columbus/internal/delivery/context"
	"columbus/internal/domain/entity"
	domainerrors "columbus/internal/domain/errors"
	"columbus/internal/domain/repository"
	"columbus/internal/domain/service"
	"columbus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	maxChatMessageLength     = 4000
	defaultChatHistoryWindow = 20
	chatReplyMaxTokens       = 1024
)

const chatSystemPrompt = `You are a knowledgeable and friendly travel assistant. Help users with:
- Travel planning and itinerary suggestions
- Destination recommendations
- Budget advice
- Cultural tips and local insights
- Transportation guidance
- Safety information
- Food and restaurant suggestions

Provide accurate, helpful, and engaging responses. Be concise but informative.`

type chatService struct {
	chatRepo      repository.ChatRepository
	itineraryRepo repository.ItineraryRepository
	sessions      service.ChatSessionStore
	snapshots     service.ItinerarySnapshotStore
	generator     service.TextGenerator
	config        *config.Config
	logger        *slog.Logger
	now           func() time.Time
}

// ChatServiceParams holds dependencies for ChatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	ChatRepo      repository.ChatRepository
	ItineraryRepo repository.ItineraryRepository
	Sessions      service.ChatSessionStore
	Snapshots     service.ItinerarySnapshotStore
	Generator     service.TextGenerator
	Config        *config.Config
	Logger        *slog.Logger
}

// NewChatService creates a new chat service instance
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		chatRepo:      params.ChatRepo,
		itineraryRepo: params.ItineraryRepo,
		sessions:      params.Sessions,
		snapshots:     params.Snapshots,
		generator:     params.Generator,
		config:        params.Config,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *chatService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *chatService) historyWindow() int {
	if srv.config.Itinerary != nil && srv.config.Itinerary.ChatHistoryWindow > 0 {
		return srv.config.Itinerary.ChatHistoryWindow
	}

	return defaultChatHistoryWindow
}

// SendMessage appends the user turn, asks the generator for a reply with the
// recent session history as context and appends the reply.
func (srv *chatService) SendMessage(ctx context.Context, identity entity.Identity, input *usecase.ChatInput) (*usecase.ChatOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" || utf8.RuneCountInString(message) > maxChatMessageLength {
		return nil, domainerrors.NewValidationError("invalid or missing fields", "message")
	}

	session, err := srv.resolveSession(ctx, identity, input.SessionID)
	if err != nil {
		return nil, err
	}
	itineraryID := session.ItineraryID
	if input.ItineraryID != nil {
		itineraryID = input.ItineraryID
	}

	// Only an itinerary the caller can see is attached to the session rows.
	grounding := srv.loadGrounding(ctx, identity, itineraryID)
	session.ItineraryID = nil
	if grounding != nil {
		session.ItineraryID = itineraryID
	}
	history := srv.loadHistory(ctx, session.ID)

	userMessage := srv.newMessage(session, identity, entity.ChatRoleUser, message, nil)
	if err := srv.chatRepo.Append(ctx, userMessage); err != nil {
		return nil, errors.Wrap(err, "failed to store chat message")
	}

	result, err := srv.generator.Generate(ctx, &service.GenerationRequest{
		System:    buildChatSystemPrompt(grounding),
		Messages:  append(history, service.GenerationMessage{Role: string(entity.ChatRoleUser), Content: message}),
		MaxTokens: chatReplyMaxTokens,
	})
	if err != nil {
		// The user row stays in the log.
		return nil, domainerrors.NewUpstreamError(srv.generator.Name(), err)
	}

	reply := strings.TrimSpace(result.Text)
	metadata, _ := json.Marshal(map[string]any{
		"model":         result.Model,
		"input_tokens":  result.InputTokens,
		"output_tokens": result.OutputTokens,
	})
	assistantMessage := srv.newMessage(session, identity, entity.ChatRoleAssistant, reply, metadata)
	if err := srv.chatRepo.Append(ctx, assistantMessage); err != nil {
		return nil, errors.Wrap(err, "failed to store chat reply")
	}

	session.MessageCount += 2
	session.LastActivityAt = assistantMessage.CreatedAt
	if err := srv.sessions.Save(ctx, session); err != nil {
		srv.log(ctx).Warn("Failed to save chat session", slog.Any("error", err))
	}

	srv.log(ctx).Info("Chat reply generated",
		slog.String("sessionID", session.ID.String()),
		slog.Int("historyMessages", len(history)),
	)

	return &usecase.ChatOutput{
		SessionID: session.ID,
		Message:   reply,
		Timestamp: assistantMessage.CreatedAt,
	}, nil
}

// ListMessages returns the full log of a session owned by the caller.
func (srv *chatService) ListMessages(ctx context.Context, identity entity.Identity, sessionID uuid.UUID) ([]*entity.ChatMessage, error) {
	owner, err := srv.chatRepo.FindSessionOwner(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find chat session owner")
	}
	if owner == nil {
		return nil, domainerrors.ErrNotFound.WithMessage("Chat session not found")
	}
	if *owner != identity.UserID {
		return nil, domainerrors.ErrForbidden.WithMessage("You do not own this chat session")
	}

	messages, err := srv.chatRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list chat messages")
	}

	return messages, nil
}

// resolveSession returns the caller's session, creating one when sessionID is
// nil or unknown. The key-value record is checked first and the message log
// decides when the record expired or the store is unreachable.
func (srv *chatService) resolveSession(ctx context.Context, identity entity.Identity, sessionID *uuid.UUID) (*entity.ChatSession, error) {
	if sessionID == nil {
		return &entity.ChatSession{ID: uuid.New(), UserID: identity.UserID}, nil
	}

	session, err := srv.sessions.Get(ctx, *sessionID)
	switch {
	case err == nil:
		if session.UserID != identity.UserID {
			return nil, domainerrors.ErrForbidden.WithMessage("You do not own this chat session")
		}

		return session, nil
	case !errors.Is(err, service.ErrCacheMiss):
		srv.log(ctx).Warn("Failed to read chat session, using message log", slog.Any("error", err))
	}

	owner, err := srv.chatRepo.FindSessionOwner(ctx, *sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find chat session owner")
	}
	if owner != nil && *owner != identity.UserID {
		return nil, domainerrors.ErrForbidden.WithMessage("You do not own this chat session")
	}

	return &entity.ChatSession{ID: *sessionID, UserID: identity.UserID}, nil
}

// loadGrounding returns the itinerary the conversation is about, preferring
// the snapshot. Missing or invisible itineraries are ignored.
func (srv *chatService) loadGrounding(ctx context.Context, identity entity.Identity, itineraryID *uuid.UUID) *entity.Itinerary {
	if itineraryID == nil {
		return nil
	}

	itinerary, err := srv.snapshots.Get(ctx, *itineraryID)
	if err != nil {
		if !errors.Is(err, service.ErrCacheMiss) {
			srv.log(ctx).Warn("Failed to read itinerary snapshot", slog.Any("error", err))
		}

		itinerary, err = srv.itineraryRepo.FindByID(ctx, *itineraryID)
		if err != nil {
			if !errors.Is(err, repository.ErrItineraryNotFound) {
				srv.log(ctx).Warn("Failed to load itinerary for chat", slog.Any("error", err))
			}

			return nil
		}
	}

	if !itinerary.IsVisibleTo(identity.UserID) {
		return nil
	}

	return itinerary
}

// loadHistory returns the recent session turns in a shape the generator
// accepts: user and assistant roles only, starting with a user turn.
func (srv *chatService) loadHistory(ctx context.Context, sessionID uuid.UUID) []service.GenerationMessage {
	recent, err := srv.chatRepo.ListRecent(ctx, sessionID, srv.historyWindow())
	if err != nil {
		srv.log(ctx).Warn("Failed to load chat history", slog.Any("error", err))

		return nil
	}

	history := make([]service.GenerationMessage, 0, len(recent))
	for _, msg := range recent {
		if msg.Role != entity.ChatRoleUser && msg.Role != entity.ChatRoleAssistant {
			continue
		}
		if len(history) == 0 && msg.Role != entity.ChatRoleUser {
			continue
		}
		history = append(history, service.GenerationMessage{Role: string(msg.Role), Content: msg.Content})
	}

	return history
}

func (srv *chatService) newMessage(session *entity.ChatSession, identity entity.Identity, role entity.ChatRole, content string, metadata json.RawMessage) *entity.ChatMessage {
	userID := identity.UserID

	return &entity.ChatMessage{
		ID:          uuid.New(),
		SessionID:   session.ID,
		UserID:      &userID,
		ItineraryID: session.ItineraryID,
		Role:        role,
		Content:     content,
		Metadata:    metadata,
		CreatedAt:   srv.now().UTC(),
	}
}

func buildChatSystemPrompt(itinerary *entity.Itinerary) string {
	if itinerary == nil {
		return chatSystemPrompt
	}

	var b strings.Builder
	b.WriteString(chatSystemPrompt)
	b.WriteString("\n\nCurrent itinerary context:\n")
	fmt.Fprintf(&b, "Title: %s\n", itinerary.Title)
	fmt.Fprintf(&b, "Destination: %s\n", itinerary.DestinationName)
	fmt.Fprintf(&b, "Duration: %d days\n", itinerary.DurationDays)
	fmt.Fprintf(&b, "Travel Style: %s\n", itinerary.TravelStyle)
	if itinerary.StartDate != nil {
		fmt.Fprintf(&b, "Start Date: %s\n", itinerary.StartDate.Format(dateLayout))
	}

	if doc, err := entity.ParseItineraryDocument(itinerary.ItineraryData); err == nil {
		for _, day := range doc.Days {
			if day.Title != "" {
				fmt.Fprintf(&b, "Day %d: %s\n", day.DayNumber, day.Title)
			}
		}
	}

	return b.String()
}
