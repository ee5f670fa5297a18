package usecase

import (
	"context"
	"time"

	"columbus/internal/domain/entity"

	"github.com/google/uuid"
)

// ChatUsecase defines the travel assistant conversation operations.
type ChatUsecase interface {
	SendMessage(ctx context.Context, identity entity.Identity, input *ChatInput) (*ChatOutput, error)
	ListMessages(ctx context.Context, identity entity.Identity, sessionID uuid.UUID) ([]*entity.ChatMessage, error)
}

// ChatInput is one user turn.
type ChatInput struct {
	Message     string     `json:"message" validate:"required,max=4000"`
	SessionID   *uuid.UUID `json:"sessionId,omitempty"`
	ItineraryID *uuid.UUID `json:"itineraryId,omitempty"`
}

// ChatOutput is the assistant reply.
type ChatOutput struct {
	SessionID uuid.UUID `json:"session_id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
