package repository

import (
	"context"

	"columbus/internal/domain/entity"

	"github.com/google/uuid"
)

// ChatRepository is the append-only chat message log.
type ChatRepository interface {
	// Append stores a message.
	Append(ctx context.Context, message *entity.ChatMessage) error

	// ListRecent returns at most limit of the latest messages of a session in
	// ascending append order.
	ListRecent(ctx context.Context, sessionID uuid.UUID, limit int) ([]*entity.ChatMessage, error)

	// ListBySession returns every message of a session in ascending append order.
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*entity.ChatMessage, error)

	// FindSessionOwner returns the user of the first message of a session, or
	// nil when the session has no messages.
	FindSessionOwner(ctx context.Context, sessionID uuid.UUID) (*uuid.UUID, error)
}
