package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ChatRole is the author of a chat message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
	ChatRoleSystem    ChatRole = "system"
)

// ChatMessage is one append-only row of a chat session log.
type ChatMessage struct {
	ID          uuid.UUID       `json:"id"`
	SessionID   uuid.UUID       `json:"session_id"`
	UserID      *uuid.UUID      `json:"user_id,omitempty"`
	ItineraryID *uuid.UUID      `json:"itinerary_id,omitempty"`
	Role        ChatRole        `json:"role"`
	Content     string          `json:"content"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ChatSession is the ephemeral record of an ongoing conversation kept in the
// key-value store. The relational message log remains the source of truth.
type ChatSession struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	ItineraryID    *uuid.UUID `json:"itinerary_id,omitempty"`
	MessageCount   int        `json:"message_count"`
	LastActivityAt time.Time  `json:"last_activity_at"`
}
