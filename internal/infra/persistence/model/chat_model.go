package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ChatMessageModel mirrors the 'chat_messages' table. Seq is a database-assigned
// tie-breaker for rows sharing a created_at value and is never written by GORM.
type ChatMessageModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Seq         int64          `gorm:"->;column:seq"`
	SessionID   uuid.UUID      `gorm:"type:uuid;not null;index"`
	UserID      *uuid.UUID     `gorm:"type:uuid;index"`
	ItineraryID *uuid.UUID     `gorm:"type:uuid"`
	Role        string         `gorm:"type:varchar(20);not null"`
	Content     string         `gorm:"type:text;not null"`
	Metadata    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChatMessageModel) TableName() string {
	return "chat_messages"
}
