package service

import (
	"context"
	"time"
)

// Itinerary lifecycle event types
const (
	EventItineraryGenerated = "itinerary.generated"
	EventItineraryUpdated   = "itinerary.updated"
)

// ItineraryEvent announces a change to an itinerary so derived copies
// (the key-value snapshot) can be refreshed from the relational source of truth.
type ItineraryEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	EventType   string    `json:"event_type"`
	ItineraryID string    `json:"itinerary_id"`
	UserID      string    `json:"user_id"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishItineraryEvent publishes an itinerary lifecycle event
	PublishItineraryEvent(ctx context.Context, event *ItineraryEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
