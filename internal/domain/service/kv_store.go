package service

import (
	"context"
	"errors"

	"columbus/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCacheMiss is returned by key-value lookups when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// ChatSessionStore keeps ephemeral chat session records with a sliding TTL.
type ChatSessionStore interface {
	Get(ctx context.Context, sessionID uuid.UUID) (*entity.ChatSession, error)
	Save(ctx context.Context, session *entity.ChatSession) error
}

// ItinerarySnapshotStore keeps a derived, eventually consistent copy of itineraries.
// It is never used to write back into the relational store.
type ItinerarySnapshotStore interface {
	Get(ctx context.Context, itineraryID uuid.UUID) (*entity.Itinerary, error)
	Put(ctx context.Context, itinerary *entity.Itinerary) error
	Delete(ctx context.Context, itineraryID uuid.UUID) error
}

// IdempotencyStore remembers which itinerary an Idempotency-Key produced.
type IdempotencyStore interface {
	// Lookup returns the remembered itinerary id, or ErrCacheMiss.
	Lookup(ctx context.Context, userID uuid.UUID, key string) (uuid.UUID, error)

	// Remember stores itineraryID for key unless one is already stored.
	Remember(ctx context.Context, userID uuid.UUID, key string, itineraryID uuid.UUID) (bool, error)
}

// RateLimiter decides whether a caller may issue another request.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
