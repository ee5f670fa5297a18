package cache

import (
	"context"
	"time"

	"columbus/config"
	"columbus/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const idempotencyKeyPrefix = "idempotency:generate:"

type idempotencyStore struct {
	kv  kvClient
	ttl time.Duration
}

// NewIdempotencyStore remembers generated itinerary ids per (user, Idempotency-Key).
func NewIdempotencyStore(r *Redis, cfg *config.Config) service.IdempotencyStore {
	return newIdempotencyStore(r, cfg.Redis.IdempotencyTTL)
}

func newIdempotencyStore(kv kvClient, ttl time.Duration) *idempotencyStore {
	return &idempotencyStore{kv: kv, ttl: ttl}
}

// Keys are scoped per user so two callers can never collide on a shared key.
func idempotencyKey(userID uuid.UUID, key string) string {
	return idempotencyKeyPrefix + userID.String() + ":" + key
}

func (s *idempotencyStore) Lookup(ctx context.Context, userID uuid.UUID, key string) (uuid.UUID, error) {
	raw, err := s.kv.Get(ctx, idempotencyKey(userID, key))
	if err != nil {
		if errors.Is(err, service.ErrCacheMiss) {
			return uuid.Nil, err
		}

		return uuid.Nil, errors.Wrap(err, "failed to read idempotency key")
	}

	itineraryID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "corrupt idempotency key value")
	}

	return itineraryID, nil
}

func (s *idempotencyStore) Remember(ctx context.Context, userID uuid.UUID, key string, itineraryID uuid.UUID) (bool, error) {
	stored, err := s.kv.SetNX(ctx, idempotencyKey(userID, key), itineraryID.String(), s.ttl)
	if err != nil {
		return false, errors.Wrap(err, "failed to store idempotency key")
	}

	return stored, nil
}
