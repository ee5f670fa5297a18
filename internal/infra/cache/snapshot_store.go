package cache

import (
	"context"
	"encoding/json"
	"time"

	"columbus/config"
	"columbus/internal/domain/entity"
	"columbus/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const itinerarySnapshotKeyPrefix = "itinerary:snapshot:"

type itinerarySnapshotStore struct {
	kv  kvClient
	ttl time.Duration
}

// NewItinerarySnapshotStore keeps read-only itinerary copies refreshed by the snapshot worker.
func NewItinerarySnapshotStore(r *Redis, cfg *config.Config) service.ItinerarySnapshotStore {
	return newItinerarySnapshotStore(r, cfg.Redis.SnapshotTTL)
}

func newItinerarySnapshotStore(kv kvClient, ttl time.Duration) *itinerarySnapshotStore {
	return &itinerarySnapshotStore{kv: kv, ttl: ttl}
}

func snapshotKey(itineraryID uuid.UUID) string {
	return itinerarySnapshotKeyPrefix + itineraryID.String()
}

func (s *itinerarySnapshotStore) Get(ctx context.Context, itineraryID uuid.UUID) (*entity.Itinerary, error) {
	raw, err := s.kv.Get(ctx, snapshotKey(itineraryID))
	if err != nil {
		if errors.Is(err, service.ErrCacheMiss) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to read itinerary snapshot")
	}

	var itinerary entity.Itinerary
	if err := json.Unmarshal([]byte(raw), &itinerary); err != nil {
		return nil, errors.Wrap(err, "failed to decode itinerary snapshot")
	}

	return &itinerary, nil
}

func (s *itinerarySnapshotStore) Put(ctx context.Context, itinerary *entity.Itinerary) error {
	raw, err := json.Marshal(itinerary)
	if err != nil {
		return errors.Wrap(err, "failed to encode itinerary snapshot")
	}

	if err := s.kv.Set(ctx, snapshotKey(itinerary.ID), raw, s.ttl); err != nil {
		return errors.Wrap(err, "failed to write itinerary snapshot")
	}

	return nil
}

func (s *itinerarySnapshotStore) Delete(ctx context.Context, itineraryID uuid.UUID) error {
	if err := s.kv.Delete(ctx, snapshotKey(itineraryID)); err != nil {
		return errors.Wrap(err, "failed to delete itinerary snapshot")
	}

	return nil
}
