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

const chatSessionKeyPrefix = "chat:session:"

type chatSessionStore struct {
	kv  kvClient
	ttl time.Duration
}

// NewChatSessionStore stores sessions as JSON with a TTL refreshed on every save.
func NewChatSessionStore(r *Redis, cfg *config.Config) service.ChatSessionStore {
	return newChatSessionStore(r, cfg.Redis.SessionTTL)
}

func newChatSessionStore(kv kvClient, ttl time.Duration) *chatSessionStore {
	return &chatSessionStore{kv: kv, ttl: ttl}
}

func (s *chatSessionStore) Get(ctx context.Context, sessionID uuid.UUID) (*entity.ChatSession, error) {
	raw, err := s.kv.Get(ctx, chatSessionKeyPrefix+sessionID.String())
	if err != nil {
		if errors.Is(err, service.ErrCacheMiss) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to read chat session")
	}

	var session entity.ChatSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, errors.Wrap(err, "failed to decode chat session")
	}

	return &session, nil
}

func (s *chatSessionStore) Save(ctx context.Context, session *entity.ChatSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "failed to encode chat session")
	}

	if err := s.kv.Set(ctx, chatSessionKeyPrefix+session.ID.String(), raw, s.ttl); err != nil {
		return errors.Wrap(err, "failed to save chat session")
	}

	return nil
}
