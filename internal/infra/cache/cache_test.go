package cache

import (
	"context"
	"strconv"
	"testing"
	"time"

	"columbus/internal/domain/entity"
	"columbus/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeKV is an in-process stand-in for the Redis commands the stores use.
type fakeKV struct {
	values  map[string]string
	ttls    map[string]time.Duration
	failErr error
}

func newFakeKV() *fakeKV {
	return &fakeKV{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeKV) Get(_ context.Context, key string) (string, error) {
	if f.failErr != nil {
		return "", f.failErr
	}
	v, ok := f.values[key]
	if !ok {
		return "", service.ErrCacheMiss
	}

	return v, nil
}

func (f *fakeKV) Set(_ context.Context, key string, value any, expiration time.Duration) error {
	if f.failErr != nil {
		return f.failErr
	}
	switch v := value.(type) {
	case []byte:
		f.values[key] = string(v)
	case string:
		f.values[key] = v
	}
	f.ttls[key] = expiration

	return nil
}

func (f *fakeKV) SetNX(ctx context.Context, key string, value any, expiration time.Duration) (bool, error) {
	if _, ok := f.values[key]; ok {
		return false, nil
	}

	return true, f.Set(ctx, key, value, expiration)
}

func (f *fakeKV) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.values, k)
	}

	return f.failErr
}

func (f *fakeKV) IncrWithExpire(_ context.Context, key string, expiration time.Duration) (int64, error) {
	if f.failErr != nil {
		return 0, f.failErr
	}
	n, _ := strconv.ParseInt(f.values[key], 10, 64)
	n++
	f.values[key] = strconv.FormatInt(n, 10)
	f.ttls[key] = expiration

	return n, nil
}

func TestChatSessionStore_SaveThenGet(t *testing.T) {
	kv := newFakeKV()
	store := newChatSessionStore(kv, 7*24*time.Hour)
	ctx := context.Background()

	session := &entity.ChatSession{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		MessageCount:   2,
		LastActivityAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Save(ctx, session))
	assert.Equal(t, 7*24*time.Hour, kv.ttls[chatSessionKeyPrefix+session.ID.String()])

	got, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, got.UserID)
	assert.Equal(t, 2, got.MessageCount)
}

func TestChatSessionStore_MissIsPassedThrough(t *testing.T) {
	store := newChatSessionStore(newFakeKV(), time.Hour)

	_, err := store.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrCacheMiss)
}

func TestItinerarySnapshotStore_PutGetDelete(t *testing.T) {
	kv := newFakeKV()
	store := newItinerarySnapshotStore(kv, time.Hour)
	ctx := context.Background()

	itinerary := &entity.Itinerary{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		Title:         "7-Day Trip to Tokyo",
		Status:        entity.ItineraryStatusDraft,
		ItineraryData: []byte(`{"days":[]}`),
	}
	require.NoError(t, store.Put(ctx, itinerary))

	got, err := store.Get(ctx, itinerary.ID)
	require.NoError(t, err)
	assert.Equal(t, itinerary.Title, got.Title)
	assert.JSONEq(t, `{"days":[]}`, string(got.ItineraryData))

	require.NoError(t, store.Delete(ctx, itinerary.ID))
	_, err = store.Get(ctx, itinerary.ID)
	assert.ErrorIs(t, err, service.ErrCacheMiss)
}

func TestItinerarySnapshotStore_WrapsStoreFailure(t *testing.T) {
	kv := newFakeKV()
	kv.failErr = errors.New("connection refused")
	store := newItinerarySnapshotStore(kv, time.Hour)

	_, err := store.Get(context.Background(), uuid.New())
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrCacheMiss)
}

func TestIdempotencyStore_RemembersFirstWriter(t *testing.T) {
	store := newIdempotencyStore(newFakeKV(), 24*time.Hour)
	ctx := context.Background()
	userID := uuid.New()
	first, second := uuid.New(), uuid.New()

	stored, err := store.Remember(ctx, userID, "abc", first)
	require.NoError(t, err)
	assert.True(t, stored)

	stored, err = store.Remember(ctx, userID, "abc", second)
	require.NoError(t, err)
	assert.False(t, stored)

	got, err := store.Lookup(ctx, userID, "abc")
	require.NoError(t, err)
	assert.Equal(t, first, got)

	_, err = store.Lookup(ctx, uuid.New(), "abc")
	assert.ErrorIs(t, err, service.ErrCacheMiss)
}

func TestRedisRateLimiter_AllowsUpToLimitPlusBurst(t *testing.T) {
	limiter := newRedisRateLimiter(newFakeKV(), 2, 1)
	ctx := context.Background()

	for range 3 {
		allowed, err := limiter.Allow(ctx, "user-1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := limiter.Allow(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = limiter.Allow(ctx, "user-2")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiter_FailsOpen(t *testing.T) {
	kv := newFakeKV()
	kv.failErr = errors.New("timeout")
	limiter := newRedisRateLimiter(kv, 1, 0)

	allowed, err := limiter.Allow(context.Background(), "user-1")
	require.Error(t, err)
	assert.True(t, allowed)
}

func TestMemoryRateLimiter_BlocksAfterBucketDrained(t *testing.T) {
	limiter := newMemoryRateLimiter(2, 0)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	ctx := context.Background()

	allowed, _ := limiter.Allow(ctx, "ip:1")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow(ctx, "ip:1")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow(ctx, "ip:1")
	assert.False(t, allowed)

	now = now.Add(30 * time.Second)
	allowed, _ = limiter.Allow(ctx, "ip:1")
	assert.True(t, allowed)
}

func TestMemoryRateLimiter_SweepsIdleVisitors(t *testing.T) {
	limiter := newMemoryRateLimiter(10, 0)
	now := time.Now()
	limiter.now = func() time.Time { return now }

	_, _ = limiter.Allow(context.Background(), "ip:old")
	now = now.Add(2 * visitorIdleTimeout)
	_, _ = limiter.Allow(context.Background(), "ip:new")

	assert.NotContains(t, limiter.visitors, "ip:old")
	assert.Contains(t, limiter.visitors, "ip:new")
}
