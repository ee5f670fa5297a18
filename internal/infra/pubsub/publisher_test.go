package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"columbus/config"
	"columbus/internal/domain/constants"
	"columbus/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestLocalHTTPPublisher_SendsPushEnvelope(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	event := &service.ItineraryEvent{
		RequestID:   "req-1",
		EventType:   service.EventItineraryGenerated,
		ItineraryID: "11111111-1111-1111-1111-111111111111",
		UserID:      "22222222-2222-2222-2222-222222222222",
		OccurredAt:  time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishItineraryEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, service.EventItineraryGenerated, received.Message.Attributes["event_type"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.ItineraryEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.ItineraryID, decoded.ItineraryID)
	assert.Equal(t, event.UserID, decoded.UserID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := publisher.PublishItineraryEvent(context.Background(), &service.ItineraryEvent{EventType: service.EventItineraryUpdated})
	assert.ErrorContains(t, err, "non-success status: 503")
}

func TestNewEventPublisher_SelectsProvider(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("noop when unconfigured", func(t *testing.T) {
		publisher, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{},
			Logger: logger,
		})
		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
		assert.NoError(t, publisher.PublishItineraryEvent(context.Background(), &service.ItineraryEvent{}))
	})

	t.Run("local requires endpoint", func(t *testing.T) {
		_, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}},
			Logger: logger,
		})
		assert.ErrorContains(t, err, "local endpoint is required")
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}},
			Logger: logger,
		})
		assert.ErrorContains(t, err, "unknown pubsub provider")
	})

	t.Run("google requires topic", func(t *testing.T) {
		_, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "columbus"}},
			Logger: logger,
		})
		assert.ErrorContains(t, err, "topic ID are required")
	})

	t.Run("local closes on stop", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		publisher, err := NewEventPublisher(PublisherParams{
			Lc:     lc,
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}},
			Logger: logger,
		})
		require.NoError(t, err)
		assert.NotNil(t, publisher)

		lc.RequireStart().RequireStop()
	})
}
