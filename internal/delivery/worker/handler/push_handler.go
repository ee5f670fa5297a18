package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"columbus/config"
	deliverycontext "columbus/internal/delivery/context"
	"columbus/internal/domain/constants"
	"columbus/internal/domain/service"
	"columbus/internal/infra/metrics"
	"columbus/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// PushHandler refreshes itinerary snapshots from Pub/Sub push messages.
// Answers: 200 done, 400 never processable, 503 retry later.
type PushHandler struct {
	verifyPushAuth bool
	verifyToken    func(*http.Request) error
	logger         *slog.Logger
	snapshotUC     usecase.SnapshotUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	SnapshotUC usecase.SnapshotUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google push requests carry an OIDC token, and not in local development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verifyToken:    verifyPubSubToken,
		logger:         params.Logger,
		snapshotUC:     params.SnapshotUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		return h.malformed(c, "Failed to parse push message", err)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		return h.malformed(c, "Failed to decode message data", err)
	}

	var event service.ItineraryEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return h.malformed(c, "Failed to parse itinerary event", err)
	}

	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing itinerary event",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("event_type", event.EventType),
		slog.String("itinerary_id", event.ItineraryID),
	)

	if err := h.snapshotUC.Refresh(ctx, &event); err != nil {
		if errors.Is(err, usecase.ErrMalformedEvent) {
			return h.malformed(c, "Itinerary event cannot be processed", err)
		}

		reqLogger.Error("[Worker] Failed to refresh itinerary snapshot",
			slog.String("itinerary_id", event.ItineraryID),
			slog.Any("error", err),
		)
		metrics.ObserveSnapshotRefresh(metrics.OutcomeRetry)

		// Pub/Sub redelivers on any non-2xx answer
		return c.NoContent(http.StatusServiceUnavailable)
	}

	metrics.ObserveSnapshotRefresh(metrics.OutcomeSuccess)

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) malformed(c echo.Context, msg string, err error) error {
	h.logger.Error("[Worker] "+msg, slog.Any("error", err))
	metrics.ObserveSnapshotRefresh(metrics.OutcomeMalformed)

	return c.NoContent(http.StatusBadRequest)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.ItineraryEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	// From RequestIDMiddleware via X-Request-Id header
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
