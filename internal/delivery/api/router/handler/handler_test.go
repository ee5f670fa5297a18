package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"columbus/config"
	"columbus/internal/delivery/api"
	"columbus/internal/delivery/api/middleware"
	"columbus/internal/delivery/api/router"
	"columbus/internal/delivery/api/router/handler"
	"columbus/internal/domain/constants"
	"columbus/internal/domain/entity"
	mockSvc "columbus/internal/mocks/service"
	mockUsecase "columbus/internal/mocks/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "handler-test-secret"

type apiFixtures struct {
	echo             *echo.Echo
	cfg              *config.Config
	identity         entity.Identity
	userUC           *mockUsecase.MockUserUsecase
	itineraryUC      *mockUsecase.MockItineraryUsecase
	chatUC           *mockUsecase.MockChatUsecase
	profileUC        *mockUsecase.MockProfileUsecase
	preferenceUC     *mockUsecase.MockPreferenceUsecase
	savedPlaceUC     *mockUsecase.MockSavedPlaceUsecase
	destinationUC    *mockUsecase.MockDestinationUsecase
	transportationUC *mockUsecase.MockTransportationUsecase
	feedbackUC       *mockUsecase.MockFeedbackUsecase
	limiter          *mockSvc.MockRateLimiter
}

func newAPIFixtures(t *testing.T) *apiFixtures {
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.Auth = &config.AuthConfig{Mode: constants.AuthModeHMAC, HMACSecret: testSecret}
	cfg.RateLimit = &config.RateLimitConfig{}

	f := &apiFixtures{
		cfg: cfg,
		identity: entity.Identity{
			UserID:  uuid.New(),
			Subject: "sub-ada",
			Email:   "ada@example.com",
			Roles:   entity.Roles{entity.RoleTraveler},
		},
		userUC:           mockUsecase.NewMockUserUsecase(t),
		itineraryUC:      mockUsecase.NewMockItineraryUsecase(t),
		chatUC:           mockUsecase.NewMockChatUsecase(t),
		profileUC:        mockUsecase.NewMockProfileUsecase(t),
		preferenceUC:     mockUsecase.NewMockPreferenceUsecase(t),
		savedPlaceUC:     mockUsecase.NewMockSavedPlaceUsecase(t),
		destinationUC:    mockUsecase.NewMockDestinationUsecase(t),
		transportationUC: mockUsecase.NewMockTransportationUsecase(t),
		feedbackUC:       mockUsecase.NewMockFeedbackUsecase(t),
		limiter:          mockSvc.NewMockRateLimiter(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.echo = api.NewEcho(cfg, logger)

	router.NewRouter(router.RouterParams{
		ItineraryHandler: handler.NewItineraryHandler(handler.ItineraryHandlerParams{ItineraryUC: f.itineraryUC, Logger: logger}),
		ChatHandler:      handler.NewChatHandler(f.chatUC, logger),
		UserHandler: handler.NewUserHandler(handler.UserHandlerParams{
			ProfileUC:    f.profileUC,
			PreferenceUC: f.preferenceUC,
			SavedPlaceUC: f.savedPlaceUC,
			Logger:       logger,
		}),
		TravelHandler: handler.NewTravelHandler(handler.TravelHandlerParams{
			DestinationUC:    f.destinationUC,
			TransportationUC: f.transportationUC,
			Logger:           logger,
		}),
		FeedbackHandler:     handler.NewFeedbackHandler(f.feedbackUC, logger),
		AuthMiddleware:      middleware.NewAuthMiddleware(f.userUC, cfg),
		RateLimitMiddleware: middleware.NewRateLimitMiddleware(f.limiter, cfg, logger),
	}).RegisterRoutes(f.echo)

	return f
}

func (f *apiFixtures) token(t *testing.T, groups ...string) string {
	claims := jwt.MapClaims{
		"sub":              f.identity.Subject,
		"email":            f.identity.Email,
		"cognito:username": "ada",
		"exp":              time.Now().Add(time.Hour).Unix(),
	}
	if len(groups) > 0 {
		claims["cognito:groups"] = groups
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	return signed
}

// signIn expects the caller to be resolved once and returns its bearer token.
func (f *apiFixtures) signIn(t *testing.T) string {
	f.userUC.EXPECT().ResolveIdentity(mock.Anything, mock.Anything).Return(&f.identity, nil).Once()

	return f.token(t)
}

func (f *apiFixtures) do(method, target, body, token string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}
