package handler_test

import (
	"net/http"
	"testing"
	"time"

	"columbus/internal/domain/constants"
	"columbus/internal/domain/entity"
	domainerrors "columbus/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck_NoAuth(t *testing.T) {
	fx := newAPIFixtures(t)

	rec := fx.do(http.MethodGet, "/health", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.True(t, env.Success)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestMetricsEndpoint(t *testing.T) {
	fx := newAPIFixtures(t)

	fx.do(http.MethodGet, "/health", "", "")
	rec := fx.do(http.MethodGet, "/metrics", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "columbus_http_requests_total")
}

func TestAuthentication(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		fx := newAPIFixtures(t)

		rec := fx.do(http.MethodGet, "/user/preferences", "", "")

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		env := decode(t, rec)
		assert.False(t, env.Success)
		assert.Equal(t, "Authorization header is missing", env.Message)
		require.NotNil(t, env.Error)
		assert.Equal(t, domainerrors.CodeAuth, env.Error.Code)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		fx := newAPIFixtures(t)

		rec := fx.do(http.MethodGet, "/user/preferences", "", "", echo.HeaderAuthorization, "Basic YWRhOnNlY3JldA==")

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid token format, must be Bearer token", decode(t, rec).Message)
	})

	t.Run("wrong signature", func(t *testing.T) {
		fx := newAPIFixtures(t)
		token := fx.token(t)
		fx.cfg.Auth.HMACSecret = "another-secret"

		rec := fx.do(http.MethodGet, "/user/preferences", "", token)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid or expired token", decode(t, rec).Message)
	})

	t.Run("gateway mode trusts claims", func(t *testing.T) {
		fx := newAPIFixtures(t)
		token := fx.token(t, "support", "admins")
		fx.cfg.Auth.Mode = constants.AuthModeGateway
		fx.cfg.Auth.HMACSecret = "ignored"

		fx.userUC.EXPECT().
			ResolveIdentity(mock.Anything, &entity.Claims{
				Subject:  fx.identity.Subject,
				Email:    fx.identity.Email,
				Username: "ada",
				Groups:   []string{"support", "admins"},
			}).
			Return(&fx.identity, nil)
		fx.preferenceUC.EXPECT().GetPreferences(mock.Anything, fx.identity).Return(entity.DefaultUserPreferences(fx.identity.UserID), nil)

		rec := fx.do(http.MethodGet, "/user/preferences", "", token)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("gateway mode rejects expired claims", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.cfg.Auth.Mode = constants.AuthModeGateway
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": fx.identity.Subject,
			"exp": time.Now().Add(-time.Minute).Unix(),
		}).SignedString([]byte("gateway-key"))
		require.NoError(t, err)

		rec := fx.do(http.MethodGet, "/user/preferences", "", expired)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid or expired token", decode(t, rec).Message)
		fx.userUC.AssertNotCalled(t, "ResolveIdentity", mock.Anything, mock.Anything)
	})

	t.Run("gateway mode checks the issuer", func(t *testing.T) {
		fx := newAPIFixtures(t)
		token := fx.token(t)
		fx.cfg.Auth.Mode = constants.AuthModeGateway
		fx.cfg.Auth.Issuer = "https://cognito-idp.example.com/pool"

		rec := fx.do(http.MethodGet, "/user/preferences", "", token)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("inactive user", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.userUC.EXPECT().ResolveIdentity(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrAuth.WithMessage("User account is inactive"))

		rec := fx.do(http.MethodGet, "/user/preferences", "", fx.token(t))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "User account is inactive", decode(t, rec).Message)
	})
}

func TestErrorEnvelope(t *testing.T) {
	t.Run("unknown route", func(t *testing.T) {
		fx := newAPIFixtures(t)

		rec := fx.do(http.MethodGet, "/nowhere", "", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		env := decode(t, rec)
		assert.False(t, env.Success)
		assert.Equal(t, "Route not found", env.Message)
		assert.Equal(t, domainerrors.CodeNotFound, env.Error.Code)
	})

	t.Run("upstream details outside production", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.transportationUC.EXPECT().Guidance(mock.Anything, mock.Anything).
			Return(nil, domainerrors.NewUpstreamError("google_maps", errors.New("OVER_QUERY_LIMIT")))

		rec := fx.do(http.MethodGet, "/transportation/guidance?origin=A&destination=B", "", fx.signIn(t))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "The google_maps service is currently unavailable", env.Message)
		require.NotNil(t, env.Error)
		assert.Equal(t, domainerrors.CodeUpstream, env.Error.Code)
		assert.Equal(t, "OVER_QUERY_LIMIT", env.Error.Details)
	})

	t.Run("redacted in production", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.cfg.Env.Env = constants.EnvProduction
		fx.transportationUC.EXPECT().Guidance(mock.Anything, mock.Anything).
			Return(nil, errors.New("pq: connection refused"))

		rec := fx.do(http.MethodGet, "/transportation/guidance?origin=A&destination=B", "", fx.signIn(t))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "Internal server error, please try again later", env.Message)
		assert.Nil(t, env.Error)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})

	t.Run("malformed body", func(t *testing.T) {
		fx := newAPIFixtures(t)

		rec := fx.do(http.MethodPost, "/chat", `{"message":`, fx.signIn(t))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Malformed request", decode(t, rec).Message)
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("throttled before identity resolution", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.cfg.RateLimit.Enabled = true
		fx.limiter.EXPECT().Allow(mock.Anything, "sub:"+fx.identity.Subject).Return(false, nil)

		rec := fx.do(http.MethodGet, "/user/preferences", "", fx.token(t))

		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "60", rec.Header().Get(echo.HeaderRetryAfter))
		assert.Equal(t, domainerrors.CodeRateLimited, decode(t, rec).Error.Code)
		fx.userUC.AssertNotCalled(t, "ResolveIdentity", mock.Anything, mock.Anything)
	})

	t.Run("requests without a token are keyed by client ip", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.cfg.RateLimit.Enabled = true
		fx.limiter.EXPECT().Allow(mock.Anything, "ip:203.0.113.7").Return(false, nil)

		rec := fx.do(http.MethodGet, "/user/preferences", "", "", echo.HeaderXRealIP, "203.0.113.7")

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("limiter failure lets the request through", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.cfg.RateLimit.Enabled = true
		fx.limiter.EXPECT().Allow(mock.Anything, mock.Anything).Return(false, errors.New("redis: connection refused"))
		fx.preferenceUC.EXPECT().GetPreferences(mock.Anything, fx.identity).Return(entity.DefaultUserPreferences(fx.identity.UserID), nil)

		rec := fx.do(http.MethodGet, "/user/preferences", "", fx.signIn(t))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
