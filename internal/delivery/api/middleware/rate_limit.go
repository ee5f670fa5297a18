package middleware

import (
	"log/slog"

	"columbus/config"
	deliverycontext "columbus/internal/delivery/context"
	domainerrors "columbus/internal/domain/errors"
	"columbus/internal/domain/service"
	"columbus/internal/infra/metrics"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const retryAfterSeconds = "60"

// RateLimitMiddleware throttles callers per user, or per client IP when the
// request carries no usable bearer token.
type RateLimitMiddleware struct {
	limiter service.RateLimiter
	cfg     *config.Config
	logger  *slog.Logger
}

// NewRateLimitMiddleware creates a new rate limiting middleware
func NewRateLimitMiddleware(limiter service.RateLimiter, cfg *config.Config, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		cfg:     cfg,
		logger:  logger,
	}
}

// Handle fails open: a limiter error lets the request through.
func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.cfg.RateLimit == nil || !m.cfg.RateLimit.Enabled {
			return next(c)
		}

		key := limitKey(c)
		ctx := c.Request().Context()
		allowed, err := m.limiter.Allow(ctx, key)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Rate limiter unavailable", slog.Any("error", err))

			return next(c)
		}
		if !allowed {
			metrics.IncRateLimited()
			c.Response().Header().Set(echo.HeaderRetryAfter, retryAfterSeconds)

			return domainerrors.ErrRateLimited
		}

		return next(c)
	}
}

// limitKey runs ahead of authentication, so a throttled request never reaches
// identity resolution. The token subject is read without verification;
// Authenticate still rejects a forged token afterwards.
func limitKey(c echo.Context) string {
	if identity := deliverycontext.GetIdentity(c); identity != nil {
		return "user:" + identity.UserID.String()
	}

	if tokenString, err := bearerToken(c); err == nil {
		claims := jwt.MapClaims{}
		if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err == nil {
			if subject, _ := claims.GetSubject(); subject != "" {
				return "sub:" + subject
			}
		}
	}

	return "ip:" + c.RealIP()
}
