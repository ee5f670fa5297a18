package middleware

import (
	"log/slog"
	"time"

	"columbus/config"
	deliverycontext "columbus/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware adds a detailed debug record per request on top of the
// slog-echo access log. It is a pass-through unless env.debug is set.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	if !m.debug {
		return next
	}

	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		m.logRequest(c, time.Since(start), err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, latency time.Duration, err error) {
	req := c.Request()
	res := c.Response()

	attrs := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.Group("http",
			slog.String("method", req.Method),
			slog.String("route", c.Path()),
			slog.String("path", req.URL.Path),
			slog.String("query", req.URL.RawQuery),
			slog.Int("status", res.Status),
			slog.Int64("request_bytes", req.ContentLength),
			slog.Int64("response_bytes", res.Size),
		),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
	}

	if identity := deliverycontext.GetIdentity(c); identity != nil {
		attrs = append(attrs, slog.Group("caller",
			slog.String("user_id", identity.UserID.String()),
			slog.Any("roles", identity.Roles.ToStrings()),
		))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	m.logger.LogAttrs(req.Context(), levelForStatus(res.Status), "Request detail", attrs...)
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelDebug
	}
}
