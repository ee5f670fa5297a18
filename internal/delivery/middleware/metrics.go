package middleware

import (
	"time"

	"columbus/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics records the count and latency of every request by route pattern.
// It must be the innermost middleware so the recorded status is final.
func Metrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			// Render now so the status is known; the handler skips committed responses.
			c.Error(err)
			status = c.Response().Status
		}

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Request().Method, path, status, time.Since(start))

		return err
	}
}
