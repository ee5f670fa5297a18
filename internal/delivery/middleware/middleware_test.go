package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"columbus/config"
	deliverycontext "columbus/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{"reuses caller id", "gateway-req-1", true},
		{"generates when missing", "", false},
		{"replaces oversized id", strings.Repeat("x", maxRequestIDLength+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			m := NewRequestIDMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			err := m.Process(func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("inside")

				return nil
			})(c)
			require.NoError(t, err)

			require.NotEmpty(t, seen)
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Equal(t, seen, deliverycontext.GetRequestID(c))
			assert.Equal(t, tt.wantSame, seen == tt.header)
			assert.Contains(t, buf.String(), `"request_id":"`+seen+`"`)
		})
	}
}

func TestLoggerMiddleware_OnlyLogsInDebug(t *testing.T) {
	for _, debug := range []bool{true, false} {
		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Debug = debug
		m := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg)

		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/itinerary/abc", nil), rec)

		err := m.Handle(func(c echo.Context) error {
			return c.NoContent(http.StatusNotFound)
		})(c)
		require.NoError(t, err)

		if debug {
			assert.Contains(t, buf.String(), `"status":404`)
			assert.Contains(t, buf.String(), `"level":"WARN"`)
		} else {
			assert.Empty(t, buf.String())
		}
	}
}
