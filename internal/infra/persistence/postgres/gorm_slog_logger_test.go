package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"columbus/config"
	deliverycontext "columbus/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func sqlFn() (string, int64) {
	return `SELECT * FROM "itineraries" WHERE id = 'x'`, 0
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, request bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&base, nil)), &config.Config{})

	reqLogger := slog.New(slog.NewJSONHandler(&request, nil)).With(slog.String("request_id", "req-42"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), sqlFn, errors.New("connection reset"))

	assert.Empty(t, base.String())
	assert.Contains(t, request.String(), `"request_id":"req-42"`)
	assert.Contains(t, request.String(), "GORM query failed")
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		begin   time.Time
		err     error
		wantLog string
	}{
		{"record not found is silent", false, time.Now(), gorm.ErrRecordNotFound, ""},
		{"fast query silent without debug", false, time.Now(), nil, ""},
		{"fast query logged in debug", true, time.Now(), nil, "GORM query"},
		{"slow query", false, time.Now().Add(-time.Second), nil, "GORM slow query"},
		{"failure", false, time.Now(), errors.New("syntax error"), "GORM query failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg)

			l.Trace(context.Background(), tt.begin, sqlFn, tt.err)

			if tt.wantLog == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.wantLog)
		})
	}
}
