package config

import (
	"testing"
	"time"

	"columbus/internal/domain/constants"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"anthropic": map[string]any{
			"apiKey": map[string]any{
				"secretId": "",
			},
		},
		"itinerary": map[string]any{
			"rejectUnknownFields": false,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "ANTHROPIC_APIKEY_SECRETID", want: "anthropic.apiKey.secretId"},
		{envKey: "ITINERARY_REJECTUNKNOWNFIELDS", want: "itinerary.rejectUnknownFields"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, constants.AuthModeGateway, cfg.Auth.Mode)
	assert.Equal(t, 7*24*time.Hour, cfg.Redis.SessionTTL)
	assert.Equal(t, 24*time.Hour, cfg.Redis.SnapshotTTL)
	assert.Equal(t, 20, cfg.Itinerary.ChatHistoryWindow)
	assert.Equal(t, 3, cfg.Destinations.MinCatalogResults)
	assert.False(t, cfg.Itinerary.RejectUnknownFields)
	assert.False(t, cfg.Itinerary.EnforceStatusTransitions)
	assert.Equal(t, constants.RateLimitStoreMemory, cfg.RateLimit.Store)
	assert.Equal(t, 60, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, "https://api.anthropic.com", cfg.Anthropic.BaseURL)
	assert.Equal(t, 4000, cfg.Anthropic.MaxTokens)
	assert.Equal(t, "generations/", cfg.Archive.Prefix)
	assert.Equal(t, 256, cfg.QRCode.Size)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Redis:     &RedisConfig{SessionTTL: time.Hour},
		Itinerary: &ItineraryConfig{ChatHistoryWindow: 6, RejectUnknownFields: true},
	}

	applyDefaults(cfg)

	assert.Equal(t, time.Hour, cfg.Redis.SessionTTL)
	assert.Equal(t, 6, cfg.Itinerary.ChatHistoryWindow)
	assert.True(t, cfg.Itinerary.RejectUnknownFields)
}

func TestConfig_IsProduction(t *testing.T) {
	cfg := &Config{}
	cfg.Env.Env = "Production"
	assert.True(t, cfg.IsProduction())

	cfg.Env.Env = constants.EnvDevelop
	assert.False(t, cfg.IsProduction())
}
