package llm

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"columbus/config"
	"columbus/internal/domain/service"
	"columbus/internal/infra/secrets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Model       string   `json:"model"`
	MaxTokens   int      `json:"max_tokens"`
	Temperature *float64 `json:"temperature"`
	System      []struct {
		Text string `json:"text"`
	} `json:"system"`
	Messages []struct {
		Role    string `json:"role"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"messages"`
}

func createTestAnthropicClient(t *testing.T, handler http.HandlerFunc) service.TextGenerator {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{Anthropic: &config.AnthropicConfig{
		BaseURL:   server.URL,
		Model:     "claude-3-sonnet-20240229",
		MaxTokens: 1024,
		Timeout:   5 * time.Second,
		APIKey:    config.SecretRef{Value: "sk-test"},
	}}

	return NewAnthropicClient(cfg, secrets.NewResolver(cfg), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAnthropicClient_Generate(t *testing.T) {
	var captured capturedRequest
	client := createTestAnthropicClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "sk-test", r.Header.Get("X-Api-Key"))
		assert.NotEmpty(t, r.Header.Get("Anthropic-Version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "claude-3-sonnet-20240229",
			"stop_reason": "end_turn",
			"content": [{"type": "text", "text": "Hello "}, {"type": "text", "text": "traveler"}],
			"usage": {"input_tokens": 12, "output_tokens": 4}
		}`))
	})

	result, err := client.Generate(context.Background(), &service.GenerationRequest{
		System: "You are a travel assistant.",
		Messages: []service.GenerationMessage{
			{Role: "user", Content: "Hi"},
			{Role: "assistant", Content: "Where to?"},
			{Role: "user", Content: "Kyoto"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Hello traveler", result.Text)
	assert.Equal(t, "end_turn", result.StopReason)
	assert.Equal(t, 12, result.InputTokens)
	assert.Equal(t, 4, result.OutputTokens)
	assert.Contains(t, string(result.Raw), "msg_1")

	assert.Equal(t, "claude-3-sonnet-20240229", captured.Model)
	assert.Equal(t, 1024, captured.MaxTokens)
	require.NotNil(t, captured.Temperature)
	assert.InDelta(t, 0.7, *captured.Temperature, 0.001)
	require.Len(t, captured.System, 1)
	assert.Equal(t, "You are a travel assistant.", captured.System[0].Text)
	require.Len(t, captured.Messages, 3)
	assert.Equal(t, "assistant", captured.Messages[1].Role)
	require.Len(t, captured.Messages[2].Content, 1)
	assert.Equal(t, "Kyoto", captured.Messages[2].Content[0].Text)
}

func TestAnthropicClient_ProviderErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	client := createTestAnthropicClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"rate_limit_error","message":"slow down"}}`))
	})

	_, err := client.Generate(context.Background(), &service.GenerationRequest{
		Messages: []service.GenerationMessage{{Role: "user", Content: "Hi"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate_limit_error")
	assert.Equal(t, int32(1), calls.Load())
}

func TestAnthropicClient_EmptyContent(t *testing.T) {
	var captured capturedRequest
	client := createTestAnthropicClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_2","type":"message","role":"assistant","content": [], "usage": {}}`))
	})

	_, err := client.Generate(context.Background(), &service.GenerationRequest{
		Messages:  []service.GenerationMessage{{Role: "user", Content: "Hi"}},
		MaxTokens: 10,
	})
	assert.ErrorContains(t, err, "no text")
	assert.Equal(t, 10, captured.MaxTokens)
	assert.Empty(t, captured.System)
}
