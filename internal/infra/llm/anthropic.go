// Package llm adapts the Anthropic Messages API to the TextGenerator port.
package llm

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"columbus/config"
	"columbus/internal/domain/service"
	"columbus/internal/infra/secrets"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/pkg/errors"
)

const (
	providerName       = "anthropic"
	defaultTemperature = 0.7
)

// anthropicClient calls the Messages API once per request. The SDK retry loop
// is disabled; a failed generation is reported to the caller as is.
type anthropicClient struct {
	cfg     *config.AnthropicConfig
	secrets *secrets.Resolver
	client  anthropic.Client
	logger  *slog.Logger
}

// NewAnthropicClient is the constructor for the Anthropic text generator.
func NewAnthropicClient(cfg *config.Config, resolver *secrets.Resolver, logger *slog.Logger) service.TextGenerator {
	opts := []option.RequestOption{
		option.WithHTTPClient(&http.Client{Timeout: cfg.Anthropic.Timeout}),
		option.WithMaxRetries(0),
	}
	if cfg.Anthropic.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Anthropic.Timeout))
	}
	if cfg.Anthropic.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(strings.TrimRight(cfg.Anthropic.BaseURL, "/")+"/"))
	}

	return &anthropicClient{
		cfg:     cfg.Anthropic,
		secrets: resolver,
		client:  anthropic.NewClient(opts...),
		logger:  logger,
	}
}

func (c *anthropicClient) Name() string {
	return providerName
}

func (c *anthropicClient) Generate(ctx context.Context, req *service.GenerationRequest) (*service.GenerationResult, error) {
	apiKey, err := c.secrets.Resolve(ctx, c.cfg.APIKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve anthropic api key")
	}

	msg, err := c.client.Messages.New(ctx, c.messageParams(req), option.WithAPIKey(apiKey))
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			c.logger.WarnContext(ctx, "Anthropic rejected request", slog.Int("status", apiErr.StatusCode))
		}

		return nil, errors.Wrap(err, "anthropic request failed")
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return nil, errors.New("anthropic response contained no text")
	}

	c.logger.DebugContext(ctx, "Anthropic completion received",
		slog.String("model", string(msg.Model)),
		slog.String("stop_reason", string(msg.StopReason)),
		slog.Int64("input_tokens", msg.Usage.InputTokens),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
	)

	return &service.GenerationResult{
		Text:         text.String(),
		Model:        string(msg.Model),
		StopReason:   string(msg.StopReason),
		InputTokens:  int(msg.Usage.InputTokens),
		OutputTokens: int(msg.Usage.OutputTokens),
		Raw:          []byte(msg.RawJSON()),
	}, nil
}

func (c *anthropicClient) messageParams(req *service.GenerationRequest) anthropic.MessageNewParams {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = c.cfg.MaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.cfg.Model),
		MaxTokens:   int64(maxTokens),
		Temperature: anthropic.Float(defaultTemperature),
		Messages:    make([]anthropic.MessageParam, 0, len(req.Messages)),
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	for _, m := range req.Messages {
		block := anthropic.NewTextBlock(m.Content)
		if m.Role == "assistant" {
			params.Messages = append(params.Messages, anthropic.NewAssistantMessage(block))

			continue
		}
		params.Messages = append(params.Messages, anthropic.NewUserMessage(block))
	}

	return params
}
