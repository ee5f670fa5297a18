package service

import "context"

// GenerationMessage is one conversational turn sent to the text generator.
type GenerationMessage struct {
	Role    string // "user" or "assistant"
	Content string
}

// GenerationRequest is a single completion request.
type GenerationRequest struct {
	System    string
	Messages  []GenerationMessage
	MaxTokens int
}

// GenerationResult is the provider reply together with accounting data.
type GenerationResult struct {
	Text         string
	Model        string
	StopReason   string
	InputTokens  int
	OutputTokens int
	// Raw is the provider response body, kept for the generation archive.
	Raw []byte
}

// TextGenerator is the large-language-model provider. Calls are single-attempt
// and bounded by the provider timeout.
type TextGenerator interface {
	Generate(ctx context.Context, req *GenerationRequest) (*GenerationResult, error)

	// Name identifies the provider in errors and metrics.
	Name() string
}
