package services

import (
	"context"
	"fmt"
	"strings"
)

// ImageInput is an image attached to the analysis prompt, followed by a
// caption telling the model what it is looking at.
type ImageInput struct {
	MediaType string
	Data      []byte
	Caption   string
}

type ModelRequest struct {
	System string
	Text   string
	Images []ImageInput
}

// LLMService sends one analysis prompt to a language model and returns the
// raw text of its answer.
type LLMService interface {
	Name() string
	Generate(ctx context.Context, req ModelRequest) (string, error)
}

const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

type LLMOptions struct {
	Provider        string
	AnthropicAPIKey string
	AnthropicModel  string
	GeminiAPIKey    string
	GeminiModel     string
	MaxTokens       int
}

// NewLLMService builds the client for the configured provider.
func NewLLMService(opts LLMOptions) (LLMService, error) {
	switch strings.ToLower(opts.Provider) {
	case "", ProviderAnthropic:
		return NewAnthropicService(opts.AnthropicAPIKey, opts.AnthropicModel, opts.MaxTokens)
	case ProviderGemini:
		return NewGeminiService(opts.GeminiAPIKey, opts.GeminiModel, opts.MaxTokens)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", opts.Provider)
	}
}

func apiKeyConfigured(key string) bool {
	key = strings.TrimSpace(key)
	return key != "" && key != "placeholder"
}
