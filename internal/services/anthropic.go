package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultAnthropicModel = "claude-sonnet-4-20250514"

// AnthropicMessager is the part of the Anthropic client the service uses.
type AnthropicMessager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

type anthropicService struct {
	messages  AnthropicMessager
	model     string
	maxTokens int64
}

func NewAnthropicService(apiKey, model string, maxTokens int) (LLMService, error) {
	if !apiKeyConfigured(apiKey) {
		return nil, errors.New("ANTHROPIC_API_KEY not configured")
	}
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return newAnthropicService(&client.Messages, model, maxTokens), nil
}

func newAnthropicService(messages AnthropicMessager, model string, maxTokens int) *anthropicService {
	if model == "" {
		model = defaultAnthropicModel
	}
	if maxTokens <= 0 {
		maxTokens = 4096
	}
	return &anthropicService{
		messages:  messages,
		model:     model,
		maxTokens: int64(maxTokens),
	}
}

func (a *anthropicService) Name() string {
	return ProviderAnthropic
}

// Generate implements LLMService.
func (a *anthropicService) Generate(ctx context.Context, req ModelRequest) (string, error) {
	blocks := []anthropic.ContentBlockParamUnion{anthropic.NewTextBlock(req.Text)}
	for _, img := range req.Images {
		blocks = append(blocks,
			anthropic.NewImageBlockBase64(img.MediaType, base64.StdEncoding.EncodeToString(img.Data)),
			anthropic.NewTextBlock(img.Caption),
		)
	}

	resp, err := a.messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(a.model),
		MaxTokens:   a.maxTokens,
		System:      []anthropic.TextBlockParam{{Text: req.System}},
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(blocks...)},
		Temperature: anthropic.Float(0),
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", &UpstreamError{
				Provider:   ProviderAnthropic,
				StatusCode: apiErr.StatusCode,
				Message:    apiErr.Error(),
				Err:        err,
			}
		}
		return "", fmt.Errorf("failed to call anthropic: %w", err)
	}

	var sb strings.Builder
	for _, b := range resp.Content {
		if b.Type == "text" {
			sb.WriteString(b.Text)
		}
	}
	return sb.String(), nil
}
