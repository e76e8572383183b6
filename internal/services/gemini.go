package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

type geminiService struct {
	client    *genai.Client
	modelName string
	maxTokens int32
}

func NewGeminiService(apiKey, model string, maxTokens int) (LLMService, error) {
	if !apiKeyConfigured(apiKey) {
		return nil, errors.New("GEMINI_API_KEY not configured")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	if model == "" {
		model = defaultGeminiModel
	}
	if maxTokens <= 0 {
		maxTokens = 4096
	}

	return &geminiService{
		client:    client,
		modelName: model,
		maxTokens: int32(maxTokens),
	}, nil
}

func (g *geminiService) Name() string {
	return ProviderGemini
}

// Generate implements LLMService.
func (g *geminiService) Generate(ctx context.Context, req ModelRequest) (string, error) {
	temperature := float32(0)
	config := &genai.GenerateContentConfig{
		Temperature:       &temperature,
		MaxOutputTokens:   g.maxTokens,
		SystemInstruction: genai.NewContentFromText(req.System, genai.RoleUser),
		ResponseMIMEType:  "application/json",
	}

	parts := []*genai.Part{genai.NewPartFromText(req.Text)}
	for _, img := range req.Images {
		parts = append(parts,
			genai.NewPartFromBytes(img.Data, img.MediaType),
			genai.NewPartFromText(img.Caption),
		)
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, config)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", &UpstreamError{
				Provider:   ProviderGemini,
				StatusCode: apiErr.Code,
				Message:    apiErr.Message,
				Err:        err,
			}
		}
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		log.Println("❌ Gemini API returned nil response")
		return "", fmt.Errorf("no response generated (nil response)")
	}

	return resp.Text(), nil
}
