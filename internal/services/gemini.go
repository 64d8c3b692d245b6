package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"farmadvice-backend/internal/config"
)

// GeminiGenerator answers with a Gemini model instead of the Hugging Face
// inference API. It takes the same prompt and generation parameters.
type GeminiGenerator struct {
	client   *genai.Client
	generate func(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error)
}

func NewGeminiGenerator(ctx context.Context, apiKey, modelName string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(temperature)
	model.SetTopP(topP)
	model.SetMaxOutputTokens(maxNewTokens)

	return &GeminiGenerator{
		client: client,
		generate: func(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error) {
			return model.GenerateContent(ctx, genai.Text(prompt))
		},
	}, nil
}

func (g *GeminiGenerator) Name() string { return config.ProviderGemini }

func (g *GeminiGenerator) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.generate(ctx, prompt)
	if err != nil {
		return "", &TransportError{Message: err.Error(), Err: err}
	}

	text := extractText(resp)
	if strings.TrimSpace(text) == "" {
		return "", &FormatError{Message: "Invalid API response"}
	}
	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
