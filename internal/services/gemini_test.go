package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{}
	for _, p := range parts {
		content.Parts = append(content.Parts, genai.Text(p))
	}
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: content}}}
}

func TestExtractText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("Use "), genai.Text("compost.")}}},
			{Content: nil},
		},
	}

	assert.Equal(t, "Use compost.", extractText(resp))
	assert.Empty(t, extractText(nil))
	assert.Empty(t, extractText(&genai.GenerateContentResponse{}))
}

func TestGeminiGenerator_Generate(t *testing.T) {
	apiErr := errors.New("rpc error: code = PermissionDenied")

	tests := []struct {
		name       string
		resp       *genai.GenerateContentResponse
		err        error
		wantText   string
		wantTrans  bool
		wantFormat bool
	}{
		{name: "text passes through", resp: geminiResponse("Space cassava ", "1m apart."), wantText: "Space cassava 1m apart."},
		{name: "api error", err: apiErr, wantTrans: true},
		{name: "no candidates", resp: &genai.GenerateContentResponse{}, wantFormat: true},
		{name: "nil response", resp: nil, wantFormat: true},
		{name: "blank text", resp: geminiResponse("  ", "\n"), wantFormat: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var gotPrompt string
			gen := &GeminiGenerator{
				generate: func(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error) {
					gotPrompt = prompt
					return tc.resp, tc.err
				},
			}

			text, err := gen.Generate(context.Background(), "my prompt")
			assert.Equal(t, "my prompt", gotPrompt)

			switch {
			case tc.wantTrans:
				var transErr *TransportError
				require.True(t, errors.As(err, &transErr))
				assert.ErrorIs(t, err, apiErr)
				assert.Zero(t, transErr.StatusCode)
			case tc.wantFormat:
				var fmtErr *FormatError
				require.True(t, errors.As(err, &fmtErr))
				assert.Equal(t, "Invalid API response", fmtErr.Message)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.wantText, text)
			}
		})
	}
}

func TestGeminiGenerator_FailureServesFallback(t *testing.T) {
	gen := &GeminiGenerator{
		generate: func(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error) {
			return nil, errors.New("quota exceeded")
		},
	}

	result := NewAdvisor(gen, nil).GetAdvice(context.Background(), queryFor("leaves yellowing", "en"))

	assert.Equal(t, yellowingAdvice, result.Text)
	assert.Equal(t, "quota exceeded", result.ErrorDetail)
	assert.NoError(t, gen.Close())
}
