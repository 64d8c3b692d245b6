package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"farmadvice-backend/internal/config"
)

const maxInferenceBodyBytes = 1 << 20

type HuggingFaceGenerator struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewHuggingFaceGenerator(apiKey, baseURL, model string, timeout time.Duration) *HuggingFaceGenerator {
	return &HuggingFaceGenerator{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

func (g *HuggingFaceGenerator) Name() string { return config.ProviderHuggingFace }

type hfParameters struct {
	MaxNewTokens int     `json:"max_new_tokens"`
	Temperature  float64 `json:"temperature"`
	TopP         float64 `json:"top_p"`
	DoSample     bool    `json:"do_sample"`
}

type hfOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
	Options    hfOptions    `json:"options"`
}

type hfGeneration struct {
	GeneratedText string `json:"generated_text"`
}

func (g *HuggingFaceGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(hfRequest{
		Inputs: prompt,
		Parameters: hfParameters{
			MaxNewTokens: maxNewTokens,
			Temperature:  temperature,
			TopP:         topP,
			DoSample:     true,
		},
		Options: hfOptions{WaitForModel: true},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/"+g.model, bytes.NewReader(body))
	if err != nil {
		return "", &TransportError{Message: err.Error(), Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")
	// Block on a cold model instead of getting a 503 back
	req.Header.Set("x-wait-for-model", "true")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", &TransportError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxInferenceBodyBytes))
	if err != nil {
		return "", &TransportError{StatusCode: resp.StatusCode, Message: err.Error(), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &TransportError{
			StatusCode: resp.StatusCode,
			Message:    hfErrorMessage(data, resp.StatusCode),
		}
	}

	var generations []hfGeneration
	if err := json.Unmarshal(data, &generations); err != nil {
		return "", &FormatError{Message: "Invalid API response"}
	}
	if len(generations) == 0 || generations[0].GeneratedText == "" {
		return "", &FormatError{Message: "Invalid API response"}
	}

	return generations[0].GeneratedText, nil
}

// hfErrorMessage prefers the "error" string of an error body over the
// generic status text.
func hfErrorMessage(body []byte, status int) string {
	var payload struct {
		Error any `json:"error"`
	}
	if json.Unmarshal(body, &payload) == nil {
		if msg, ok := payload.Error.(string); ok && msg != "" {
			return msg
		}
	}
	return http.StatusText(status)
}
