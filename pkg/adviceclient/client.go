// Package adviceclient talks to the advice API and falls back to the local
// keyword table whenever the server cannot be reached or gives no answer.
package adviceclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"farmadvice-backend/internal/services"
)

const DefaultBaseURL = "http://localhost:3001"

type Response struct {
	Response     string `json:"response"`
	Origin       string `json:"origin,omitempty"`
	FromFallback bool   `json:"fromFallback,omitempty"`
	Error        string `json:"error,omitempty"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Advice calls the server and returns its decoded reply.
func (c *Client) Advice(ctx context.Context, query, language string) (*Response, error) {
	body, err := json.Marshal(map[string]string{"query": query, "language": language})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/agricultural-advice", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("advice request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error: %s", http.StatusText(resp.StatusCode))
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if out.Response == "" {
		if out.Error != "" {
			return nil, fmt.Errorf("advice error: %s", out.Error)
		}
		return nil, fmt.Errorf("no response from API")
	}

	return &out, nil
}

// Ask always returns displayable advice.
func (c *Client) Ask(ctx context.Context, query, language string) string {
	resp, err := c.Advice(ctx, query, language)
	if err != nil {
		return services.FallbackAdvice(query, normalizeLanguage(language))
	}
	return resp.Response
}

// normalizeLanguage matches the server's handling of language codes.
func normalizeLanguage(language string) string {
	return strings.ToLower(strings.TrimSpace(language))
}
