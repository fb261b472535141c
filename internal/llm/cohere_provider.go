package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const cohereChatURL = "https://api.cohere.ai/v1/chat"

// CohereProvider implements AdviceProvider against the Cohere chat API. It is
// the second link of the fallback chain; there is no official Go SDK pinned
// here, so it speaks plain HTTP.
type CohereProvider struct {
	apiKey     string
	httpClient *http.Client
}

// NewCohereProvider creates a Cohere-backed advice provider. Returns a nil
// interface when apiKey is empty so NewChain drops it.
func NewCohereProvider(apiKey string) AdviceProvider {
	if apiKey == "" {
		return nil
	}
	return &CohereProvider{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (p *CohereProvider) Name() string { return "cohere" }

type cohereRequest struct {
	Message     string  `json:"message"`
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

type cohereResponse struct {
	Text string `json:"text"`
}

// Generate calls the Cohere chat endpoint.
func (p *CohereProvider) Generate(ctx context.Context, query string) (string, error) {
	body, err := json.Marshal(cohereRequest{
		Message:     fmt.Sprintf(chatPrompt, query),
		Model:       "command-light",
		Temperature: 0.7,
		MaxTokens:   150,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderRequest, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cohereChatURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderRequest, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrProviderRequest, resp.StatusCode)
	}

	var out cohereResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderResponse, err)
	}
	if out.Text == "" {
		return "", ErrEmptyCompletion
	}

	return out.Text, nil
}
