package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultHuggingFaceURL = "https://api-inference.huggingface.co/models/gpt2"

// HuggingFaceProvider implements AdviceProvider against the Hugging Face
// inference API. It is the last external link of the chain; the endpoint
// works without an API key, so the provider is always constructed.
type HuggingFaceProvider struct {
	url        string
	httpClient *http.Client
}

// NewHuggingFaceProvider creates a Hugging Face-backed advice provider. An
// empty url selects the default public inference endpoint.
func NewHuggingFaceProvider(url string) *HuggingFaceProvider {
	if url == "" {
		url = defaultHuggingFaceURL
	}
	return &HuggingFaceProvider{
		url:        url,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (p *HuggingFaceProvider) Name() string { return "huggingface" }

type huggingFaceRequest struct {
	Inputs     string                `json:"inputs"`
	Parameters huggingFaceParameters `json:"parameters"`
}

type huggingFaceParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

type huggingFaceResponse []struct {
	GeneratedText string `json:"generated_text"`
}

// Generate calls the inference endpoint. A 503 means the model is still
// loading; that is treated as a normal failure so the chain can move on.
func (p *HuggingFaceProvider) Generate(ctx context.Context, query string) (string, error) {
	body, err := json.Marshal(huggingFaceRequest{
		Inputs: fmt.Sprintf(chatPrompt, query),
		Parameters: huggingFaceParameters{
			MaxNewTokens:   100,
			Temperature:    0.7,
			ReturnFullText: false,
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderRequest, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderRequest, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrProviderRequest, resp.StatusCode)
	}

	var out huggingFaceResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderResponse, err)
	}
	if len(out) == 0 {
		return "", fmt.Errorf("%w: empty result array", ErrProviderResponse)
	}

	text := cleanCompletion(out[0].GeneratedText)
	if text == "" {
		return "", ErrEmptyCompletion
	}

	return text, nil
}

// cleanCompletion trims the raw continuation that small text-generation
// models return: leading whitespace and anything after a trailing
// half-finished sentence past a reasonable length.
func cleanCompletion(text string) string {
	text = strings.TrimSpace(text)
	if len(text) <= 300 {
		return text
	}
	cut := text[:300]
	if i := strings.LastIndexAny(cut, ".!?"); i > 0 {
		return cut[:i+1]
	}
	return cut
}
