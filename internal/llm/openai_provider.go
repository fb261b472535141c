package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIProvider implements AdviceProvider using the OpenAI chat API.
type OpenAIProvider struct {
	client openai.Client
	model  string
}

// NewOpenAIProvider creates an OpenAI-backed advice provider. Returns a nil
// interface when apiKey is empty so NewChain drops it.
func NewOpenAIProvider(apiKey, model string) AdviceProvider {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIProvider{
		client: client,
		model:  model,
	}
}

func (p *OpenAIProvider) Name() string { return "openai" }

// Generate calls the OpenAI chat completions endpoint.
func (p *OpenAIProvider) Generate(ctx context.Context, query string) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: p.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(fmt.Sprintf(chatPrompt, query)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderRequest, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrProviderResponse)
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", ErrEmptyCompletion
	}

	return content, nil
}
