// Package llm holds the external text-generation providers used for
// non-wellness chat questions. Providers are tried in order with
// first-success-wins; the caller supplies the terminal canned fallback.
package llm

import (
	"context"
	"errors"
	"log"
	"strings"
)

var (
	// ErrProviderRequest indicates an error during the provider API request.
	ErrProviderRequest = errors.New("provider request failed")
	// ErrProviderResponse indicates an error parsing the provider response.
	ErrProviderResponse = errors.New("failed to parse provider response")
	// ErrEmptyCompletion indicates the provider answered with no usable text.
	ErrEmptyCompletion = errors.New("provider returned empty completion")
)

// chatPrompt frames every proxied question; providers share it so the voice
// stays consistent regardless of which backend answered.
const chatPrompt = `You are a friendly wellness companion chatbot for students. Respond to the question below in a warm, conversational tone. Be helpful and informative, keep the response under 200 words, and never give medical advice or diagnoses.

Question: %s

Response:`

// AdviceProvider generates a free-form answer for a chat query.
type AdviceProvider interface {
	// Name identifies the provider in logs and responses.
	Name() string
	// Generate returns the completion text for the query.
	Generate(ctx context.Context, query string) (string, error)
}

// Chain tries each provider in order and returns the first non-empty
// completion. A false last return means every provider failed and the caller
// must fall back to a canned response. Provider errors are expected
// operation; they are logged and swallowed.
type Chain struct {
	providers []AdviceProvider
}

// NewChain builds a provider chain, skipping nil entries so unconfigured
// providers can be passed straight from config.
func NewChain(providers ...AdviceProvider) *Chain {
	var active []AdviceProvider
	for _, p := range providers {
		if p != nil {
			active = append(active, p)
		}
	}
	return &Chain{providers: active}
}

// Generate runs the chain. The returned provider name identifies who
// answered; it is empty when the chain is exhausted.
func (c *Chain) Generate(ctx context.Context, query string) (text, provider string, ok bool) {
	for _, p := range c.providers {
		out, err := p.Generate(ctx, query)
		if err != nil {
			log.Printf("advice provider %s failed: %v", p.Name(), err)
			continue
		}
		out = strings.TrimSpace(out)
		if out == "" {
			log.Printf("advice provider %s returned empty text", p.Name())
			continue
		}
		return out, p.Name(), true
	}
	return "", "", false
}
