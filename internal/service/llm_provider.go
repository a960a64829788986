package service

import (
	"context"
	"errors"
	"fmt"
)

const (
	ProviderGroq       = "groq"
	ProviderOpenRouter = "openrouter"
	ProviderGemini     = "gemini"
	ProviderAnthropic  = "anthropic"
)

var ErrEmptyCompletion = errors.New("no completion returned")

type CompletionRequest struct {
	// Model overrides the provider's default model when set.
	Model       string
	Prompt      string
	Temperature float64
}

type CompletionResponse struct {
	ID    string
	Model string
	Text  string
}

//go:generate mockery --name=LLMProviderInterface --dir=. --output=./mocks --filename=llm_provider_mock.go --case=underscore

// LLMProviderInterface is a single blocking prompt-in, text-out call to a
// hosted model. Implementations must not retry.
type LLMProviderInterface interface {
	Name() string
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)
}

// NewLLMProvider builds the provider selected by name from its environment
// configuration.
func NewLLMProvider(ctx context.Context, name string) (LLMProviderInterface, error) {
	switch name {
	case ProviderGroq:
		return NewGroqService(), nil
	case ProviderOpenRouter:
		return NewOpenRouterService(), nil
	case ProviderGemini:
		return NewGeminiService(ctx)
	case ProviderAnthropic:
		return NewAnthropicService(), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %q", name)
	}
}

func modelOrDefault(model, fallback string) string {
	if model != "" {
		return model
	}
	return fallback
}
