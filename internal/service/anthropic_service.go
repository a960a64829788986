package service

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/unicorn004/AlumniVerse/internal/config"
)

const DefaultAnthropicModel = "claude-3-5-haiku-latest"

type AnthropicService struct {
	APIKey    string
	MaxTokens int
	client    anthropic.Client
}

func NewAnthropicService() *AnthropicService {
	cfg := config.LoadAnthropicConfig()
	return newAnthropicService(cfg.APIKey, cfg.BaseURL, cfg.MaxTokens)
}

func newAnthropicService(apiKey, baseURL string, maxTokens int) *AnthropicService {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &AnthropicService{
		APIKey:    apiKey,
		MaxTokens: maxTokens,
		client:    anthropic.NewClient(opts...),
	}
}

func (s *AnthropicService) Name() string {
	return ProviderAnthropic
}

func (s *AnthropicService) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	if s.APIKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY not set")
	}

	model := modelOrDefault(req.Model, DefaultAnthropicModel)
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: int64(s.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
		Temperature: anthropic.Float(req.Temperature),
	}

	message, err := s.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic request failed: %w", err)
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			return &CompletionResponse{
				ID:    message.ID,
				Model: model,
				Text:  block.Text,
			}, nil
		}
	}
	return nil, fmt.Errorf("anthropic: %w", ErrEmptyCompletion)
}
