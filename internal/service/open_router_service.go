package service

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/unicorn004/AlumniVerse/internal/config"
)

const DefaultOpenRouterModel = "openai/gpt-4o-mini"

type OpenRouterService struct {
	APIKey string
	client *resty.Client
}

func NewOpenRouterService() *OpenRouterService {
	cfg := config.LoadOpenRouterConfig()
	return newOpenRouterService(cfg.APIKey, cfg.BaseURL)
}

func newOpenRouterService(apiKey, baseURL string) *OpenRouterService {
	return &OpenRouterService{
		APIKey: apiKey,
		client: resty.New().SetBaseURL(baseURL),
	}
}

func (s *OpenRouterService) Name() string {
	return ProviderOpenRouter
}

func (s *OpenRouterService) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	if s.APIKey == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY not set")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"model": modelOrDefault(req.Model, DefaultOpenRouterModel),
			"messages": []map[string]string{
				{"role": "user", "content": req.Prompt},
			},
			"temperature": req.Temperature,
		}).
		Post("/chat/completions")
	if err != nil {
		return nil, fmt.Errorf("openrouter request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("openrouter request failed with status %d: %s", resp.StatusCode(), resp.String())
	}

	body := resp.String()
	content := gjson.Get(body, "choices.0.message.content")
	if !content.Exists() {
		return nil, fmt.Errorf("openrouter: %w", ErrEmptyCompletion)
	}

	return &CompletionResponse{
		ID:    gjson.Get(body, "id").String(),
		Model: gjson.Get(body, "model").String(),
		Text:  content.String(),
	}, nil
}
