package service

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/unicorn004/AlumniVerse/internal/config"
)

const DefaultGroqModel = "llama3-8b-8192"

// GroqService talks to Groq through its OpenAI compatible chat completions API.
type GroqService struct {
	APIKey string
	client openai.Client
}

func NewGroqService() *GroqService {
	cfg := config.LoadGroqConfig()
	return newGroqService(cfg.APIKey, cfg.BaseURL)
}

func newGroqService(apiKey, baseURL string) *GroqService {
	return &GroqService{
		APIKey: apiKey,
		client: openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(baseURL),
			option.WithMaxRetries(0),
		),
	}
}

func (s *GroqService) Name() string {
	return ProviderGroq
}

func (s *GroqService) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	if s.APIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY not set")
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(modelOrDefault(req.Model, DefaultGroqModel)),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		},
		Temperature: openai.Float(req.Temperature),
	}

	resp, err := s.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("groq request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("groq: %w", ErrEmptyCompletion)
	}

	return &CompletionResponse{
		ID:    resp.ID,
		Model: resp.Model,
		Text:  resp.Choices[0].Message.Content,
	}, nil
}
