package service

import (
	"context"
	"time"

	"github.com/unicorn004/AlumniVerse/internal/config"
	"github.com/unicorn004/AlumniVerse/internal/metrics"
	"github.com/unicorn004/AlumniVerse/internal/model"
	"github.com/unicorn004/AlumniVerse/internal/prompt"
)

const (
	OperationModerate = "moderate"
	OperationChat     = "chat"
)

//go:generate mockery --name=LLMGatewayServiceInterface --dir=. --output=./mocks --filename=llm_gateway_service_mock.go --case=underscore

type LLMGatewayServiceInterface interface {
	Moderate(ctx context.Context, post string) (*model.ModerationResult, error)
	Chat(ctx context.Context, userPrompt string, profile *model.UserProfile, messages []model.ChatMessage) (string, error)
}

// LLMGatewayService turns the two product operations into one provider call
// each. It holds no per-request state and is safe for concurrent use.
type LLMGatewayService struct {
	provider              LLMProviderInterface
	model                 string
	moderationTemperature float64
	chatbotTemperature    float64
}

func NewLLMGatewayService(provider LLMProviderInterface, cfg *config.LLMConfig) *LLMGatewayService {
	return &LLMGatewayService{
		provider:              provider,
		model:                 cfg.Model,
		moderationTemperature: cfg.ModerationTemperature,
		chatbotTemperature:    cfg.ChatbotTemperature,
	}
}

func (s *LLMGatewayService) Moderate(ctx context.Context, post string) (*model.ModerationResult, error) {
	text, err := s.complete(ctx, OperationModerate, prompt.BuildModerationPrompt(post), s.moderationTemperature)
	if err != nil {
		return nil, err
	}
	return ParseModerationOutput(text)
}

// Chat returns the model's reply as-is.
func (s *LLMGatewayService) Chat(ctx context.Context, userPrompt string, profile *model.UserProfile, messages []model.ChatMessage) (string, error) {
	p := prompt.BuildChatbotPrompt(
		prompt.FormatUserProfile(profile),
		prompt.FormatConversationContext(messages),
		userPrompt,
	)
	return s.complete(ctx, OperationChat, p, s.chatbotTemperature)
}

func (s *LLMGatewayService) complete(ctx context.Context, operation, p string, temperature float64) (string, error) {
	start := time.Now()
	resp, err := s.provider.Complete(ctx, &CompletionRequest{
		Model:       s.model,
		Prompt:      p,
		Temperature: temperature,
	})
	metrics.ObserveLLMRequest(s.provider.Name(), operation, err, time.Since(start))
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
