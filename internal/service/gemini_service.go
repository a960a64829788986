package service

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/unicorn004/AlumniVerse/internal/config"
)

const DefaultGeminiModel = "gemini-2.5-flash"

type GeminiService struct {
	Client *genai.Client
}

// NewGeminiService returns a service whose calls fail until GEMINI_API_KEY is
// configured; only a broken client configuration is a startup error.
func NewGeminiService(ctx context.Context) (*GeminiService, error) {
	apiKey := config.LoadGeminiConfig().APIKey
	if apiKey == "" {
		return &GeminiService{}, nil
	}
	return newGeminiService(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

func newGeminiService(ctx context.Context, cc *genai.ClientConfig) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiService{Client: client}, nil
}

func (s *GeminiService) Name() string {
	return ProviderGemini
}

func (s *GeminiService) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	if s.Client == nil {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	model := modelOrDefault(req.Model, DefaultGeminiModel)
	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(req.Temperature)),
	}

	result, err := s.Client.Models.GenerateContent(ctx, model, genai.Text(req.Prompt), genConfig)
	if err != nil {
		return nil, fmt.Errorf("generate content failed: %w", err)
	}
	if err := s.validateGenerateResponse(result); err != nil {
		return nil, fmt.Errorf("invalid response: %w", err)
	}

	return &CompletionResponse{
		Model: model,
		Text:  result.Text(),
	}, nil
}

func (s *GeminiService) validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}

	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response: %w", ErrEmptyCompletion)
	}

	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}

	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}

	return nil
}
