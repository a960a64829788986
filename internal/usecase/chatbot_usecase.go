package usecase

import (
	"context"

	"github.com/unicorn004/AlumniVerse/internal/dto"
	"github.com/unicorn004/AlumniVerse/internal/model"
	"github.com/unicorn004/AlumniVerse/internal/service"
)

//go:generate mockery --name=ChatbotUsecaseInterface --dir=. --output=./mocks --filename=chatbot_usecase_mock.go --case=underscore

type ChatbotUsecaseInterface interface {
	Reply(ctx context.Context, req *dto.ChatbotRequest) (*dto.ChatbotResponse, error)
}

type ChatbotUsecase struct {
	gateway service.LLMGatewayServiceInterface
}

func NewChatbotUsecase(gateway service.LLMGatewayServiceInterface) *ChatbotUsecase {
	return &ChatbotUsecase{gateway: gateway}
}

func (uc *ChatbotUsecase) Reply(ctx context.Context, req *dto.ChatbotRequest) (*dto.ChatbotResponse, error) {
	profile, err := model.DecodeUserProfile(req.UserProfile)
	if err != nil {
		return nil, err
	}

	text, err := uc.gateway.Chat(ctx, req.Prompt, profile, req.Messages)
	if err != nil {
		return nil, err
	}

	return &dto.ChatbotResponse{
		Response: text,
		Status:   dto.ChatbotStatusSuccess,
	}, nil
}
