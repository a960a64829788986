package usecase

import (
	"context"

	"github.com/unicorn004/AlumniVerse/internal/dto"
	"github.com/unicorn004/AlumniVerse/internal/metrics"
	"github.com/unicorn004/AlumniVerse/internal/service"
)

//go:generate mockery --name=ModerationUsecaseInterface --dir=. --output=./mocks --filename=moderation_usecase_mock.go --case=underscore

type ModerationUsecaseInterface interface {
	Moderate(ctx context.Context, req *dto.ModerationRequest) (*dto.ModerationResponse, error)
}

type ModerationUsecase struct {
	gateway service.LLMGatewayServiceInterface
}

func NewModerationUsecase(gateway service.LLMGatewayServiceInterface) *ModerationUsecase {
	return &ModerationUsecase{gateway: gateway}
}

// Moderate classifies a post. The reason is only reported for rejections.
func (uc *ModerationUsecase) Moderate(ctx context.Context, req *dto.ModerationRequest) (*dto.ModerationResponse, error) {
	result, err := uc.gateway.Moderate(ctx, req.Post)
	if err != nil {
		return nil, err
	}

	resp := &dto.ModerationResponse{
		Decision: result.Decision,
		Reason:   result.Reason,
		Status:   dto.ModerationStatusRejected,
	}
	if result.Accepted() {
		resp.Reason = ""
		resp.Status = dto.ModerationStatusAccepted
	}

	metrics.RecordModerationDecision(resp.Status)
	return resp, nil
}
