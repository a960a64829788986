package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/unicorn004/AlumniVerse/internal/dto"
	"github.com/unicorn004/AlumniVerse/internal/usecase"
	"github.com/unicorn004/AlumniVerse/internal/util"
)

type ChatbotHandler struct {
	uc  usecase.ChatbotUsecaseInterface
	log *logrus.Logger
}

func NewChatbotHandler(uc usecase.ChatbotUsecaseInterface, log *logrus.Logger) *ChatbotHandler {
	return &ChatbotHandler{uc: uc, log: log}
}

func (h *ChatbotHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/chatbot", h.Chatbot)
}

// Chatbot godoc
// @Summary      Reply as the user
// @Description  Generates a short first-person reply using the user's profile and recent conversation
// @Tags         chatbot
// @Accept       json
// @Produce      json
// @Param        request  body      dto.ChatbotRequest   true  "Prompt, profile and conversation"
// @Success      200      {object}  dto.ChatbotResponse
// @Failure      400      {object}  util.OrderedErrorResponse
// @Failure      500      {object}  util.OrderedErrorResponse
// @Router       /chatbot [post]
func (h *ChatbotHandler) Chatbot(c *fiber.Ctx) error {
	req, err := dto.ParseChatbotRequest(c.Body())
	if err != nil {
		if errors.Is(err, dto.ErrPromptRequired) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: dto.ErrPromptRequired.Error(),
			})
		}
		requestLog(h.log, c).WithError(err).Error("failed to read chatbot request")
		return util.ErrorResponse(c, util.ErrorResponseFormat{}, err)
	}

	resp, err := h.uc.Reply(c.UserContext(), req)
	if err != nil {
		requestLog(h.log, c).WithError(err).Error("chatbot reply failed")
		return util.ErrorResponse(c, util.ErrorResponseFormat{}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: resp})
}
