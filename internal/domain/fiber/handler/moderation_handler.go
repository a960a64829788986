package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/unicorn004/AlumniVerse/internal/dto"
	"github.com/unicorn004/AlumniVerse/internal/usecase"
	"github.com/unicorn004/AlumniVerse/internal/util"
)

type ModerationHandler struct {
	uc  usecase.ModerationUsecaseInterface
	log *logrus.Logger
}

func NewModerationHandler(uc usecase.ModerationUsecaseInterface, log *logrus.Logger) *ModerationHandler {
	return &ModerationHandler{uc: uc, log: log}
}

func (h *ModerationHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/moderate", h.Moderate)
}

// Moderate godoc
// @Summary      Moderate a post
// @Description  Classifies a community post as accepted or rejected
// @Tags         moderation
// @Accept       json
// @Produce      json
// @Param        request  body      dto.ModerationRequest   true  "Post to moderate"
// @Success      200      {object}  dto.ModerationResponse
// @Failure      400      {object}  util.OrderedErrorResponse
// @Failure      500      {object}  util.OrderedErrorResponse
// @Router       /moderate [post]
func (h *ModerationHandler) Moderate(c *fiber.Ctx) error {
	req, err := dto.ParseModerationRequest(c.Body())
	if err != nil {
		if errors.Is(err, dto.ErrPostRequired) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: dto.ErrPostRequired.Error(),
			})
		}
		requestLog(h.log, c).WithError(err).Error("failed to read moderation request")
		return util.ErrorResponse(c, util.ErrorResponseFormat{}, err)
	}

	resp, err := h.uc.Moderate(c.UserContext(), req)
	if err != nil {
		requestLog(h.log, c).WithError(err).Error("moderation failed")
		return util.ErrorResponse(c, util.ErrorResponseFormat{}, err)
	}

	requestLog(h.log, c).WithField("status", resp.Status).Debug("post moderated")
	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: resp})
}
