package util

import (
	"github.com/gofiber/fiber/v2"
)

type SuccessResponseFormat struct {
	Code int
	Data any
}

type ErrorResponseFormat struct {
	Code    int
	Message string
}

// OrderedErrorResponse is the only error shape clients ever see.
type OrderedErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse writes Data as the JSON body. Code defaults to 200.
func SuccessResponse(c *fiber.Ctx, params SuccessResponseFormat) error {
	code := params.Code
	if code == 0 {
		code = fiber.StatusOK
	}
	return c.Status(code).JSON(params.Data)
}

// ErrorResponse writes {"error": message}. Without an explicit Message the
// first error's text is used; Code defaults to 500.
func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat, errs ...error) error {
	message := params.Message
	if message == "" && len(errs) > 0 && errs[0] != nil {
		message = errs[0].Error()
	}
	if message == "" {
		message = fiber.ErrInternalServerError.Message
	}

	errorCode := params.Code
	if errorCode == 0 {
		errorCode = fiber.StatusInternalServerError
	}
	return c.Status(errorCode).JSON(OrderedErrorResponse{Error: message})
}
