package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// requestLog returns an entry tagged with the request id and path.
func requestLog(log *logrus.Logger, c *fiber.Ctx) *logrus.Entry {
	return log.WithFields(logrus.Fields{
		"request_id": c.GetRespHeader(fiber.HeaderXRequestID),
		"method":     c.Method(),
		"path":       c.Path(),
	})
}
