package middleware

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/unicorn004/AlumniVerse/internal/metrics"
)

// Metrics counts every request by method, matched route pattern and final
// status code. Unmatched paths are grouped so the label set stays bounded.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		route := "unmatched"
		if r := c.Route(); r != nil && r.Path != "/" && status != fiber.StatusNotFound {
			route = r.Path
		}

		metrics.HTTPRequestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		return err
	}
}
