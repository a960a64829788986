package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/unicorn004/AlumniVerse/internal/util"
)

// RateLimiter limits each client IP to max requests per expiration window.
func RateLimiter(max int, expiration time.Duration) fiber.Handler {
	if max <= 0 {
		max = 50
	}
	if expiration <= 0 {
		expiration = time.Minute
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: expiration,
		LimitReached: func(c *fiber.Ctx) error {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusTooManyRequests,
				Message: "Too many requests",
			})
		},
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
