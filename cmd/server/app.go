package main

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/unicorn004/AlumniVerse/internal/config"
	"github.com/unicorn004/AlumniVerse/internal/domain/fiber/handler"
	"github.com/unicorn004/AlumniVerse/internal/metrics"
	"github.com/unicorn004/AlumniVerse/internal/middleware"
	"github.com/unicorn004/AlumniVerse/internal/usecase"
)

func buildApp(
	appConfig *config.AppConfig,
	log *logrus.Logger,
	moderation usecase.ModerationUsecaseInterface,
	chatbot usecase.ChatbotUsecaseInterface,
) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}
			if code >= fiber.StatusInternalServerError {
				log.WithFields(logrus.Fields{
					"request_id": ctx.GetRespHeader(fiber.HeaderXRequestID),
					"path":       ctx.Path(),
				}).WithError(err).Error("unhandled error")
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} | ${status} | ${latency} | ${method} ${path} | ${locals:requestid}\n",
		Output: log.Writer(),
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.Metrics())

	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	if appConfig.RateLimitMax > 0 {
		app.Use([]string{"/moderate", "/chatbot"}, middleware.RateLimiter(appConfig.RateLimitMax, appConfig.RateLimitWindow))
	}

	handler.NewModerationHandler(moderation, log).RegisterRoutes(app)
	handler.NewChatbotHandler(chatbot, log).RegisterRoutes(app)

	return app
}
