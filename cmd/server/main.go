package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/unicorn004/AlumniVerse/internal/config"
	"github.com/unicorn004/AlumniVerse/internal/logger"
	"github.com/unicorn004/AlumniVerse/internal/service"
	"github.com/unicorn004/AlumniVerse/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using process environment")
	}

	appConfig := config.LoadAppConfig()
	llmConfig := config.LoadLLMConfig()
	log := logger.New(appConfig.LogLevel, appConfig.IsProduction())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := service.NewLLMProvider(ctx, llmConfig.Provider)
	if err != nil {
		log.WithError(err).Fatal("failed to create LLM provider")
	}
	gateway := service.NewLLMGatewayService(provider, llmConfig)

	app := buildApp(
		appConfig,
		log,
		usecase.NewModerationUsecase(gateway),
		usecase.NewChatbotUsecase(gateway),
	)

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				log.WithField("goroutines", runtime.NumGoroutine()).Debug("runtime stats")
			}
		}
	}()

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("shutdown failed")
		}
	}()

	log.WithFields(logrus.Fields{
		"port":     appConfig.Port,
		"provider": provider.Name(),
		"env":      appConfig.Env,
	}).Info("server starting")
	if err := app.Listen(appConfig.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
