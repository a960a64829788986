package config

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type AppConfig struct {
	Name            string
	Env             string
	Port            string
	BaseURL         string
	LogLevel        string
	RateLimitMax    int
	RateLimitWindow time.Duration
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		appConfig = newAppConfig(environment())
	})
	return appConfig
}

func newAppConfig(v *viper.Viper) *AppConfig {
	v.SetDefault("APP_NAME", "AlumniVerse AI")
	v.SetDefault("APP_PORT", ":4000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RATE_LIMIT_MAX", 0)
	v.SetDefault("RATE_LIMIT_WINDOW", time.Minute)

	env := v.GetString("APP_ENV")
	if env == "" {
		env = "development"
		logrus.Warnf("APP_ENV not set, defaulting to %s", env)
	}

	window := v.GetDuration("RATE_LIMIT_WINDOW")
	if window <= 0 {
		window = time.Minute
	}

	return &AppConfig{
		Name:            v.GetString("APP_NAME"),
		Env:             env,
		Port:            v.GetString("APP_PORT"),
		BaseURL:         v.GetString("APP_URL"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		RateLimitMax:    v.GetInt("RATE_LIMIT_MAX"),
		RateLimitWindow: window,
	}
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}
