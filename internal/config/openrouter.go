package config

import (
	"sync"

	"github.com/spf13/viper"
)

type OpenRouterConfig struct {
	APIKey  string
	BaseURL string
}

var (
	openRouterConfig *OpenRouterConfig
	openRouterOnce   sync.Once
)

func LoadOpenRouterConfig() *OpenRouterConfig {
	openRouterOnce.Do(func() {
		openRouterConfig = newOpenRouterConfig(environment())
	})
	return openRouterConfig
}

func newOpenRouterConfig(v *viper.Viper) *OpenRouterConfig {
	v.SetDefault("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1")
	return &OpenRouterConfig{
		APIKey:  v.GetString("OPENROUTER_API_KEY"),
		BaseURL: v.GetString("OPENROUTER_BASE_URL"),
	}
}
