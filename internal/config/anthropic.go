package config

import (
	"sync"

	"github.com/spf13/viper"
)

type AnthropicConfig struct {
	APIKey string
	// BaseURL is only set to point the client at a proxy; empty keeps the SDK default.
	BaseURL   string
	MaxTokens int
}

var (
	anthropicConfig *AnthropicConfig
	anthropicOnce   sync.Once
)

func LoadAnthropicConfig() *AnthropicConfig {
	anthropicOnce.Do(func() {
		anthropicConfig = newAnthropicConfig(environment())
	})
	return anthropicConfig
}

func newAnthropicConfig(v *viper.Viper) *AnthropicConfig {
	v.SetDefault("ANTHROPIC_MAX_TOKENS", 1024)
	maxTokens := v.GetInt("ANTHROPIC_MAX_TOKENS")
	if maxTokens <= 0 {
		maxTokens = 1024
	}
	return &AnthropicConfig{
		APIKey:    v.GetString("ANTHROPIC_API_KEY"),
		BaseURL:   v.GetString("ANTHROPIC_BASE_URL"),
		MaxTokens: maxTokens,
	}
}
