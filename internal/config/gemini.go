package config

import (
	"sync"

	"github.com/spf13/viper"
)

type GeminiConfig struct {
	APIKey string
}

var (
	geminiConfig *GeminiConfig
	geminiOnce   sync.Once
)

func LoadGeminiConfig() *GeminiConfig {
	geminiOnce.Do(func() {
		geminiConfig = newGeminiConfig(environment())
	})
	return geminiConfig
}

func newGeminiConfig(v *viper.Viper) *GeminiConfig {
	return &GeminiConfig{
		APIKey: v.GetString("GEMINI_API_KEY"),
	}
}
