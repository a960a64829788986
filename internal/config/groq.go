package config

import (
	"sync"

	"github.com/spf13/viper"
)

type GroqConfig struct {
	APIKey  string
	BaseURL string
}

var (
	groqConfig *GroqConfig
	groqOnce   sync.Once
)

func LoadGroqConfig() *GroqConfig {
	groqOnce.Do(func() {
		groqConfig = newGroqConfig(environment())
	})
	return groqConfig
}

func newGroqConfig(v *viper.Viper) *GroqConfig {
	v.SetDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1/")
	return &GroqConfig{
		APIKey:  v.GetString("GROQ_API_KEY"),
		BaseURL: v.GetString("GROQ_BASE_URL"),
	}
}
