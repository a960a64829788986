package config

import (
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// LLMConfig selects the provider behind both endpoints and the sampling used
// for each of them. An empty Model means "use the provider's default".
type LLMConfig struct {
	Provider              string
	Model                 string
	ModerationTemperature float64
	ChatbotTemperature    float64
}

var (
	llmConfig *LLMConfig
	llmOnce   sync.Once
)

func LoadLLMConfig() *LLMConfig {
	llmOnce.Do(func() {
		llmConfig = newLLMConfig(environment())
	})
	return llmConfig
}

func newLLMConfig(v *viper.Viper) *LLMConfig {
	v.SetDefault("LLM_PROVIDER", "groq")
	v.SetDefault("LLM_MODERATION_TEMPERATURE", 0.0)
	v.SetDefault("LLM_CHATBOT_TEMPERATURE", 0.2)

	return &LLMConfig{
		Provider:              strings.ToLower(strings.TrimSpace(v.GetString("LLM_PROVIDER"))),
		Model:                 strings.TrimSpace(v.GetString("LLM_MODEL")),
		ModerationTemperature: v.GetFloat64("LLM_MODERATION_TEMPERATURE"),
		ChatbotTemperature:    v.GetFloat64("LLM_CHATBOT_TEMPERATURE"),
	}
}
