package ai

import (
	"github.com/jhoicas/punto-bazar-api/internal/application/ports"
	"github.com/jhoicas/punto-bazar-api/pkg/config"
)

// NewLLMService elige el adaptador según AI_PROVIDER. Sin API key el adaptador
// igual se construye y responde ports.ErrLLMNotConfigured.
func NewLLMService(cfg config.AIConfig, opts ...Option) ports.LLMService {
	switch cfg.Provider {
	case config.AIProviderAnthropic:
		return NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel, opts...)
	case config.AIProviderGemini:
		return NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel, opts...)
	default:
		return NewOpenAIService(cfg.OpenAIAPIKey, cfg.OpenAIModel, opts...)
	}
}
