package services

import (
	"context"
	"log"

	"github.com/merlinjoyv/GlowUpAI/internal/advice"
	"github.com/merlinjoyv/GlowUpAI/internal/config"
)

// NewBackend builds the generative backend selected by the configuration.
// A nil backend means the service runs in fallback mode. The returned close
// func is always safe to call.
func NewBackend(ctx context.Context, cfg *config.Config) (advice.Backend, func(), error) {
	switch cfg.Provider() {
	case config.ProviderOpenAI:
		return NewOpenAIBackend(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, cfg.AIMaxTokens, cfg.AITemperature), func() {}, nil
	case config.ProviderGemini:
		b, err := NewGeminiBackend(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.AIMaxTokens, cfg.AITemperature)
		if err != nil {
			return nil, func() {}, err
		}
		return b, b.Close, nil
	default:
		log.Println("⚠️  No AI API key found - using fallback responses only")
		return nil, func() {}, nil
	}
}
