package adapter

import (
	"context"
	"fmt"
	"net/http"

	"samayak/internal/adapter/gemini"
	"samayak/internal/adapter/llm"
	"samayak/internal/config"
	"samayak/internal/domain"
	"samayak/internal/logger"

	"go.uber.org/zap"
)

// NewContentGenerator builds the generator for cfg.LLM.Provider.
// The returned close function releases the backend client and is never nil.
func NewContentGenerator(ctx context.Context, cfg *config.Config) (domain.ContentGenerator, func() error, error) {
	noop := func() error { return nil }

	switch cfg.LLM.Provider {
	case config.ProviderGemini:
		logger.Get().Info("Initializing Gemini generator", zap.String("model", cfg.LLM.Model), zap.Bool("adc", cfg.Gemini.UseADC))
		g, err := gemini.NewGenerator(ctx, cfg.Gemini, cfg.LLM, logger.Get())
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create Gemini generator: %w", err)
		}
		return g, g.Close, nil
	case config.ProviderOllama, config.ProviderOpenAI:
		logger.Get().Info("Initializing langchaingo generator", zap.String("provider", cfg.LLM.Provider), zap.String("model", cfg.LLM.Model))
		httpClient := &http.Client{Timeout: cfg.LLM.Timeout}
		g, err := llm.NewFromConfig(cfg, httpClient)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create %s generator: %w", cfg.LLM.Provider, err)
		}
		return g, noop, nil
	default:
		return nil, noop, fmt.Errorf("unsupported llm provider: %s", cfg.LLM.Provider)
	}
}
