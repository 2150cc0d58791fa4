package recipes

import (
	"context"
	"errors"
	"fmt"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/config"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"
)

// ErrClientDisabled is returned when no API key is configured
var ErrClientDisabled = errors.New("recipe suggestions disabled: LLM_API_KEY not set")

// NewModel builds the language model selected by LLM_PROVIDER
func NewModel(ctx context.Context, cfg *config.Config) (llms.Model, error) {
	if cfg.LLMAPIKey == "" {
		return nil, ErrClientDisabled
	}

	switch cfg.LLMProvider {
	case "openai", "":
		// GitHub Models and other OpenAI-compatible endpoints go through LLM_BASE_URL
		opts := []openai.Option{
			openai.WithToken(cfg.LLMAPIKey),
			openai.WithModel(cfg.LLMModel),
		}
		if cfg.LLMBaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.LLMBaseURL))
		}
		model, err := openai.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
		}
		return model, nil
	case "googleai":
		model, err := googleai.New(ctx,
			googleai.WithAPIKey(cfg.LLMAPIKey),
			googleai.WithDefaultModel(cfg.LLMModel),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Google AI client: %w", err)
		}
		return model, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
}
