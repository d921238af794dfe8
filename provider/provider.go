// Package provider builds a dlai.Generator for the backend named in a config.Config.
package provider

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	dlai "github.com/OrtizR52/AgenticAI-DLAI"
	"github.com/OrtizR52/AgenticAI-DLAI/config"
	"github.com/OrtizR52/AgenticAI-DLAI/provider/anthropic"
	"github.com/OrtizR52/AgenticAI-DLAI/provider/gemini"
	"github.com/OrtizR52/AgenticAI-DLAI/provider/ollama"
	"github.com/OrtizR52/AgenticAI-DLAI/provider/openai"
)

// Names lists the supported provider names.
var Names = []string{config.ProviderGemini, config.ProviderOpenAI, config.ProviderAnthropic, config.ProviderOllama}

// New returns a Generator for cfg.Provider using cfg.APIKey and cfg.BaseURL.
// Ollama needs no key and falls back to OLLAMA_HOST when BaseURL is empty.
// An empty key fails with dlai.ErrMissingAPIKey; an unknown provider with dlai.ErrUnknownProvider.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (dlai.Generator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("provider: nil config")
	}
	if env := config.APIKeyEnv(cfg.Provider); len(env) > 0 && cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: set one of %v", dlai.ErrMissingAPIKey, env)
	}
	switch cfg.Provider {
	case config.ProviderGemini:
		opts := []gemini.Option{gemini.WithLogger(log)}
		if cfg.BaseURL != "" {
			opts = append(opts, gemini.WithBaseURL(cfg.BaseURL))
		}
		c, err := gemini.New(ctx, cfg.APIKey, opts...)
		if err != nil {
			return nil, err
		}
		return c, nil
	case config.ProviderOpenAI:
		opts := []openai.Option{openai.WithLogger(log)}
		if cfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
		}
		c, err := openai.New(cfg.APIKey, opts...)
		if err != nil {
			return nil, err
		}
		return c, nil
	case config.ProviderAnthropic:
		opts := []anthropic.Option{anthropic.WithLogger(log)}
		if cfg.BaseURL != "" {
			opts = append(opts, anthropic.WithBaseURL(cfg.BaseURL))
		}
		c, err := anthropic.New(cfg.APIKey, opts...)
		if err != nil {
			return nil, err
		}
		return c, nil
	case config.ProviderOllama:
		opts := []ollama.Option{ollama.WithLogger(log)}
		if cfg.BaseURL != "" {
			opts = append(opts, ollama.WithBaseURL(cfg.BaseURL))
		}
		c, err := ollama.New(opts...)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("%w: %q", dlai.ErrUnknownProvider, cfg.Provider)
	}
}
