package llmprovider

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/ark"

	"smart-travel-planner/config"
	"smart-travel-planner/pkg/deepseek"
	"smart-travel-planner/pkg/gemini"
	"smart-travel-planner/pkg/log"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Providers come back sorted by priority with disabled ones filtered out.
// A provider that fails to initialize is skipped, not fatal.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, logger log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	var initErrors []string
	for _, p := range enabled {
		provider, err := createProvider(ctx, p)
		if err != nil {
			msg := fmt.Sprintf("provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, msg)
			logger.Warn(ctx, "Failed to initialize LLM provider", "provider", p.Name, "error", err.Error())
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}
	if len(initErrors) > 0 {
		logger.Warn(ctx, "Continuing with partial LLM providers",
			"failed", len(initErrors),
			"working", len(providers),
		)
	}

	return providers, nil
}

func createProvider(ctx context.Context, cfg config.ProviderConfig) (Provider, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	switch cfg.Name {
	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
			APIURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case "deepseek", "qwen", "alibaba":
		baseURL := cfg.BaseURL
		name := "deepseek"
		if cfg.Name != "deepseek" {
			name = "qwen"
			if baseURL == "" {
				baseURL = deepseek.QwenCompatibleBaseURL
			}
		}
		client, err := deepseek.New(deepseek.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: baseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", name, err)
		}
		return NewDeepSeekAdapter(name, client), nil

	case "ark":
		if cfg.APIKey == "" && (cfg.AccessKey == "" || cfg.SecretKey == "") {
			return nil, fmt.Errorf("API key or access/secret key pair is required")
		}
		chatModel, err := ark.NewChatModel(ctx, &ark.ChatModelConfig{
			BaseURL:   cfg.BaseURL,
			Region:    cfg.Region,
			APIKey:    cfg.APIKey,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
			Model:     cfg.Model,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create ark chat model: %w", err)
		}
		return NewArkAdapter(chatModel, cfg.Model), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
