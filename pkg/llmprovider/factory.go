package llmprovider

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"memory-agent/config"
)

// Base URLs for OpenAI-compatible vendors when base_url is not configured.
var compatibleBaseURLs = map[string]string{
	"deepseek":   "https://api.deepseek.com/v1",
	"qwen":       "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
	"alibaba":    "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
	"openrouter": "https://openrouter.ai/api/v1",
	"ollama":     "http://localhost:11434/v1",
}

// InitializeProviders creates Provider instances from config.LLMConfig
// Returns providers sorted by priority (ascending) with disabled providers filtered out
// Skips providers that fail to initialize instead of failing the entire service
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	if len(cfg.Providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			initErrors = append(initErrors,
				fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	name := strings.ToLower(cfg.Name)
	if cfg.APIKey == "" && name != "ollama" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}

	timeout, err := parseTimeout(cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("provider %s: %w", cfg.Name, err)
	}

	switch name {
	case "openai", "deepseek", "qwen", "alibaba", "openrouter", "ollama":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = compatibleBaseURLs[name]
		}
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = "ollama"
		}
		return NewOpenAIProvider(OpenAIConfig{
			Name:    name,
			APIKey:  apiKey,
			BaseURL: baseURL,
			Model:   cfg.Model,
			Timeout: timeout,
		})

	case "anthropic", "claude":
		return NewAnthropicProvider(AnthropicConfig{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: timeout,
		})

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

func parseTimeout(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", raw, err)
	}
	return d, nil
}

// NewManagerConfig converts the retry and fallback settings of cfg.
func NewManagerConfig(cfg config.LLMConfig) (*Config, error) {
	delay, err := parseTimeout(cfg.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("retry_delay: %w", err)
	}
	total, err := parseTimeout(cfg.MaxTotalTimeout)
	if err != nil {
		return nil, fmt.Errorf("max_total_timeout: %w", err)
	}
	attempts := cfg.RetryAttempts
	if attempts <= 0 {
		attempts = 1
	}
	return &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   attempts,
		RetryDelay:      delay,
		MaxTotalTimeout: total,
	}, nil
}

// DefaultImageModel is the image model used when an OpenAI provider leads the chain.
const DefaultImageModel = "gpt-4o"

// ResolveImageModel returns configured when set. Otherwise it picks
// DefaultImageModel for an OpenAI primary and the primary's own model for
// any other backend. The override reaches every provider in the chain, so
// a fallback of a different family keeps failing on a foreign model name.
func ResolveImageModel(configured string, providers []Provider) string {
	if configured != "" {
		return configured
	}
	if len(providers) == 0 {
		return DefaultImageModel
	}
	if primary := providers[0]; !strings.EqualFold(primary.Name(), "openai") {
		return primary.Model()
	}
	return DefaultImageModel
}
