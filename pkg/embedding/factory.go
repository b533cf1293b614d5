package embedding

import (
	"fmt"
	"strings"

	"memory-agent/config"
	"memory-agent/pkg/voyage"
)

// New builds the Embedder selected by cfg.Provider ("openai" or "voyage").
func New(cfg config.EmbeddingConfig) (Embedder, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "openai":
		if cfg.APIKey == "" && cfg.BaseURL == "" {
			return nil, fmt.Errorf("embedding: openai api key is required")
		}
		return NewOpenAI(cfg.APIKey, cfg.BaseURL, cfg.Model), nil

	case "voyage":
		client, err := voyage.New(cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("embedding: %w", err)
		}
		client.WithBaseURL(cfg.BaseURL).WithModel(cfg.Model)
		return NewVoyage(client), nil

	default:
		return nil, fmt.Errorf("embedding: unknown provider %q", cfg.Provider)
	}
}
