package llmprovider_test

import (
	"testing"
	"time"

	"memory-agent/config"
	"memory-agent/pkg/llmprovider"
)

func TestInitializeProviders(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *config.LLMConfig
		wantNames []string
		wantErr   bool
	}{
		{
			name: "sorted by priority",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "anthropic", Enabled: true, Priority: 10, APIKey: "k", Model: "claude-sonnet-4-5"},
				{Name: "openai", Enabled: true, Priority: 1, APIKey: "k", Model: "gpt-4o", Timeout: "30s"},
				{Name: "deepseek", Enabled: true, Priority: 5, APIKey: "k", Model: "deepseek-chat"},
			}},
			wantNames: []string{"openai", "deepseek", "anthropic"},
		},
		{
			name: "disabled providers filtered",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "openai", Enabled: false, Priority: 1, APIKey: "k", Model: "gpt-4o"},
				{Name: "qwen", Enabled: true, Priority: 2, APIKey: "k", Model: "qwen-plus"},
			}},
			wantNames: []string{"qwen"},
		},
		{
			name: "ollama needs no key",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "ollama", Enabled: true, Model: "llama3.1"},
			}},
			wantNames: []string{"ollama"},
		},
		{
			name: "broken provider skipped",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "openai", Enabled: true, Priority: 1, APIKey: "", Model: "gpt-4o"},
				{Name: "anthropic", Enabled: true, Priority: 2, APIKey: "k", Model: "claude"},
			}},
			wantNames: []string{"anthropic"},
		},
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: true,
		},
		{
			name:    "no providers",
			cfg:     &config.LLMConfig{},
			wantErr: true,
		},
		{
			name: "all disabled",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "openai", Enabled: false, APIKey: "k", Model: "gpt-4o"},
			}},
			wantErr: true,
		},
		{
			name: "unknown provider",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "mystery", Enabled: true, APIKey: "k", Model: "m"},
			}},
			wantErr: true,
		},
		{
			name: "bad timeout",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "openai", Enabled: true, APIKey: "k", Model: "gpt-4o", Timeout: "soon"},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providers, err := llmprovider.InitializeProviders(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("InitializeProviders() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(providers) != len(tt.wantNames) {
				t.Fatalf("expected %d providers, got %d", len(tt.wantNames), len(providers))
			}
			for i, name := range tt.wantNames {
				if providers[i].Name() != name {
					t.Errorf("provider %d = %s, want %s", i, providers[i].Name(), name)
				}
			}
		})
	}
}

func TestNewManagerConfig(t *testing.T) {
	tests := []struct {
		name    string
		in      config.LLMConfig
		want    llmprovider.Config
		wantErr bool
	}{
		{
			name: "parses durations",
			in:   config.LLMConfig{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: "1s", MaxTotalTimeout: "2m"},
			want: llmprovider.Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Second, MaxTotalTimeout: 2 * time.Minute},
		},
		{
			name: "at least one attempt",
			in:   config.LLMConfig{},
			want: llmprovider.Config{RetryAttempts: 1},
		},
		{
			name:    "bad delay",
			in:      config.LLMConfig{RetryDelay: "soon"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := llmprovider.NewManagerConfig(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("got %+v, want %+v", *got, tt.want)
			}
		})
	}
}
