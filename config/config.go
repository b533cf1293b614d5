package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Storage
	Database DatabaseConfig

	// LLM Provider Abstraction
	LLM       LLMConfig
	Embedding EmbeddingConfig

	// Agent execution
	Agent         AgentConfig
	Orchestration OrchestrationConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

type DatabaseConfig struct {
	Path        string
	SeedOnStart bool
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // Global timeout for entire fallback chain
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// EmbeddingConfig selects the embedding backend ("openai" or "voyage").
type EmbeddingConfig struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
}

// AgentConfig holds the execution loop defaults.
type AgentConfig struct {
	MaxRetries      int
	PageSize        int
	TopSimilarItems int
	Temperature     float64
	MaxTokens       int
	Model           string // empty means the provider default
	ImageModel      string // empty follows the primary provider
	ImageMaxTokens  int
}

// OrchestrationConfig holds the ordered plan executed by run-plan.
type OrchestrationConfig struct {
	Steps []StepConfig
}

// StepConfig is one role of the plan. PromptTemplate may reference {prompt}.
type StepConfig struct {
	AgentType      string
	PromptTemplate string
}

// DefaultSteps is the four-role pipeline used when no plan is configured.
func DefaultSteps() []StepConfig {
	return []StepConfig{
		{AgentType: "DataGatherer", PromptTemplate: "{prompt}"},
		{AgentType: "Analyzer", PromptTemplate: "Analyze result from DataGatherer: {prompt}"},
		{AgentType: "Synthesizer", PromptTemplate: "Synthesize insights based on Analyzer: {prompt}"},
		{AgentType: "Communicator", PromptTemplate: "Communicate findings from Synthesizer: {prompt}"},
	}
}

// IsDevelopment reports whether internal error details may be exposed.
func (c EnvironmentConfig) IsDevelopment() bool {
	return strings.EqualFold(c.Name, "development")
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/.
// CONFIG_PATH points at an explicit file instead.
func Load() (*Config, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/app/")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Storage
	cfg.Database.Path = viper.GetString("database.path")
	cfg.Database.SeedOnStart = viper.GetBool("database.seed_on_start")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	for _, providerMap := range getMapList("llm.providers") {
		cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
			Name:     getStringFromMap(providerMap, "name"),
			Enabled:  getBoolFromMap(providerMap, "enabled"),
			Priority: getIntFromMap(providerMap, "priority"),
			APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
			BaseURL:  getStringFromMap(providerMap, "base_url"),
			Model:    getStringFromMap(providerMap, "model"),
			Timeout:  getStringFromMap(providerMap, "timeout"),
		})
	}

	// Embedding
	cfg.Embedding.Provider = viper.GetString("embedding.provider")
	cfg.Embedding.APIKey = expandEnvVar(viper.GetString("embedding.api_key"))
	cfg.Embedding.BaseURL = viper.GetString("embedding.base_url")
	cfg.Embedding.Model = viper.GetString("embedding.model")

	// Agent execution
	cfg.Agent.MaxRetries = viper.GetInt("agent.max_retries")
	cfg.Agent.PageSize = viper.GetInt("agent.page_size")
	cfg.Agent.TopSimilarItems = viper.GetInt("agent.top_similar_items")
	cfg.Agent.Temperature = viper.GetFloat64("agent.temperature")
	cfg.Agent.MaxTokens = viper.GetInt("agent.max_tokens")
	cfg.Agent.Model = viper.GetString("agent.model")
	cfg.Agent.ImageModel = viper.GetString("agent.image_model")
	cfg.Agent.ImageMaxTokens = viper.GetInt("agent.image_max_tokens")

	for _, stepMap := range getMapList("orchestration.steps") {
		cfg.Orchestration.Steps = append(cfg.Orchestration.Steps, StepConfig{
			AgentType:      getStringFromMap(stepMap, "agent_type"),
			PromptTemplate: getStringFromMap(stepMap, "prompt_template"),
		})
	}
	if len(cfg.Orchestration.Steps) == 0 {
		cfg.Orchestration.Steps = DefaultSteps()
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 100)

	viper.SetDefault("database.path", "data/memory.db")
	viper.SetDefault("database.seed_on_start", false)

	// LLM defaults: one attempt per provider, the agent loop owns retries
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "120s")

	viper.SetDefault("embedding.provider", "openai")
	viper.SetDefault("embedding.model", "text-embedding-3-small")

	viper.SetDefault("agent.max_retries", 3)
	viper.SetDefault("agent.page_size", 20)
	viper.SetDefault("agent.top_similar_items", 3)
	viper.SetDefault("agent.temperature", 0.7)
	viper.SetDefault("agent.max_tokens", 4000)
	viper.SetDefault("agent.model", "")
	viper.SetDefault("agent.image_model", "")
	viper.SetDefault("agent.image_max_tokens", 8000)
}

func (c *Config) validate() error {
	if c.Agent.MaxRetries < 1 {
		return fmt.Errorf("agent.max_retries must be at least 1")
	}
	if c.Agent.PageSize < 1 {
		return fmt.Errorf("agent.page_size must be at least 1")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	for i, step := range c.Orchestration.Steps {
		if step.AgentType == "" {
			return fmt.Errorf("orchestration.steps[%d]: agent_type is required", i)
		}
	}
	return nil
}

// Validate checks the LLM configuration before providers are initialized.
func (c LLMConfig) Validate() error {
	if len(c.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range c.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// getMapList reads a list of maps, as produced by YAML sequences of mappings.
func getMapList(key string) []map[string]interface{} {
	if !viper.IsSet(key) {
		return nil
	}
	raw, ok := viper.Get(key).([]interface{})
	if !ok {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}

func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		switch v := val.(type) {
		case int:
			return v
		case int64:
			return int(v)
		case float64:
			return int(v)
		}
	}
	return 0
}
