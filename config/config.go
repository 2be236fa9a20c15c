package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Capabilities
	LLM    LLMConfig
	Voyage VoyageConfig
	Qdrant QdrantConfig
	Redis  RedisConfig

	// Planner pipeline
	Session   SessionConfig
	Knowledge KnowledgeConfig
	Tools     ToolsConfig
	Planner   PlannerConfig

	RateLimit RateLimitConfig
	Telemetry TelemetryConfig
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

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration
	Temperature     float64
	MaxTokens       int
	Breaker         BreakerConfig
}

// BreakerConfig tunes the per-provider circuit breaker.
type BreakerConfig struct {
	MaxFailures int
	OpenTimeout time.Duration
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name      string
	Enabled   bool
	Priority  int
	APIKey    string
	BaseURL   string
	Model     string
	Timeout   string
	Region    string
	AccessKey string
	SecretKey string
}

type VoyageConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type QdrantConfig struct {
	URL            string
	APIKey         string
	CollectionName string
	VectorSize     int
}

type RedisConfig struct {
	URL        string
	SessionTTL time.Duration
}

type SessionConfig struct {
	HistoryLimit int
}

type KnowledgeConfig struct {
	TopK         int
	CorpusPath   string
	QueryTimeout time.Duration
}

type ToolsConfig struct {
	Timeout time.Duration
}

type PlannerConfig struct {
	DefaultDestination string
	// Timezone anchors relative dates such as "next weekend".
	Timezone           string
	GenerationTimeout  time.Duration
	AnalysisCacheTTL   time.Duration
}

type RateLimitConfig struct {
	PerMin int
}

type TelemetryConfig struct {
	TracingEnabled bool
	MetricsEnabled bool
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

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

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetDuration("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetDuration("llm.max_total_timeout")
	cfg.LLM.Temperature = viper.GetFloat64("llm.temperature")
	cfg.LLM.MaxTokens = viper.GetInt("llm.max_tokens")
	cfg.LLM.Breaker.MaxFailures = viper.GetInt("llm.breaker.max_failures")
	cfg.LLM.Breaker.OpenTimeout = viper.GetDuration("llm.breaker.open_timeout")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:      getStringFromMap(providerMap, "name"),
						Enabled:   getBoolFromMap(providerMap, "enabled"),
						Priority:  getIntFromMap(providerMap, "priority"),
						APIKey:    expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:   getStringFromMap(providerMap, "base_url"),
						Model:     getStringFromMap(providerMap, "model"),
						Timeout:   getStringFromMap(providerMap, "timeout"),
						Region:    getStringFromMap(providerMap, "region"),
						AccessKey: expandEnvVar(getStringFromMap(providerMap, "access_key")),
						SecretKey: expandEnvVar(getStringFromMap(providerMap, "secret_key")),
					})
				}
			}
		}
	}

	// Providers are optional: without any, generation runs on fallbacks.
	if len(cfg.LLM.Providers) > 0 {
		if err := validateLLMConfig(&cfg.LLM); err != nil {
			return nil, fmt.Errorf("invalid llm config: %w", err)
		}
	}

	// Voyage AI
	cfg.Voyage.APIKey = expandEnvVar(viper.GetString("voyage.api_key"))
	if voyageKey := viper.GetString("voyage_api_key"); voyageKey != "" {
		cfg.Voyage.APIKey = voyageKey
	}
	cfg.Voyage.Model = viper.GetString("voyage.model")
	cfg.Voyage.BaseURL = viper.GetString("voyage.base_url")

	cfg.Qdrant.URL = viper.GetString("qdrant.url")
	cfg.Qdrant.APIKey = expandEnvVar(viper.GetString("qdrant.api_key"))
	cfg.Qdrant.CollectionName = viper.GetString("qdrant.collection_name")
	cfg.Qdrant.VectorSize = viper.GetInt("qdrant.vector_size")
	if qdrantURL := viper.GetString("qdrant_url"); qdrantURL != "" {
		cfg.Qdrant.URL = qdrantURL
	}

	cfg.Redis.URL = viper.GetString("redis.url")
	if redisURL := viper.GetString("redis_url"); redisURL != "" {
		cfg.Redis.URL = redisURL
	}
	cfg.Redis.SessionTTL = viper.GetDuration("redis.session_ttl")

	// Planner pipeline
	cfg.Session.HistoryLimit = viper.GetInt("session.history_limit")
	cfg.Knowledge.TopK = viper.GetInt("knowledge.top_k")
	cfg.Knowledge.CorpusPath = viper.GetString("knowledge.corpus_path")
	cfg.Knowledge.QueryTimeout = viper.GetDuration("knowledge.query_timeout")
	cfg.Tools.Timeout = viper.GetDuration("tools.timeout")
	cfg.Planner.DefaultDestination = viper.GetString("planner.default_destination")
	cfg.Planner.Timezone = viper.GetString("planner.timezone")
	cfg.Planner.GenerationTimeout = viper.GetDuration("planner.generation_timeout")
	cfg.Planner.AnalysisCacheTTL = viper.GetDuration("planner.analysis_cache_ttl")

	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")
	cfg.Telemetry.TracingEnabled = viper.GetBool("telemetry.tracing_enabled")
	cfg.Telemetry.MetricsEnabled = viper.GetBool("telemetry.metrics_enabled")

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

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 2)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "45s")
	viper.SetDefault("llm.temperature", 0.3)
	viper.SetDefault("llm.max_tokens", 2048)
	viper.SetDefault("llm.breaker.max_failures", 5)
	viper.SetDefault("llm.breaker.open_timeout", "30s")

	viper.SetDefault("voyage.model", "voyage-3")
	viper.SetDefault("qdrant.collection_name", "travel_knowledge")
	viper.SetDefault("qdrant.vector_size", 1024)
	viper.SetDefault("redis.session_ttl", "0s")

	viper.SetDefault("session.history_limit", 10)
	viper.SetDefault("knowledge.top_k", 2)
	viper.SetDefault("knowledge.query_timeout", "3s")
	viper.SetDefault("tools.timeout", "2s")
	viper.SetDefault("planner.default_destination", "Paris")
	viper.SetDefault("planner.timezone", "UTC")
	viper.SetDefault("planner.generation_timeout", "40s")
	viper.SetDefault("planner.analysis_cache_ttl", "30m")

	viper.SetDefault("rate_limit.per_min", 30)
	viper.SetDefault("telemetry.tracing_enabled", false)
	viper.SetDefault("telemetry.metrics_enabled", true)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		// Unresolved placeholders mean "not configured".
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
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
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
