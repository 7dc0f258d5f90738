package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreDriverFirestore = "firestore"
	StoreDriverPostgres  = "postgres"
	StoreDriverSQLite    = "sqlite"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Storage
	Store     StoreConfig
	Firestore FirestoreConfig
	Postgres  PostgresConfig
	SQLite    SQLiteConfig

	// Assistant behaviour
	Chat         ChatConfig
	Learning     LearningConfig
	Conversation ConversationConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
	// TrustedProxies lists the proxy addresses or CIDRs whose forwarding headers are honoured.
	TrustedProxies []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

// RateLimitConfig is expressed in requests per minute per client IP.
type RateLimitConfig struct {
	APIPerMin    int
	HealthPerMin int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration
	Temperature     float64
	MaxOutputTokens int
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string
	Enabled  bool
	Priority int
	APIKey   string
	BaseURL  string
	Model    string
	Timeout  time.Duration
}

// StoreConfig selects the document store backend.
type StoreConfig struct {
	Driver string
}

type FirestoreConfig struct {
	ProjectID               string
	CredentialsPath         string
	LearningCollection      string
	ConversationsCollection string
}

type PostgresConfig struct {
	URL      string
	MaxConns int32
	MinConns int32
	Migrate  bool
}

type SQLiteConfig struct {
	Path string
}

type ChatConfig struct {
	MaxMessageLength int
	MaxHistory       int
	DefaultUserID    string
	ModelTimeout     time.Duration
}

type LearningConfig struct {
	MaxTopics     int
	ContextTopics int
	ReadTimeout   time.Duration
}

type ConversationConfig struct {
	DefaultLimit int
	MaxLimit     int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
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
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.HTTPServer.TrustedProxies = splitList(viper.GetStringSlice("http_server.trusted_proxies"))
	if port := viper.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.CORS.AllowedOrigins = splitList(viper.GetStringSlice("cors.allowed_origins"))
	cfg.RateLimit.APIPerMin = viper.GetInt("rate_limit.api_per_min")
	cfg.RateLimit.HealthPerMin = viper.GetInt("rate_limit.health_per_min")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetDuration("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetDuration("llm.max_total_timeout")
	cfg.LLM.Temperature = viper.GetFloat64("llm.temperature")
	cfg.LLM.MaxOutputTokens = viper.GetInt("llm.max_output_tokens")
	cfg.LLM.Providers = loadProviders()

	// GEMINI_API_KEY alone is enough to run with a single Gemini provider.
	if len(cfg.LLM.Providers) == 0 {
		if key := viper.GetString("gemini_api_key"); key != "" {
			cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
				Name:     "gemini",
				Enabled:  true,
				Priority: 1,
				APIKey:   key,
				Model:    viper.GetString("gemini.model"),
				BaseURL:  viper.GetString("gemini.base_url"),
				Timeout:  viper.GetDuration("gemini.timeout"),
			})
		}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	// Storage
	cfg.Store.Driver = strings.ToLower(viper.GetString("store.driver"))
	cfg.Firestore.ProjectID = viper.GetString("firestore.project_id")
	cfg.Firestore.CredentialsPath = viper.GetString("firestore.credentials_path")
	cfg.Firestore.LearningCollection = viper.GetString("firestore.learning_collection")
	cfg.Firestore.ConversationsCollection = viper.GetString("firestore.conversations_collection")
	if creds := viper.GetString("google_application_credentials"); creds != "" && cfg.Firestore.CredentialsPath == "" {
		cfg.Firestore.CredentialsPath = creds
	}
	cfg.Postgres.URL = viper.GetString("postgres.url")
	if dbURL := viper.GetString("database_url"); dbURL != "" {
		cfg.Postgres.URL = dbURL
	}
	cfg.Postgres.MaxConns = viper.GetInt32("postgres.max_conns")
	cfg.Postgres.MinConns = viper.GetInt32("postgres.min_conns")
	cfg.Postgres.Migrate = viper.GetBool("postgres.migrate")
	cfg.SQLite.Path = viper.GetString("sqlite.path")

	if err := validateStoreConfig(cfg); err != nil {
		return nil, err
	}

	// Assistant behaviour
	cfg.Chat.MaxMessageLength = viper.GetInt("chat.max_message_length")
	cfg.Chat.MaxHistory = viper.GetInt("chat.max_history")
	cfg.Chat.DefaultUserID = viper.GetString("chat.default_user_id")
	cfg.Chat.ModelTimeout = viper.GetDuration("chat.model_timeout")
	cfg.Learning.MaxTopics = viper.GetInt("learning.max_topics")
	cfg.Learning.ContextTopics = viper.GetInt("learning.context_topics")
	cfg.Learning.ReadTimeout = viper.GetDuration("learning.read_timeout")
	cfg.Conversation.DefaultLimit = viper.GetInt("conversation.default_limit")
	cfg.Conversation.MaxLimit = viper.GetInt("conversation.max_limit")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "15s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("cors.allowed_origins", []string{
		"https://dpengineering.site",
		"https://www.dpengineering.site",
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	})
	viper.SetDefault("rate_limit.api_per_min", 10)
	viper.SetDefault("rate_limit.health_per_min", 60)

	// LLM defaults: a single attempt, the chat flow reports model failures directly
	viper.SetDefault("llm.fallback_enabled", false)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "30s")
	viper.SetDefault("llm.temperature", 0.7)
	viper.SetDefault("llm.max_output_tokens", 8192)
	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("gemini.timeout", "30s")

	// Storage
	viper.SetDefault("store.driver", StoreDriverSQLite)
	viper.SetDefault("firestore.learning_collection", "user_learning")
	viper.SetDefault("firestore.conversations_collection", "conversations")
	viper.SetDefault("postgres.max_conns", 10)
	viper.SetDefault("postgres.min_conns", 1)
	viper.SetDefault("postgres.migrate", true)
	viper.SetDefault("sqlite.path", "kodi.db")

	// Assistant behaviour
	viper.SetDefault("chat.max_message_length", 5000)
	viper.SetDefault("chat.max_history", 20)
	viper.SetDefault("chat.default_user_id", "anonymous")
	viper.SetDefault("chat.model_timeout", "30s")
	viper.SetDefault("learning.max_topics", 50)
	viper.SetDefault("learning.context_topics", 5)
	viper.SetDefault("learning.read_timeout", "3s")
	viper.SetDefault("conversation.default_limit", 10)
	viper.SetDefault("conversation.max_limit", 100)
}

// loadProviders reads the llm.providers list, which viper only exposes as raw maps.
func loadProviders() []ProviderConfig {
	if !viper.IsSet("llm.providers") {
		return nil
	}

	providersList, ok := viper.Get("llm.providers").([]interface{})
	if !ok {
		return nil
	}

	var providers []ProviderConfig
	for _, p := range providersList {
		providerMap, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		timeout, _ := time.ParseDuration(getStringFromMap(providerMap, "timeout"))
		providers = append(providers, ProviderConfig{
			Name:     getStringFromMap(providerMap, "name"),
			Enabled:  getBoolFromMap(providerMap, "enabled"),
			Priority: getIntFromMap(providerMap, "priority"),
			APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
			BaseURL:  getStringFromMap(providerMap, "base_url"),
			Model:    getStringFromMap(providerMap, "model"),
			Timeout:  timeout,
		})
	}
	return providers
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - set GEMINI_API_KEY or add llm.providers to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = 1
	}

	return nil
}

// validateStoreConfig checks that the selected backend has what it needs.
func validateStoreConfig(cfg *Config) error {
	switch cfg.Store.Driver {
	case StoreDriverFirestore:
		if cfg.Firestore.ProjectID == "" {
			return fmt.Errorf("firestore.project_id is required for store driver %q", cfg.Store.Driver)
		}
	case StoreDriverPostgres:
		if cfg.Postgres.URL == "" {
			return fmt.Errorf("postgres.url is required for store driver %q", cfg.Store.Driver)
		}
	case StoreDriverSQLite:
		if cfg.SQLite.Path == "" {
			return fmt.Errorf("sqlite.path is required for store driver %q", cfg.Store.Driver)
		}
	default:
		return fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
	return nil
}

// splitList accepts both YAML lists and comma separated env values.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, item := range strings.Split(v, ",") {
			item = strings.TrimSpace(item)
			if item != "" {
				out = append(out, item)
			}
		}
	}
	return out
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
