package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	Redis     RedisConfig
	Providers ProvidersConfig
	Pipeline  PipelineConfig
	CacheTTLs CacheTTLConfig
	Tracing   TracingConfig
	Warmup    WarmupConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// ProviderConfig describes one remote tier. Type selects the adapter:
// "gemini", "huggingface", "ollama", "openai" or "none".
type ProviderConfig struct {
	Type        string
	BaseURL     string
	Model       string
	APIKey      string
	Timeout     time.Duration
	MaxLength   int
	Temperature float64
	TopP        float64
}

type ProvidersConfig struct {
	Primary   ProviderConfig
	Secondary ProviderConfig
}

type PipelineConfig struct {
	RequestTimeout              time.Duration
	PrimaryChunkSize            int
	SecondaryChunkSize          int
	ChunkConcurrency            int
	NotesMinLength              int
	ComprehensiveNotesMinLength int
	CalculationBias             float64
	OfflineSeed                 int64
	MaxVariations               int
}

// CacheTTLConfig holds duration strings such as "24h"; see ParseTTLStringOrDefault.
type CacheTTLConfig struct {
	Quote string
	Notes string
	Quiz  string
}

type TracingConfig struct {
	Enabled     bool
	Exporter    string
	ServiceName string
}

type WarmupTopic struct {
	Subject string `mapstructure:"subject"`
	Grade   string `mapstructure:"grade"`
	Topic   string `mapstructure:"topic"`
}

type WarmupConfig struct {
	Topics            []WarmupTopic
	QuestionsPerTopic int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", "20s")
	v.SetDefault("server.write_timeout", "20s")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")

	v.SetDefault("redis.db", 0)

	v.SetDefault("providers.primary.type", "gemini")
	v.SetDefault("providers.primary.base_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("providers.primary.model", "gemini-1.5-flash")
	v.SetDefault("providers.primary.timeout", "10s")
	v.SetDefault("providers.secondary.type", "huggingface")
	v.SetDefault("providers.secondary.base_url", "https://api-inference.huggingface.co")
	v.SetDefault("providers.secondary.model", "microsoft/DialoGPT-medium")
	v.SetDefault("providers.secondary.timeout", "10s")
	v.SetDefault("providers.secondary.max_length", 500)
	v.SetDefault("providers.secondary.temperature", 0.7)
	v.SetDefault("providers.secondary.top_p", 0.9)

	v.SetDefault("pipeline.request_timeout", "60s")
	v.SetDefault("pipeline.primary_chunk_size", 10)
	v.SetDefault("pipeline.secondary_chunk_size", 5)
	v.SetDefault("pipeline.chunk_concurrency", 1)
	v.SetDefault("pipeline.notes_min_length", 200)
	v.SetDefault("pipeline.comprehensive_notes_min_length", 500)
	v.SetDefault("pipeline.calculation_bias", 0.6)
	v.SetDefault("pipeline.offline_seed", 0)
	v.SetDefault("pipeline.max_variations", 0)

	v.SetDefault("cache_ttls.quote", "24h")
	v.SetDefault("cache_ttls.notes", "168h")
	v.SetDefault("cache_ttls.quiz", "1h")

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.exporter", "stdout")
	v.SetDefault("tracing.service_name", "shulelink")

	v.SetDefault("warmup.questions_per_topic", 30)
}

// LoadConfig reads config.yaml (optional) and applies environment overrides.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Providers: ProvidersConfig{
			Primary:   providerFromViper(v, "providers.primary"),
			Secondary: providerFromViper(v, "providers.secondary"),
		},
		Pipeline: PipelineConfig{
			RequestTimeout:              v.GetDuration("pipeline.request_timeout"),
			PrimaryChunkSize:            v.GetInt("pipeline.primary_chunk_size"),
			SecondaryChunkSize:          v.GetInt("pipeline.secondary_chunk_size"),
			ChunkConcurrency:            v.GetInt("pipeline.chunk_concurrency"),
			NotesMinLength:              v.GetInt("pipeline.notes_min_length"),
			ComprehensiveNotesMinLength: v.GetInt("pipeline.comprehensive_notes_min_length"),
			CalculationBias:             v.GetFloat64("pipeline.calculation_bias"),
			OfflineSeed:                 v.GetInt64("pipeline.offline_seed"),
			MaxVariations:               v.GetInt("pipeline.max_variations"),
		},
		CacheTTLs: CacheTTLConfig{
			Quote: v.GetString("cache_ttls.quote"),
			Notes: v.GetString("cache_ttls.notes"),
			Quiz:  v.GetString("cache_ttls.quiz"),
		},
		Tracing: TracingConfig{
			Enabled:     v.GetBool("tracing.enabled"),
			Exporter:    v.GetString("tracing.exporter"),
			ServiceName: v.GetString("tracing.service_name"),
		},
		Warmup: WarmupConfig{
			QuestionsPerTopic: v.GetInt("warmup.questions_per_topic"),
		},
	}
	if err := v.UnmarshalKey("warmup.topics", &cfg.Warmup.Topics); err != nil {
		return nil, fmt.Errorf("failed to parse warmup topics: %w", err)
	}

	// Override with environment variables if set
	cfg.Providers.Primary.APIKey = getEnv("GEMINI_API_KEY", cfg.Providers.Primary.APIKey)
	cfg.Providers.Secondary.APIKey = getEnv("HUGGINGFACE_API_TOKEN", cfg.Providers.Secondary.APIKey)
	cfg.Redis.Address = getEnv("REDIS_ADDRESS", cfg.Redis.Address)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)
	if port := os.Getenv("SERVER_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVER_PORT: %v", err)
		}
		cfg.Server.Port = p
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func providerFromViper(v *viper.Viper, prefix string) ProviderConfig {
	return ProviderConfig{
		Type:        strings.ToLower(v.GetString(prefix + ".type")),
		BaseURL:     v.GetString(prefix + ".base_url"),
		Model:       v.GetString(prefix + ".model"),
		APIKey:      v.GetString(prefix + ".api_key"),
		Timeout:     v.GetDuration(prefix + ".timeout"),
		MaxLength:   v.GetInt(prefix + ".max_length"),
		Temperature: v.GetFloat64(prefix + ".temperature"),
		TopP:        v.GetFloat64(prefix + ".top_p"),
	}
}

// Validate rejects settings the pipeline cannot run with.
func (c *Config) Validate() error {
	p := c.Pipeline
	if p.PrimaryChunkSize <= 0 || p.SecondaryChunkSize <= 0 {
		return fmt.Errorf("pipeline chunk sizes must be positive (primary=%d, secondary=%d)", p.PrimaryChunkSize, p.SecondaryChunkSize)
	}
	if p.ChunkConcurrency <= 0 {
		return fmt.Errorf("pipeline.chunk_concurrency must be positive, got %d", p.ChunkConcurrency)
	}
	if p.NotesMinLength < 0 || p.ComprehensiveNotesMinLength < 0 {
		return fmt.Errorf("notes minimum lengths must not be negative")
	}
	if p.CalculationBias < 0 || p.CalculationBias > 1 {
		return fmt.Errorf("pipeline.calculation_bias must be within [0,1], got %v", p.CalculationBias)
	}
	if p.MaxVariations < 0 {
		return fmt.Errorf("pipeline.max_variations must not be negative")
	}
	return nil
}

// ParseTTLStringOrDefault parses a duration string, falling back to def when
// it is empty or invalid.
func (c *Config) ParseTTLStringOrDefault(ttl string, def time.Duration) time.Duration {
	if ttl == "" {
		return def
	}
	d, err := time.ParseDuration(ttl)
	if err != nil || d < 0 {
		return def
	}
	return d
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
