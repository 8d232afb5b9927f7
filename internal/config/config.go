package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Facts      FactsConfig
	Grok       GrokConfig
	Transcript TranscriptConfig
	Logging    LoggingConfig
	Metrics    MetricsConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// FactsConfig holds facts store configuration
type FactsConfig struct {
	Dir string
}

// GrokConfig holds xAI API configuration. An empty APIKey puts the service
// in deterministic fallback mode rather than failing startup.
type GrokConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// TranscriptConfig holds transcript fetching configuration
type TranscriptConfig struct {
	Enabled  bool
	BaseURL  string
	Language string
	Timeout  time.Duration
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
	Output string
}

// MetricsConfig holds metrics server configuration
type MetricsConfig struct {
	Enabled bool
	Port    int
}

// Load reads configuration from an optional yaml file and environment
// variables. An empty configPath means defaults plus environment only.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	setDefaults(v)

	// The API credential comes from the environment, never the config file.
	if err := v.BindEnv("grok.apikey", "GROK_API_KEY", "XAI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind credential env: %w", err)
	}
	if err := v.BindEnv("grok.model", "GROK_MODEL"); err != nil {
		return nil, fmt.Errorf("failed to bind model env: %w", err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.readTimeout", "30s")
	v.SetDefault("server.writeTimeout", "120s")
	v.SetDefault("server.shutdownTimeout", "10s")

	// Facts store defaults
	v.SetDefault("facts.dir", "facts")

	// Grok defaults
	v.SetDefault("grok.apikey", "")
	v.SetDefault("grok.model", "grok-4-1-fast-reasoning")
	v.SetDefault("grok.baseURL", "https://api.x.ai/v1")
	v.SetDefault("grok.timeout", "30s")

	// Transcript defaults
	v.SetDefault("transcript.enabled", true)
	v.SetDefault("transcript.baseURL", "https://video.google.com/timedtext")
	v.SetDefault("transcript.language", "en")
	v.SetDefault("transcript.timeout", "15s")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stdout")

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.port", 9090)
}
