package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Recognized provider modes
const (
	ModeSimulation = "simulation"
	ModeLive       = "live"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Provider  ProviderConfig
	Kroger    KrogerConfig
	Pricing   PricingConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ProviderConfig selects the price data source
type ProviderConfig struct {
	Mode string `mapstructure:"mode"` // "simulation" or "live"
}

// KrogerConfig holds Kroger API configuration. ClientID and ClientSecret are
// sensitive: they are only ever passed to the auth exchange, never logged.
type KrogerConfig struct {
	ClientID          string `mapstructure:"client_id"`
	ClientSecret      string `mapstructure:"client_secret"`
	BaseURL           string `mapstructure:"base_url"`
	RadiusMiles       int    `mapstructure:"radius_miles"`
	StoreLimit        int    `mapstructure:"store_limit"`
	RequestsPerMinute int    `mapstructure:"requests_per_minute"`
}

// PricingConfig holds price-resolution configuration
type PricingConfig struct {
	QuoteTimeout time.Duration `mapstructure:"quote_timeout"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/pricecart/")

	// Environment variable settings
	v.SetEnvPrefix("PRICECART")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	// Provider defaults
	v.SetDefault("provider.mode", ModeSimulation)

	// Kroger defaults
	v.SetDefault("kroger.client_id", "")
	v.SetDefault("kroger.client_secret", "")
	v.SetDefault("kroger.base_url", "https://api-ce.kroger.com/v1")
	v.SetDefault("kroger.radius_miles", 10)
	v.SetDefault("kroger.store_limit", 5)
	v.SetDefault("kroger.requests_per_minute", 60)

	// Pricing defaults
	v.SetDefault("pricing.quote_timeout", "10s")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Provider.Mode != ModeSimulation && config.Provider.Mode != ModeLive {
		return fmt.Errorf("provider mode must be '%s' or '%s', got: %s",
			ModeSimulation, ModeLive, config.Provider.Mode)
	}

	if config.Provider.Mode == ModeLive {
		if config.Kroger.ClientID == "" || config.Kroger.ClientSecret == "" {
			return fmt.Errorf("Kroger credentials are required in live mode " +
				"(set PRICECART_KROGER_CLIENT_ID and PRICECART_KROGER_CLIENT_SECRET)")
		}
	}

	if config.Kroger.StoreLimit < 1 || config.Kroger.StoreLimit > 5 {
		return fmt.Errorf("kroger store limit must be between 1 and 5, got: %d", config.Kroger.StoreLimit)
	}

	return nil
}
