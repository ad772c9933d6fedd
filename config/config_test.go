package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("PRICECART_SERVER_PORT")
		os.Unsetenv("PRICECART_SERVER_ENVIRONMENT")
		os.Unsetenv("PRICECART_PROVIDER_MODE")
		os.Unsetenv("PRICECART_KROGER_CLIENT_ID")
		os.Unsetenv("PRICECART_KROGER_CLIENT_SECRET")
		os.Unsetenv("PRICECART_KROGER_BASE_URL")
		os.Unsetenv("PRICECART_KROGER_STORE_LIMIT")
		os.Unsetenv("PRICECART_PRICING_QUOTE_TIMEOUT")
		os.Unsetenv("PRICECART_RATELIMIT_PER_IP")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Provider.Mode != ModeSimulation {
			t.Errorf("Provider.Mode = %s, want %s", cfg.Provider.Mode, ModeSimulation)
		}
		if cfg.Kroger.BaseURL != "https://api-ce.kroger.com/v1" {
			t.Errorf("Kroger.BaseURL = %s, want https://api-ce.kroger.com/v1", cfg.Kroger.BaseURL)
		}
		if cfg.Kroger.StoreLimit != 5 {
			t.Errorf("Kroger.StoreLimit = %d, want 5", cfg.Kroger.StoreLimit)
		}
		if cfg.Kroger.RadiusMiles != 10 {
			t.Errorf("Kroger.RadiusMiles = %d, want 10", cfg.Kroger.RadiusMiles)
		}
		if cfg.Pricing.QuoteTimeout != 10*time.Second {
			t.Errorf("Pricing.QuoteTimeout = %v, want 10s", cfg.Pricing.QuoteTimeout)
		}
		if cfg.RateLimit.PerIP != 100 {
			t.Errorf("RateLimit.PerIP = %d, want 100", cfg.RateLimit.PerIP)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PRICECART_SERVER_PORT", "9090")
		os.Setenv("PRICECART_SERVER_ENVIRONMENT", "production")
		os.Setenv("PRICECART_PROVIDER_MODE", "live")
		os.Setenv("PRICECART_KROGER_CLIENT_ID", "custom-client-id")
		os.Setenv("PRICECART_KROGER_CLIENT_SECRET", "custom-secret")
		os.Setenv("PRICECART_KROGER_BASE_URL", "https://custom.api.com/v1")
		os.Setenv("PRICECART_KROGER_STORE_LIMIT", "3")
		os.Setenv("PRICECART_PRICING_QUOTE_TIMEOUT", "5s")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Provider.Mode != ModeLive {
			t.Errorf("Provider.Mode = %s, want %s", cfg.Provider.Mode, ModeLive)
		}
		if cfg.Kroger.ClientID != "custom-client-id" {
			t.Errorf("Kroger.ClientID = %s, want custom-client-id", cfg.Kroger.ClientID)
		}
		if cfg.Kroger.BaseURL != "https://custom.api.com/v1" {
			t.Errorf("Kroger.BaseURL = %s, want https://custom.api.com/v1", cfg.Kroger.BaseURL)
		}
		if cfg.Kroger.StoreLimit != 3 {
			t.Errorf("Kroger.StoreLimit = %d, want 3", cfg.Kroger.StoreLimit)
		}
		if cfg.Pricing.QuoteTimeout != 5*time.Second {
			t.Errorf("Pricing.QuoteTimeout = %v, want 5s", cfg.Pricing.QuoteTimeout)
		}
	})

	t.Run("rejects live mode without credentials", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PRICECART_PROVIDER_MODE", "live")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want credential validation error")
		}
	})

	t.Run("rejects unknown provider mode", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PRICECART_PROVIDER_MODE", "psychic")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want mode validation error")
		}
	})

	t.Run("rejects store limit above the fan-out cap", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PRICECART_KROGER_STORE_LIMIT", "12")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want store limit validation error")
		}
	})
}
