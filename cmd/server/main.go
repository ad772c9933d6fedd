package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pricecart/backend/config"
	httpDelivery "github.com/pricecart/backend/internal/delivery/http"
	"github.com/pricecart/backend/internal/domain"
	"github.com/pricecart/backend/internal/infrastructure/kroger"
	"github.com/pricecart/backend/internal/infrastructure/sim"
	"github.com/pricecart/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting PriceCart Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Provider mode: %s", cfg.Provider.Mode)

	// Select the price provider
	var provider domain.StoreProvider
	switch cfg.Provider.Mode {
	case config.ModeLive:
		liveProvider, err := kroger.NewProvider(
			cfg.Kroger.ClientID,
			cfg.Kroger.ClientSecret,
			cfg.Kroger.BaseURL,
			kroger.Config{
				RadiusMiles:       cfg.Kroger.RadiusMiles,
				StoreLimit:        cfg.Kroger.StoreLimit,
				RequestsPerMinute: cfg.Kroger.RequestsPerMinute,
			},
		)
		if err != nil {
			log.Fatalf("Failed to initialize Kroger provider: %v", err)
		}
		log.Printf("Kroger API configured: %s (stores capped at %d, radius %d miles)",
			cfg.Kroger.BaseURL, cfg.Kroger.StoreLimit, cfg.Kroger.RadiusMiles)
		provider = liveProvider
	default:
		provider = sim.NewProvider()
		log.Printf("Simulation mode: deterministic mock data, no credentials required")
	}

	// Initialize usecase layer
	pricingService := usecase.NewPricingService(provider, usecase.PricingServiceConfig{
		QuoteTimeout: cfg.Pricing.QuoteTimeout,
	})

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(pricingService, provider.Name())

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
