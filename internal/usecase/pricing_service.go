package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/pricecart/backend/internal/domain"
	"golang.org/x/sync/errgroup"
)

// PricingServiceConfig holds configuration for the pricing service
type PricingServiceConfig struct {
	QuoteTimeout time.Duration
}

// PricingService orchestrates store resolution and per-store price quotes
// against a single provider, then hands the observations to the comparison
// engine. All state is request-scoped.
type PricingService struct {
	provider     domain.StoreProvider
	comparison   *ComparisonService
	quoteTimeout time.Duration
}

// NewPricingService creates a new pricing service with dependencies
func NewPricingService(provider domain.StoreProvider, config PricingServiceConfig) *PricingService {
	quoteTimeout := config.QuoteTimeout
	if quoteTimeout == 0 {
		quoteTimeout = 10 * time.Second
	}

	return &PricingService{
		provider:     provider,
		comparison:   NewComparisonService(),
		quoteTimeout: quoteTimeout,
	}
}

// FindStores resolves stores near a zip code through the configured provider
func (s *PricingService) FindStores(ctx context.Context, zipCode string) ([]domain.Store, error) {
	if strings.TrimSpace(zipCode) == "" {
		return nil, domain.ErrInvalidRequest
	}
	return s.provider.FindStores(ctx, zipCode)
}

// CompareItem quotes the item at every store and ranks the results.
// Flow: fan out one quote per store -> collect in discovery order -> compare.
// Quotes run concurrently under a per-call timeout; a slow, failing, or
// panicking store degrades to an unknown observation in its own slot without
// touching its siblings, and the observation order handed to the comparison
// engine is always the store discovery order.
func (s *PricingService) CompareItem(ctx context.Context, item string, stores []domain.Store) (domain.ComparisonResult, error) {
	if strings.TrimSpace(item) == "" {
		return domain.ComparisonResult{}, domain.ErrInvalidRequest
	}

	observations := make([]domain.PriceObservation, len(stores))

	g, gctx := errgroup.WithContext(ctx)
	for i, store := range stores {
		i, store := i, store
		g.Go(func() error {
			quoteCtx, cancel := context.WithTimeout(gctx, s.quoteTimeout)
			defer cancel()
			observations[i] = s.quoteOne(quoteCtx, item, store)
			return nil
		})
	}
	// Quote goroutines only ever return nil; Wait is just the join point.
	_ = g.Wait()

	return s.comparison.Compare(observations), nil
}

// quoteOne shields the aggregate flow from a panicking provider call
func (s *PricingService) quoteOne(ctx context.Context, item string, store domain.Store) (obs domain.PriceObservation) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PRICING] quote for store %s panicked: %v", store.LocationID, r)
			obs = domain.NewUnknownObservation(store, domain.DisplayItemName(item))
		}
	}()

	return s.provider.QuoteItem(ctx, item, store)
}
