package domain

import "context"

// StoreProvider resolves nearby stores and per-store item prices.
// Implementations: the deterministic simulated provider and the live
// Kroger API client.
type StoreProvider interface {
	// Name returns the provider identifier.
	Name() string

	// FindStores resolves retail locations near a zip code. A valid query
	// with no nearby stores yields an empty slice, not an error; an error
	// means the provider itself is unavailable.
	FindStores(ctx context.Context, zipCode string) ([]Store, error)

	// QuoteItem resolves one store's price for an item query. Per-store
	// failures never propagate: they degrade to an observation with no
	// price and UNKNOWN stock, so one bad store cannot abort a comparison.
	QuoteItem(ctx context.Context, item string, store Store) PriceObservation
}
