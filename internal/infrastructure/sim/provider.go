package sim

import (
	"context"
	"fmt"
	"hash/fnv"
	"log"
	"math"
	"math/rand"
	"strings"

	"github.com/pricecart/backend/internal/domain"
)

// storeCatalog is the fixed set of chains the simulation draws from
var storeCatalog = []string{
	"Kroger", "Walmart", "Aldi", "Whole Foods", "Trader Joe's", "Safeway",
}

const (
	minStores = 3
	maxStores = 5

	minBasePrice = 2.50
	maxBasePrice = 15.00

	minVariance = 0.8
	maxVariance = 1.2

	// 3-in-4 chance an item is on the shelf
	inStockProbability = 0.75
)

// Provider generates reproducible synthetic stores and prices with no
// network I/O. Every draw is seeded purely from the query strings, so the
// same zip code always yields the same store set and the same item always
// anchors the same base price within a process, regardless of call order.
type Provider struct{}

// NewProvider creates a new simulated provider
func NewProvider() *Provider {
	return &Provider{}
}

// Name returns the provider identifier
func (p *Provider) Name() string {
	return "simulation"
}

// FindStores synthesizes 3-5 stores near the zip code, sampled without
// replacement from the fixed chain catalog.
func (p *Provider) FindStores(ctx context.Context, zipCode string) ([]domain.Store, error) {
	if strings.TrimSpace(zipCode) == "" {
		return nil, domain.ErrInvalidRequest
	}

	rng := seededRand(zipCode)
	count := minStores + rng.Intn(maxStores-minStores+1)

	stores := make([]domain.Store, 0, count)
	for _, idx := range rng.Perm(len(storeCatalog))[:count] {
		stores = append(stores, domain.Store{
			Name:       storeCatalog[idx],
			LocationID: fmt.Sprintf("LOC-%d", 1000+rng.Intn(9000)),
			Address:    fmt.Sprintf("%d Main St, Zip %s", 100+rng.Intn(900), zipCode),
			Distance:   fmt.Sprintf("%d miles", 1+rng.Intn(10)),
		})
	}

	log.Printf("[SIM] resolved %d stores for zip %s", len(stores), zipCode)
	return stores, nil
}

// QuoteItem prices the item at one store. The base price is anchored to the
// normalized item query alone; the per-store variance and stock draw are
// seeded by (item, store name), so an observation is a pure function of its
// inputs and does not depend on which stores were quoted first.
func (p *Provider) QuoteItem(ctx context.Context, item string, store domain.Store) domain.PriceObservation {
	display := domain.DisplayItemName(item)

	rng := seededRand(domain.NormalizeItemQuery(item) + "|" + store.Name)
	if rng.Float64() >= inStockProbability {
		return domain.NewOutOfStockObservation(store, display)
	}

	variance := minVariance + rng.Float64()*(maxVariance-minVariance)
	price := math.Round(basePrice(item)*variance*100) / 100

	return domain.NewPricedObservation(store, display, price, domain.StockInStock)
}

// basePrice is the stable anchor price for an item, independent of the
// store set it is quoted against.
func basePrice(item string) float64 {
	rng := seededRand(domain.NormalizeItemQuery(item))
	return minBasePrice + rng.Float64()*(maxBasePrice-minBasePrice)
}

// seededRand returns a generator whose sequence is determined entirely by
// the seed string.
func seededRand(seed string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(seed))
	return rand.New(rand.NewSource(int64(h.Sum64())))
}
