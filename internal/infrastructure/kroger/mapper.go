package kroger

import (
	"math"

	"github.com/pricecart/backend/internal/domain"
)

// MapLocations converts Kroger location payloads into domain stores,
// enforcing the result cap even if the API ignores filter.limit.
func MapLocations(locations []domain.KrogerLocation, limit int) []domain.Store {
	if limit > len(locations) {
		limit = len(locations)
	}

	stores := make([]domain.Store, 0, limit)
	for _, loc := range locations[:limit] {
		address := loc.Address.AddressLine1
		if address == "" {
			address = "Unknown"
		}
		stores = append(stores, domain.Store{
			Name:       loc.Name,
			LocationID: loc.LocationID,
			Address:    address,
		})
	}

	return stores
}

// MapProductQuote extracts the first listed regular price from a product
// search payload. The live API does not report availability, so a priced
// result still carries UNKNOWN stock; anything missing or non-positive
// degrades to an unpriced unknown observation.
func MapProductQuote(products []domain.KrogerProduct, store domain.Store, item string) domain.PriceObservation {
	if len(products) == 0 || len(products[0].Items) == 0 {
		return domain.NewUnknownObservation(store, item)
	}

	regular := products[0].Items[0].Price.Regular
	if regular <= 0 {
		return domain.NewUnknownObservation(store, item)
	}

	price := math.Round(regular*100) / 100
	return domain.NewPricedObservation(store, item, price, domain.StockUnknown)
}
