package domain

// StockStatus describes whether an item was available at a store when it was quoted
type StockStatus string

const (
	StockInStock    StockStatus = "IN_STOCK"
	StockOutOfStock StockStatus = "OUT_OF_STOCK"
	StockUnknown    StockStatus = "UNKNOWN"
)

// Store represents one retail location resolved for a location query.
// Stores are request-scoped: a new location query produces a new store set.
type Store struct {
	Name       string `json:"name"`
	LocationID string `json:"locationId"`
	Address    string `json:"address"`
	Distance   string `json:"distance,omitempty"`
}

// PriceObservation is one store's price and stock answer for an item query.
// Price is nil when the item is out of stock or the lookup failed.
// Invariant: OUT_OF_STOCK observations never carry a price, and a present
// price never coexists with OUT_OF_STOCK. Use the constructors below.
type PriceObservation struct {
	Store Store       `json:"store"`
	Item  string      `json:"item"`
	Price *float64    `json:"price,omitempty"`
	Stock StockStatus `json:"stock"`
}

// NewPricedObservation builds an observation carrying a resolved price.
// A non-positive price or an out-of-stock status cannot carry a price, so
// those inputs degrade to an unknown observation instead of violating the
// price/stock invariant.
func NewPricedObservation(store Store, item string, price float64, stock StockStatus) PriceObservation {
	if price <= 0 || stock == StockOutOfStock {
		return NewUnknownObservation(store, item)
	}
	return PriceObservation{Store: store, Item: item, Price: &price, Stock: stock}
}

// NewOutOfStockObservation builds an observation for an item the store does
// not currently carry. No price is attached.
func NewOutOfStockObservation(store Store, item string) PriceObservation {
	return PriceObservation{Store: store, Item: item, Stock: StockOutOfStock}
}

// NewUnknownObservation is the degraded form used when a per-store lookup
// failed or returned nothing usable.
func NewUnknownObservation(store Store, item string) PriceObservation {
	return PriceObservation{Store: store, Item: item, Stock: StockUnknown}
}

// HasPrice reports whether a price was resolved for this observation.
func (o PriceObservation) HasPrice() bool {
	return o.Price != nil
}

// ComparisonResult is the ranked outcome of comparing one item across stores.
// Best is nil when no observation carries a price; that is the explicit
// "no price found" outcome, not an error.
type ComparisonResult struct {
	Best   *PriceObservation  `json:"best,omitempty"`
	Ranked []PriceObservation `json:"ranked"`
}
