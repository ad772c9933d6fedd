package usecase

import (
	"sort"

	"github.com/pricecart/backend/internal/domain"
)

// ComparisonService ranks price observations and selects the best offer
type ComparisonService struct{}

// NewComparisonService creates a new comparison service
func NewComparisonService() *ComparisonService {
	return &ComparisonService{}
}

// Compare partitions observations into priced and unpriced, sorts the priced
// ones ascending by price with store name breaking ties, and designates the
// cheapest as the best offer. Unpriced observations trail the ranking in
// their original discovery order and never influence it or acquire a
// synthetic price. Best is nil when nothing has a price.
func (s *ComparisonService) Compare(observations []domain.PriceObservation) domain.ComparisonResult {
	priced := make([]domain.PriceObservation, 0, len(observations))
	unpriced := make([]domain.PriceObservation, 0)

	for _, obs := range observations {
		if obs.HasPrice() {
			priced = append(priced, obs)
		} else {
			unpriced = append(unpriced, obs)
		}
	}

	sort.SliceStable(priced, func(i, j int) bool {
		if *priced[i].Price != *priced[j].Price {
			return *priced[i].Price < *priced[j].Price
		}
		return priced[i].Store.Name < priced[j].Store.Name
	})

	ranked := make([]domain.PriceObservation, 0, len(observations))
	ranked = append(ranked, priced...)
	ranked = append(ranked, unpriced...)

	result := domain.ComparisonResult{Ranked: ranked}
	if len(priced) > 0 {
		best := priced[0]
		result.Best = &best
	}

	return result
}
