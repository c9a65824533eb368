package engine

import (
	"errors"
	"fmt"

	"github.com/hammamikhairi/recipecost/internal/domain"
)

// Quote is the cheapest offer of one candidate for one line item.
type Quote struct {
	SupplierIndex int
	Cost          float64
}

// EvaluateCandidate prices item against every supplier offer of candidate
// and returns the cheapest. Pricing is linear: the required amount,
// converted into the offer's unit, over the offer amount, times the offer
// price. Offers whose unit cannot be reached, or whose amount is not
// positive, are left out. ok is false when no offer could be priced.
// Errors other than a missing conversion path are returned as is.
func (e *Engine) EvaluateCandidate(candidate domain.Product, item domain.RecipeLineItem) (quote Quote, ok bool, err error) {
	for i, offer := range candidate.SupplierProducts {
		if offer.UoM.Amount <= 0 {
			e.log.Debug("skipping offer %d of %q: non-positive amount %v", i, candidate.Name, offer.UoM)
			continue
		}

		converted, err := e.converter.Convert(item.UnitOfMeasure, offer.UoM.Name, offer.UoM.Type)
		if errors.Is(err, domain.ErrNoConversionPath) {
			e.log.Debug("skipping offer %d of %q: %v", i, candidate.Name, err)
			continue
		}
		if err != nil {
			return Quote{}, false, fmt.Errorf("pricing offer %d of %q: %w", i, candidate.Name, err)
		}

		cost := converted.Amount / offer.UoM.Amount * offer.Price
		if !ok || cost < quote.Cost {
			quote = Quote{SupplierIndex: i, Cost: cost}
			ok = true
		}
	}
	return quote, ok, nil
}
