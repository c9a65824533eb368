package engine

import (
	"context"
	"fmt"
	"math"

	"github.com/hammamikhairi/recipecost/internal/domain"
)

// noCost starts the minimum search. Every real cost is below it, so a
// legitimately free offer still wins.
const noCost = math.MaxFloat64

// Choice is the cheapest candidate for a line item. Product is nil when
// no candidate could be priced.
type Choice struct {
	Product       *domain.Product
	SupplierIndex int
	Cost          float64
}

// SelectCheapest evaluates every candidate for the item's ingredient and
// keeps the global minimum. Ties go to the candidate listed first in the
// catalog.
func (e *Engine) SelectCheapest(ctx context.Context, item domain.RecipeLineItem) (Choice, error) {
	candidates, err := e.catalog.ProductsForIngredient(ctx, item.Ingredient)
	if err != nil {
		return Choice{}, fmt.Errorf("getting products for %q: %w", item.Ingredient.Name, err)
	}

	best := Choice{SupplierIndex: -1, Cost: noCost}
	for i := range candidates {
		quote, ok, err := e.EvaluateCandidate(candidates[i], item)
		if err != nil {
			return Choice{}, err
		}
		if ok && quote.Cost < best.Cost {
			best = Choice{Product: &candidates[i], SupplierIndex: quote.SupplierIndex, Cost: quote.Cost}
		}
	}

	if best.Product == nil {
		e.log.Debug("ingredient %q: none of %d candidates could be priced", item.Ingredient.Name, len(candidates))
	}
	return best, nil
}
