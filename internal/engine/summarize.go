package engine

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/hammamikhairi/recipecost/internal/domain"
)

// Summarize totals the chosen costs and sums every nutrient of the chosen
// products in the normalizer's base unit. selections must hold one entry
// per line item, in line-item order.
//
// Sums are accumulated as decimals, so the result does not depend on the
// order of the selections. Nutrients are not weighted by the amount the
// recipe uses: the summary describes the chosen products themselves.
func (e *Engine) Summarize(recipe domain.Recipe, selections []domain.Selection) (domain.RecipeSummary, error) {
	if len(selections) != len(recipe.LineItems) {
		return domain.RecipeSummary{}, fmt.Errorf("recipe %q: %d selections for %d line items",
			recipe.Name, len(selections), len(recipe.LineItems))
	}

	total := decimal.Zero
	sums := make(map[string]decimal.Decimal)
	for _, sel := range selections {
		cost, err := finite(sel.Cost)
		if err != nil {
			return domain.RecipeSummary{}, fmt.Errorf("recipe %q, product %q cost: %w", recipe.Name, sel.Product.Name, err)
		}
		total = total.Add(cost)

		for _, fact := range sel.Product.NutrientFacts {
			norm, err := e.normalizer.Normalize(fact)
			if err != nil {
				return domain.RecipeSummary{}, fmt.Errorf("recipe %q, product %q: %w", recipe.Name, sel.Product.Name, err)
			}
			amount, err := finite(norm.QuantityAmount.Amount)
			if err != nil {
				return domain.RecipeSummary{}, fmt.Errorf("recipe %q, product %q, nutrient %q: %w", recipe.Name, sel.Product.Name, fact.NutrientName, err)
			}
			sums[fact.NutrientName] = sums[fact.NutrientName].Add(amount)
		}
	}

	base := e.normalizer.Base()
	nutrients := make(map[string]domain.NutrientFact, len(sums))
	for name, sum := range sums {
		amount, _ := sum.Float64()
		if math.IsInf(amount, 0) {
			return domain.RecipeSummary{}, fmt.Errorf("recipe %q, nutrient %q total: %w", recipe.Name, name, domain.ErrOutOfRange)
		}
		nutrients[name] = domain.NutrientFact{
			NutrientName:   name,
			QuantityAmount: domain.UoM(amount, base.Name, base.Type),
			QuantityPer:    base,
		}
	}

	cost, _ := total.Float64()
	if math.IsInf(cost, 0) {
		return domain.RecipeSummary{}, fmt.Errorf("recipe %q total cost: %w", recipe.Name, domain.ErrOutOfRange)
	}
	return domain.RecipeSummary{
		CheapestCost:            cost,
		NutrientsAtCheapestCost: nutrients,
	}, nil
}

// finite converts v to a decimal, rejecting infinities and NaN.
func finite(v float64) (decimal.Decimal, error) {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return decimal.Zero, fmt.Errorf("%v: %w", v, domain.ErrOutOfRange)
	}
	return decimal.NewFromFloat(v), nil
}
