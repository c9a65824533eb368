// Package nutrition normalises nutrient facts to a common reference so
// facts from different products can be added together.
package nutrition

import (
	"fmt"
	"math"

	"github.com/hammamikhairi/recipecost/internal/domain"
)

// NutrientBaseUoM is the canonical reference every nutrient is expressed
// against: an amount of nutrient per 100 grams of product.
var NutrientBaseUoM = domain.UoM(100, domain.UnitGrams, domain.UnitTypeMass)

// Compile-time interface check.
var _ domain.NutrientNormalizer = (*Normalizer)(nil)

// Normalizer rewrites facts into NutrientBaseUoM using a unit converter.
type Normalizer struct {
	conv domain.UnitConverter
	base domain.UnitOfMeasure
}

// NewNormalizer creates a normalizer against NutrientBaseUoM.
func NewNormalizer(conv domain.UnitConverter) *Normalizer {
	return &Normalizer{conv: conv, base: NutrientBaseUoM}
}

// Base returns the canonical reference unit.
func (n *Normalizer) Base() domain.UnitOfMeasure {
	return n.base
}

// Normalize returns the fact expressed as base-unit amount of nutrient per
// base reference of product. For example 5 g per 1 kg becomes 0.5 g per
// 100 g, and 3 g per 100 mL becomes 3 g per 100 g through the density
// bridge.
func (n *Normalizer) Normalize(fact domain.NutrientFact) (domain.NutrientFact, error) {
	amount, err := n.conv.Convert(fact.QuantityAmount, n.base.Name, n.base.Type)
	if err != nil {
		return domain.NutrientFact{}, fmt.Errorf("nutrient %q amount: %w", fact.NutrientName, err)
	}
	per, err := n.conv.Convert(fact.QuantityPer, n.base.Name, n.base.Type)
	if err != nil {
		return domain.NutrientFact{}, fmt.Errorf("nutrient %q reference: %w", fact.NutrientName, err)
	}
	if per.Amount <= 0 {
		return domain.NutrientFact{}, fmt.Errorf("nutrient %q: reference amount must be positive, got %v", fact.NutrientName, fact.QuantityPer)
	}

	normalized := amount.Amount * n.base.Amount / per.Amount
	if math.IsInf(normalized, 0) || math.IsNaN(normalized) {
		return domain.NutrientFact{}, fmt.Errorf("nutrient %q: %v per %v: %w", fact.NutrientName, fact.QuantityAmount, fact.QuantityPer, domain.ErrOutOfRange)
	}

	return domain.NutrientFact{
		NutrientName:   fact.NutrientName,
		QuantityAmount: domain.UoM(normalized, n.base.Name, n.base.Type),
		QuantityPer:    n.base,
	}, nil
}
