// Package harness checks computed recipe summaries against an expected
// set and reports every difference.
package harness

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hammamikhairi/recipecost/internal/domain"
)

var base = domain.UoM(100, domain.UnitGrams, domain.UnitTypeMass)

func nutrient(name string, grams float64) domain.NutrientFact {
	return domain.NutrientFact{
		NutrientName:   name,
		QuantityAmount: domain.UoM(grams, domain.UnitGrams, domain.UnitTypeMass),
		QuantityPer:    base,
	}
}

// Expected returns the summaries the seeded catalog must produce.
func Expected() domain.Summaries {
	return domain.Summaries{
		// Stoneground Flour 0.75 + Raw Sugar 0.50 + Free Range Eggs 1.50 + Skim Milk 0.375.
		"Vanilla Sponge": {
			CheapestCost: 3.125,
			NutrientsAtCheapestCost: map[string]domain.NutrientFact{
				"Carbohydrate": nutrient("Carbohydrate", 174.5),
				"Fat":          nutrient("Fat", 12.1),
				"Protein":      nutrient("Protein", 28.5),
			},
		},
		// Stoneground Flour 0.375 + Skim Milk 0.75 + Free Range Eggs 1.00.
		"Pancakes": {
			CheapestCost: 2.125,
			NutrientsAtCheapestCost: map[string]domain.NutrientFact{
				"Carbohydrate": nutrient("Carbohydrate", 75),
				"Fat":          nutrient("Fat", 12.1),
				"Protein":      nutrient("Protein", 28.5),
			},
		},
	}
}

// LoadExpected reads expected summaries from a JSON file shaped like the
// engine's output.
func LoadExpected(path string) (domain.Summaries, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading expected summaries: %w", err)
	}
	var out domain.Summaries
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decoding expected summaries: %w", err)
	}
	return out, nil
}
