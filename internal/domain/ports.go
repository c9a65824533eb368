package domain

import "context"

// Catalog provides recipes and the candidate products for an ingredient.
// Implementations can be in-memory (seeded), file-based, or SQLite-backed.
// Product order is catalog-defined and decides ties between equal costs.
type Catalog interface {
	Recipes(ctx context.Context) ([]Recipe, error)
	ProductsForIngredient(ctx context.Context, ingredient Ingredient) ([]Product, error)
}

// UnitConverter translates a quantity into another unit. It fails with an
// error wrapping ErrNoConversionPath when the units cannot be bridged.
type UnitConverter interface {
	Convert(q UnitOfMeasure, name UnitName, typ UnitType) (UnitOfMeasure, error)
}

// NutrientNormalizer rewrites a nutrient fact into the canonical base unit
// so facts from different products can be summed.
type NutrientNormalizer interface {
	Normalize(fact NutrientFact) (NutrientFact, error)
	Base() UnitOfMeasure
}

// SummaryBook records recipe summaries by name. Recording a name again
// replaces the earlier summary.
type SummaryBook interface {
	Record(ctx context.Context, name string, summary RecipeSummary) error
	Load(ctx context.Context, name string) (RecipeSummary, error)
	Delete(ctx context.Context, name string) error
	All(ctx context.Context) (Summaries, error)
}
