// Package catalog provides catalog source implementations: the seeded
// in-memory fixture, snapshot files, and SQLite.
package catalog

import (
	"context"
	"fmt"

	"github.com/hammamikhairi/recipecost/internal/domain"
	"github.com/hammamikhairi/recipecost/internal/logger"
)

// Compile-time interface check.
var _ domain.Catalog = (*MemorySource)(nil)

// MemorySource holds a catalog in memory. It is never modified after
// FromSnapshot and every accessor returns copies, so it is safe for
// concurrent use without locking.
type MemorySource struct {
	recipes  []domain.Recipe
	all      []domain.Product
	products map[string][]domain.Product // ingredient name -> candidates, catalog order
	log      *logger.Logger
}

// NewMemorySource creates a catalog preloaded with the built-in fixture.
func NewMemorySource(log *logger.Logger) *MemorySource {
	src, err := FromSnapshot(Seed(), log)
	if err != nil {
		// The fixture is part of the binary; failing here is a programming error.
		panic(fmt.Sprintf("seed catalog is invalid: %v", err))
	}
	return src
}

// FromSnapshot builds a catalog from a snapshot after validating it.
func FromSnapshot(snap *domain.Snapshot, log *logger.Logger) (*MemorySource, error) {
	if err := domain.Validate(snap); err != nil {
		return nil, err
	}

	src := &MemorySource{
		products: make(map[string][]domain.Product),
		log:      log,
	}
	seen := make(map[string]bool, len(snap.Recipes))
	for _, r := range snap.Recipes {
		if seen[r.Name] {
			return nil, fmt.Errorf("%w: duplicate recipe %q", domain.ErrInvalidCatalog, r.Name)
		}
		seen[r.Name] = true
		src.recipes = append(src.recipes, r)
	}
	for _, p := range snap.Products {
		src.products[p.IngredientName] = append(src.products[p.IngredientName], p)
	}
	src.all = append(src.all, snap.Products...)

	log.Debug("loaded catalog: %d recipes, %d products", len(src.recipes), len(src.all))
	return src, nil
}

// Recipes returns every recipe in catalog order.
func (s *MemorySource) Recipes(ctx context.Context) ([]domain.Recipe, error) {
	out := make([]domain.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out, nil
}

// ProductsForIngredient returns the candidates for an ingredient in
// catalog order. An unknown ingredient has no candidates.
func (s *MemorySource) ProductsForIngredient(ctx context.Context, ingredient domain.Ingredient) ([]domain.Product, error) {
	candidates := s.products[ingredient.Name]
	s.log.Debug("ingredient %q: %d candidates", ingredient.Name, len(candidates))

	out := make([]domain.Product, len(candidates))
	copy(out, candidates)
	return out, nil
}

// Snapshot returns a copy of the full catalog, recipes and products in
// catalog order.
func (s *MemorySource) Snapshot() *domain.Snapshot {
	snap := &domain.Snapshot{
		Recipes:  make([]domain.Recipe, len(s.recipes)),
		Products: make([]domain.Product, len(s.all)),
	}
	copy(snap.Recipes, s.recipes)
	copy(snap.Products, s.all)
	return snap
}
