// Package engine implements recipe costing: choosing the cheapest supplier
// offer for every line item and summarising cost and nutrients.
package engine

import (
	"context"
	"fmt"

	"github.com/hammamikhairi/recipecost/internal/domain"
	"github.com/hammamikhairi/recipecost/internal/logger"
	"github.com/hammamikhairi/recipecost/internal/nutrition"
)

// Option configures the engine.
type Option func(*Engine)

// WithNormalizer replaces the nutrient normalizer. The default normalises
// to nutrition.NutrientBaseUoM with the engine's converter.
func WithNormalizer(n domain.NutrientNormalizer) Option {
	return func(e *Engine) {
		e.normalizer = n
	}
}

// WithBook records every successfully costed recipe in book.
func WithBook(book domain.SummaryBook) Option {
	return func(e *Engine) {
		e.book = book
	}
}

// Engine costs recipes. It depends only on interfaces and is fully
// testable with in-memory catalogs. The engine is synchronous; it holds
// no per-run state, so one Engine may serve several callers.
type Engine struct {
	catalog    domain.Catalog
	converter  domain.UnitConverter
	normalizer domain.NutrientNormalizer
	book       domain.SummaryBook
	log        *logger.Logger
}

// New creates a costing engine with the given dependencies and options.
func New(catalog domain.Catalog, converter domain.UnitConverter, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		catalog:   catalog,
		converter: converter,
		log:       log,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.normalizer == nil {
		e.normalizer = nutrition.NewNormalizer(converter)
	}
	return e
}

// RecipeCost is the outcome of costing one recipe.
type RecipeCost struct {
	Recipe     string
	Selections []domain.Selection // one per line item, in line-item order
	Summary    domain.RecipeSummary
}

// Run is the outcome of costing every recipe in the catalog.
type Run struct {
	ID        string
	Costs     []*RecipeCost
	Summaries domain.Summaries
}

// CostRecipe chooses the cheapest offer for each line item and summarises
// the result. A line item no candidate can cost fails the whole recipe with
// a *domain.UnresolvableIngredientError; no partial summary is produced.
func (e *Engine) CostRecipe(ctx context.Context, recipe domain.Recipe) (*RecipeCost, error) {
	selections := make([]domain.Selection, 0, len(recipe.LineItems))
	for _, item := range recipe.LineItems {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sel, err := e.resolveLineItem(ctx, recipe, item)
		if err != nil {
			return nil, err
		}
		selections = append(selections, sel)
	}

	summary, err := e.Summarize(recipe, selections)
	if err != nil {
		return nil, err
	}

	if e.book != nil {
		if err := e.book.Record(ctx, recipe.Name, summary); err != nil {
			return nil, fmt.Errorf("recording summary for %q: %w", recipe.Name, err)
		}
	}

	e.log.Info("costed recipe %q: %d line items, cheapest cost %.4f", recipe.Name, len(selections), summary.CheapestCost)
	return &RecipeCost{Recipe: recipe.Name, Selections: selections, Summary: summary}, nil
}

// CostAll costs every catalog recipe in order. Processing stops at the
// first failing recipe: the returned run holds the recipes costed before
// it, and the error names the recipe and ingredient.
func (e *Engine) CostAll(ctx context.Context) (*Run, error) {
	recipes, err := e.catalog.Recipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting recipes: %w", err)
	}

	run := &Run{
		ID:        newRunID(),
		Summaries: make(domain.Summaries, len(recipes)),
	}
	log := e.log.With("run", run.ID)
	log.Debug("costing %d recipes", len(recipes))

	for _, recipe := range recipes {
		cost, err := e.CostRecipe(ctx, recipe)
		if err != nil {
			log.Error("costing recipe %q: %v", recipe.Name, err)
			return run, err
		}
		run.Costs = append(run.Costs, cost)
		run.Summaries[recipe.Name] = cost.Summary
	}

	log.Debug("run complete: %d summaries", len(run.Summaries))
	return run, nil
}

// resolveLineItem selects the cheapest offer for item, failing when no
// candidate yields a cost.
func (e *Engine) resolveLineItem(ctx context.Context, recipe domain.Recipe, item domain.RecipeLineItem) (domain.Selection, error) {
	choice, err := e.SelectCheapest(ctx, item)
	if err != nil {
		return domain.Selection{}, fmt.Errorf("recipe %q: %w", recipe.Name, err)
	}
	if choice.Product == nil {
		return domain.Selection{}, &domain.UnresolvableIngredientError{
			Recipe:     recipe.Name,
			Ingredient: item.Ingredient.Name,
		}
	}

	e.log.Debug("%s %s: chose %q offer %d at %.4f",
		item.UnitOfMeasure, item.Ingredient.Name, choice.Product.Name, choice.SupplierIndex, choice.Cost)
	return domain.Selection{
		Product:       *choice.Product,
		SupplierIndex: choice.SupplierIndex,
		Cost:          choice.Cost,
	}, nil
}
