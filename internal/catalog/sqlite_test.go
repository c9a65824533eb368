package catalog

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/hammamikhairi/recipecost/internal/domain"
	"github.com/hammamikhairi/recipecost/internal/logger"
)

func openSeededSQLite(t *testing.T) *SQLiteSource {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	src, err := OpenSQLite(filepath.Join(t.TempDir(), "catalog.db"), log)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { src.Close() })

	if err := src.Import(context.Background(), Seed()); err != nil {
		t.Fatalf("import: %v", err)
	}
	return src
}

func TestSQLiteRecipesMatchSeed(t *testing.T) {
	src := openSeededSQLite(t)

	recipes, err := src.Recipes(context.Background())
	if err != nil {
		t.Fatalf("recipes: %v", err)
	}
	if !reflect.DeepEqual(recipes, Seed().Recipes) {
		t.Fatalf("recipes differ from seed:\n got %+v\nwant %+v", recipes, Seed().Recipes)
	}
}

func TestSQLiteProductsMatchMemory(t *testing.T) {
	src := openSeededSQLite(t)
	mem := NewMemorySource(logger.New(logger.LevelOff, nil))
	ctx := context.Background()

	for _, name := range []string{"flour", "sugar", "eggs", "milk", "saffron"} {
		t.Run(name, func(t *testing.T) {
			ingredient := domain.Ingredient{Name: name}
			got, err := src.ProductsForIngredient(ctx, ingredient)
			if err != nil {
				t.Fatalf("sqlite: %v", err)
			}
			want, _ := mem.ProductsForIngredient(ctx, ingredient)
			if len(got) != len(want) {
				t.Fatalf("expected %d candidates, got %d", len(want), len(got))
			}
			for i := range want {
				if !reflect.DeepEqual(got[i], want[i]) {
					t.Fatalf("candidate %d differs:\n got %+v\nwant %+v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestSQLiteImportReplaces(t *testing.T) {
	src := openSeededSQLite(t)
	ctx := context.Background()

	small := &domain.Snapshot{Recipes: []domain.Recipe{{
		Name: "Toast",
		LineItems: []domain.RecipeLineItem{
			{Ingredient: domain.Ingredient{Name: "bread"}, UnitOfMeasure: domain.UoM(2, domain.UnitEach, domain.UnitTypeCount)},
		},
	}}}
	if err := src.Import(ctx, small); err != nil {
		t.Fatalf("re-import: %v", err)
	}

	recipes, err := src.Recipes(ctx)
	if err != nil {
		t.Fatalf("recipes: %v", err)
	}
	if len(recipes) != 1 || recipes[0].Name != "Toast" {
		t.Fatalf("expected only Toast, got %+v", recipes)
	}
	products, _ := src.ProductsForIngredient(ctx, domain.Ingredient{Name: "flour"})
	if len(products) != 0 {
		t.Fatalf("expected old products to be cleared, got %d", len(products))
	}
}
