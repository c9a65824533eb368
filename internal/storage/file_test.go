package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hammamikhairi/recipecost/internal/domain"
	"github.com/hammamikhairi/recipecost/internal/logger"
)

func summary(cost float64) domain.RecipeSummary {
	per := domain.UoM(100, domain.UnitGrams, domain.UnitTypeMass)
	return domain.RecipeSummary{
		CheapestCost: cost,
		NutrientsAtCheapestCost: map[string]domain.NutrientFact{
			"Fat": {
				NutrientName:   "Fat",
				QuantityAmount: domain.UoM(12.1, domain.UnitGrams, domain.UnitTypeMass),
				QuantityPer:    per,
			},
		},
	}
}

func TestFileBookCRUD(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	book, err := NewFileBook(filepath.Join(t.TempDir(), "book"), log)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ctx := context.Background()

	if err := book.Record(ctx, "Pancakes", summary(2.125)); err != nil {
		t.Fatalf("record: %v", err)
	}

	loaded, err := book.Load(ctx, "Pancakes")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.CheapestCost != 2.125 || loaded.NutrientsAtCheapestCost["Fat"].QuantityAmount.Amount != 12.1 {
		t.Fatalf("unexpected summary: %+v", loaded)
	}

	if _, err := book.Load(ctx, "nonexistent"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := book.Delete(ctx, "Pancakes"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := book.Load(ctx, "Pancakes"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := book.Delete(ctx, "Pancakes"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFileBookPersists(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewFileBook(dir, log)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	first.Record(ctx, "Pancakes", summary(1))
	first.Record(ctx, "Pancakes", summary(2.125))
	first.Record(ctx, "Vanilla Sponge", summary(3.125))

	// A stray file in the directory is ignored.
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644)

	second, err := NewFileBook(dir, log)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}

	loaded, err := second.Load(ctx, "Vanilla Sponge")
	if err != nil {
		t.Fatalf("load from disk: %v", err)
	}
	if loaded.CheapestCost != 3.125 {
		t.Fatalf("expected 3.125, got %g", loaded.CheapestCost)
	}

	all, err := second.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(all))
	}
	if all["Pancakes"].CheapestCost != 2.125 {
		t.Fatalf("expected the later summary to win, got %g", all["Pancakes"].CheapestCost)
	}
}
