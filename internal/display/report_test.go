package display

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/hammamikhairi/recipecost/internal/catalog"
	"github.com/hammamikhairi/recipecost/internal/domain"
	"github.com/hammamikhairi/recipecost/internal/engine"
	"github.com/hammamikhairi/recipecost/internal/harness"
	"github.com/hammamikhairi/recipecost/internal/logger"
	"github.com/hammamikhairi/recipecost/internal/units"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{3.125, "3.1250"},
		{0, "0.0000"},
		{0.75000000000000011, "0.7500"},
	}
	for _, tt := range tests {
		if got := Money(tt.in); got != tt.want {
			t.Errorf("Money(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderSummaries(t *testing.T) {
	out := RenderSummaries(harness.Expected(), 40)

	for _, want := range []string{"Pancakes", "Vanilla Sponge", "3.1250", "2.1250", "Carbohydrate", "174.5"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Pancakes") > strings.Index(out, "Vanilla Sponge") {
		t.Error("recipes not in name order")
	}
}

func TestRenderRun(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	eng := engine.New(catalog.NewMemorySource(log), units.NewConverter(units.DefaultRules(), log), log)

	run, err := eng.CostAll(context.Background())
	if err != nil {
		t.Fatalf("cost all: %v", err)
	}

	out := RenderRun(run, 40)
	for _, want := range []string{run.ID, "Stoneground Flour 10kg", "Bulk Barn / Skim 2L", "0.3750"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderReport(t *testing.T) {
	pass := RenderReport(harness.Report{Checked: 2})
	if !strings.Contains(pass, "PASS") {
		t.Fatalf("expected PASS, got %q", pass)
	}

	fail := RenderReport(harness.Report{
		Checked:    2,
		Mismatches: []harness.Mismatch{{Recipe: "Pancakes", Field: "cheapestCost", Want: "2.125", Got: "2.5"}},
	})
	if !strings.Contains(fail, "FAIL") || !strings.Contains(fail, "Pancakes: cheapestCost") {
		t.Fatalf("unexpected report %q", fail)
	}
}

func TestRenderBanner(t *testing.T) {
	out := RenderBanner(120)
	if lines := strings.Count(out, "\n"); lines != 5 {
		t.Fatalf("expected 5 banner lines, got %d", lines)
	}
	if !strings.HasPrefix(out, "    ") {
		t.Fatal("expected banner to be centred")
	}
}

func TestRenderNonFinite(t *testing.T) {
	if got := Money(math.Inf(1)); got != "+Inf" {
		t.Fatalf("Money(+Inf) = %q", got)
	}
	if got := Money(math.NaN()); got != "NaN" {
		t.Fatalf("Money(NaN) = %q", got)
	}

	summaries := domain.Summaries{
		"Excess": {
			CheapestCost: math.Inf(1),
			NutrientsAtCheapestCost: map[string]domain.NutrientFact{
				"Sodium": {
					NutrientName:   "Sodium",
					QuantityAmount: domain.UoM(math.Inf(1), domain.UnitGrams, domain.UnitTypeMass),
					QuantityPer:    domain.UoM(100, domain.UnitGrams, domain.UnitTypeMass),
				},
			},
		},
	}
	out := RenderSummaries(summaries, 40)
	if !strings.Contains(out, "Excess") || !strings.Contains(out, "+Inf") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}
