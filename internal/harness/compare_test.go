package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hammamikhairi/recipecost/internal/domain"
)

func TestCompareIdentical(t *testing.T) {
	report := Compare(Expected(), Expected(), DefaultTolerance)
	if !report.Passed() {
		t.Fatalf("expected pass, got %v", report.Mismatches)
	}
	if report.Checked != 2 {
		t.Fatalf("expected 2 recipes checked, got %d", report.Checked)
	}
}

func TestCompareToleratesFloatNoise(t *testing.T) {
	actual := Expected()
	s := actual["Vanilla Sponge"]
	s.CheapestCost = 0.75000000000000011 + 0.5 + 1.5 + 0.375
	actual["Vanilla Sponge"] = s

	if report := Compare(actual, Expected(), DefaultTolerance); !report.Passed() {
		t.Fatalf("expected pass, got %v", report.Mismatches)
	}
}

func TestCompareReportsDifferences(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(s domain.Summaries)
		wantField string
	}{
		{
			"missing recipe",
			func(s domain.Summaries) { delete(s, "Pancakes") },
			"summary",
		},
		{
			"extra recipe",
			func(s domain.Summaries) { s["Toast"] = domain.RecipeSummary{} },
			"summary",
		},
		{
			"cost",
			func(s domain.Summaries) {
				v := s["Pancakes"]
				v.CheapestCost = 2.5
				s["Pancakes"] = v
			},
			"cheapestCost",
		},
		{
			"missing nutrient",
			func(s domain.Summaries) {
				v := s["Pancakes"]
				v.NutrientsAtCheapestCost = map[string]domain.NutrientFact{
					"Carbohydrate": v.NutrientsAtCheapestCost["Carbohydrate"],
					"Fat":          v.NutrientsAtCheapestCost["Fat"],
				}
				s["Pancakes"] = v
			},
			"nutrientsAtCheapestCost.Protein",
		},
		{
			"nutrient amount",
			func(s domain.Summaries) {
				v := s["Pancakes"]
				fat := v.NutrientsAtCheapestCost["Fat"]
				fat.QuantityAmount.Amount = 13
				v.NutrientsAtCheapestCost = map[string]domain.NutrientFact{
					"Carbohydrate": v.NutrientsAtCheapestCost["Carbohydrate"],
					"Fat":          fat,
					"Protein":      v.NutrientsAtCheapestCost["Protein"],
				}
				s["Pancakes"] = v
			},
			"nutrientsAtCheapestCost.Fat.quantityAmount.uomAmount",
		},
		{
			"nutrient unit",
			func(s domain.Summaries) {
				v := s["Pancakes"]
				fat := v.NutrientsAtCheapestCost["Fat"]
				fat.QuantityPer = domain.UoM(100, domain.UnitMillilitres, domain.UnitTypeVolume)
				v.NutrientsAtCheapestCost = map[string]domain.NutrientFact{
					"Carbohydrate": v.NutrientsAtCheapestCost["Carbohydrate"],
					"Fat":          fat,
					"Protein":      v.NutrientsAtCheapestCost["Protein"],
				}
				s["Pancakes"] = v
			},
			"nutrientsAtCheapestCost.Fat.quantityPer.unit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := Expected()
			tt.mutate(actual)

			report := Compare(actual, Expected(), DefaultTolerance)
			if report.Passed() {
				t.Fatal("expected failure")
			}
			found := false
			for _, m := range report.Mismatches {
				if m.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected a mismatch on %s, got %v", tt.wantField, report.Mismatches)
			}
		})
	}
}

func TestLoadExpected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expected.json")
	body := `{
		"Toast": {
			"cheapestCost": 1.5,
			"nutrientsAtCheapestCost": {
				"Fat": {
					"nutrientName": "Fat",
					"quantityAmount": {"uomAmount": 2, "uomName": "grams", "uomType": "mass"},
					"quantityPer": {"uomAmount": 100, "uomName": "grams", "uomType": "mass"}
				}
			}
		}
	}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := LoadExpected(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	fat := got["Toast"].NutrientsAtCheapestCost["Fat"]
	if got["Toast"].CheapestCost != 1.5 || fat.QuantityAmount.Amount != 2 || fat.QuantityPer != base {
		t.Fatalf("unexpected summary: %+v", got["Toast"])
	}

	if _, err := LoadExpected(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestMismatchString(t *testing.T) {
	m := Mismatch{Recipe: "Pancakes", Field: "cheapestCost", Want: "2.125", Got: "2.5"}
	if s := m.String(); !strings.Contains(s, "Pancakes") || !strings.Contains(s, "2.5") {
		t.Fatalf("unexpected string %q", s)
	}
}
