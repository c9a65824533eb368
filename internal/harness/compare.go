package harness

import (
	"fmt"
	"math"
	"sort"

	"github.com/hammamikhairi/recipecost/internal/domain"
)

// DefaultTolerance absorbs floating point noise from unit conversion.
const DefaultTolerance = 1e-9

// Mismatch is one difference between expected and actual output.
type Mismatch struct {
	Recipe string
	Field  string
	Want   string
	Got    string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: %s: want %s, got %s", m.Recipe, m.Field, m.Want, m.Got)
}

// Report is the outcome of a comparison.
type Report struct {
	Checked    int
	Mismatches []Mismatch
}

// Passed reports whether actual matched expected.
func (r Report) Passed() bool {
	return len(r.Mismatches) == 0
}

// Compare checks every expected recipe against actual. Amounts match when
// they differ by at most tolerance, relative to the larger magnitude once
// that exceeds 1. Recipes present in actual but not expected are reported
// too.
func Compare(actual, expected domain.Summaries, tolerance float64) Report {
	c := comparer{tolerance: tolerance}

	for _, name := range expected.Names() {
		want := expected[name]
		got, ok := actual[name]
		c.report.Checked++
		if !ok {
			c.add(name, "summary", "present", "missing")
			continue
		}
		c.summary(name, want, got)
	}
	for _, name := range actual.Names() {
		if _, ok := expected[name]; !ok {
			c.add(name, "summary", "absent", "present")
		}
	}
	return c.report
}

type comparer struct {
	tolerance float64
	report    Report
}

func (c *comparer) add(recipe, field, want, got string) {
	c.report.Mismatches = append(c.report.Mismatches, Mismatch{Recipe: recipe, Field: field, Want: want, Got: got})
}

func (c *comparer) close(a, b float64) bool {
	return math.Abs(a-b) <= c.tolerance*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func (c *comparer) summary(recipe string, want, got domain.RecipeSummary) {
	if !c.close(want.CheapestCost, got.CheapestCost) {
		c.add(recipe, "cheapestCost", fmt.Sprint(want.CheapestCost), fmt.Sprint(got.CheapestCost))
	}

	names := make(map[string]bool)
	for n := range want.NutrientsAtCheapestCost {
		names[n] = true
	}
	for n := range got.NutrientsAtCheapestCost {
		names[n] = true
	}
	sorted := make([]string, 0, len(names))
	for n := range names {
		sorted = append(sorted, n)
	}
	sort.Strings(sorted)

	for _, n := range sorted {
		field := "nutrientsAtCheapestCost." + n
		w, inWant := want.NutrientsAtCheapestCost[n]
		g, inGot := got.NutrientsAtCheapestCost[n]
		switch {
		case !inGot:
			c.add(recipe, field, "present", "missing")
		case !inWant:
			c.add(recipe, field, "absent", "present")
		default:
			c.fact(recipe, field, w, g)
		}
	}
}

func (c *comparer) fact(recipe, field string, want, got domain.NutrientFact) {
	if want.NutrientName != got.NutrientName {
		c.add(recipe, field+".nutrientName", want.NutrientName, got.NutrientName)
	}
	c.uom(recipe, field+".quantityAmount", want.QuantityAmount, got.QuantityAmount)
	c.uom(recipe, field+".quantityPer", want.QuantityPer, got.QuantityPer)
}

func (c *comparer) uom(recipe, field string, want, got domain.UnitOfMeasure) {
	if want.Unit() != got.Unit() {
		c.add(recipe, field+".unit", want.Unit().String(), got.Unit().String())
	}
	if !c.close(want.Amount, got.Amount) {
		c.add(recipe, field+".uomAmount", fmt.Sprint(want.Amount), fmt.Sprint(got.Amount))
	}
}
