// Package display renders costing results for the terminal with lipgloss.
package display

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/hammamikhairi/recipecost/internal/domain"
	"github.com/hammamikhairi/recipecost/internal/engine"
	"github.com/hammamikhairi/recipecost/internal/harness"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	// BannerStyle is muted slate for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// Recipe headers.
	recipeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0")).
			Bold(true)

	costStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	// Hints and metadata.
	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	passStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	sepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))
)

// Money formats a cost with four decimal places. Infinities and NaN are
// printed as is.
func Money(v float64) string {
	if !isFinite(v) {
		return fmt.Sprint(v)
	}
	return decimal.NewFromFloat(v).StringFixed(4)
}

func grams(v float64) string {
	if !isFinite(v) {
		return fmt.Sprint(v)
	}
	return decimal.NewFromFloat(v).Round(4).String()
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

func rule(width int) string {
	if width <= 0 {
		width = TermWidth()
	}
	if width > 60 {
		width = 60
	}
	return sepStyle.Render(strings.Repeat("─", width))
}

// RenderSummaries lists every summary in recipe-name order.
func RenderSummaries(summaries domain.Summaries, width int) string {
	var b strings.Builder
	for _, name := range summaries.Names() {
		writeSummary(&b, name, summaries[name])
		b.WriteString(rule(width))
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderRun lists every costed recipe with the offer chosen for each line
// item, followed by its summary.
func RenderRun(run *engine.Run, width int) string {
	var b strings.Builder
	b.WriteString(secondaryStyle.Render("run " + run.ID))
	b.WriteByte('\n')
	b.WriteString(rule(width))
	b.WriteByte('\n')

	for _, cost := range run.Costs {
		writeSummary(&b, cost.Recipe, cost.Summary)
		b.WriteString(secondaryStyle.Render("  chosen offers:"))
		b.WriteByte('\n')
		for _, sel := range cost.Selections {
			offer := sel.Offer()
			line := fmt.Sprintf("    %-20s %-28s %s", sel.Product.IngredientName,
				offer.SupplierName+" / "+offer.SupplierProductName, Money(sel.Cost))
			b.WriteString(primaryStyle.Render(line))
			b.WriteByte('\n')
		}
		b.WriteString(rule(width))
		b.WriteByte('\n')
	}
	return b.String()
}

func writeSummary(b *strings.Builder, name string, s domain.RecipeSummary) {
	b.WriteString(recipeStyle.Render(name))
	b.WriteString("  ")
	b.WriteString(costStyle.Render(Money(s.CheapestCost)))
	b.WriteByte('\n')

	for _, fact := range s.SortedNutrients() {
		line := fmt.Sprintf("  %-16s %s %s per %s", fact.NutrientName,
			grams(fact.QuantityAmount.Amount), fact.QuantityAmount.Name, fact.QuantityPer)
		b.WriteString(primaryStyle.Render(line))
		b.WriteByte('\n')
	}
}

// RenderReport renders a comparison outcome: a single pass line, or one
// line per mismatch.
func RenderReport(r harness.Report) string {
	if r.Passed() {
		return passStyle.Render(fmt.Sprintf("PASS  %d recipes match", r.Checked)) + "\n"
	}

	var b strings.Builder
	b.WriteString(failStyle.Render(fmt.Sprintf("FAIL  %d mismatches across %d recipes", len(r.Mismatches), r.Checked)))
	b.WriteByte('\n')
	for _, m := range r.Mismatches {
		b.WriteString(failStyle.Render("  " + m.String()))
		b.WriteByte('\n')
	}
	return b.String()
}
