// Package units converts quantities between units of measure.
//
// A RuleSet holds the direct conversions the system knows about. A
// Converter composes them: it searches the rule graph for the shortest
// chain of hops between two units and applies the hops in order, so
// cups reach kilograms through millilitres and grams without the chain
// being spelled out anywhere.
package units

import (
	"github.com/hammamikhairi/recipecost/internal/domain"
)

// Rule is a direct conversion: 1 From equals Factor To.
type Rule struct {
	From   domain.Unit
	To     domain.Unit
	Factor float64
}

// RuleSet is a set of direct conversions. It is read-only after
// construction and safe for concurrent use.
type RuleSet struct {
	factors map[domain.Unit]map[domain.Unit]float64
	// edges keeps insertion order so graph search is deterministic.
	edges map[domain.Unit][]domain.Unit
}

// NewRuleSet builds a rule set. A later rule for the same pair replaces
// the earlier factor.
func NewRuleSet(rules ...Rule) *RuleSet {
	rs := &RuleSet{
		factors: make(map[domain.Unit]map[domain.Unit]float64),
		edges:   make(map[domain.Unit][]domain.Unit),
	}
	for _, r := range rules {
		if rs.factors[r.From] == nil {
			rs.factors[r.From] = make(map[domain.Unit]float64)
		}
		if _, seen := rs.factors[r.From][r.To]; !seen {
			rs.edges[r.From] = append(rs.edges[r.From], r.To)
		}
		rs.factors[r.From][r.To] = r.Factor
	}
	return rs
}

var (
	grams       = domain.Unit{Name: domain.UnitGrams, Type: domain.UnitTypeMass}
	kilograms   = domain.Unit{Name: domain.UnitKilograms, Type: domain.UnitTypeMass}
	millilitres = domain.Unit{Name: domain.UnitMillilitres, Type: domain.UnitTypeVolume}
	cups        = domain.Unit{Name: domain.UnitCups, Type: domain.UnitTypeVolume}
)

// DefaultRules returns the conversions the catalog is priced against.
// Millilitres bridge to grams at a density of 1 g/mL.
func DefaultRules() *RuleSet {
	return NewRuleSet(
		Rule{From: cups, To: millilitres, Factor: 250},
		Rule{From: millilitres, To: cups, Factor: 0.004},
		Rule{From: millilitres, To: grams, Factor: 1},
		Rule{From: grams, To: millilitres, Factor: 1},
		Rule{From: grams, To: kilograms, Factor: 0.001},
		Rule{From: kilograms, To: grams, Factor: 1000},
	)
}

// Factor returns the direct factor from one unit to another.
func (rs *RuleSet) Factor(from, to domain.Unit) (float64, bool) {
	f, ok := rs.factors[from][to]
	return f, ok
}

// Neighbours returns the units directly reachable from u, in rule order.
func (rs *RuleSet) Neighbours(u domain.Unit) []domain.Unit {
	return rs.edges[u]
}

// ConvertUnits performs a single-hop conversion. Converting a unit to
// itself returns q unchanged; any other pair needs a direct rule.
func (rs *RuleSet) ConvertUnits(q domain.UnitOfMeasure, name domain.UnitName, typ domain.UnitType) (domain.UnitOfMeasure, error) {
	to := domain.Unit{Name: name, Type: typ}
	if q.Unit() == to {
		return q, nil
	}
	f, ok := rs.Factor(q.Unit(), to)
	if !ok {
		return domain.UnitOfMeasure{}, &domain.ConversionError{From: q.Unit(), To: to}
	}
	return domain.UoM(q.Amount*f, name, typ), nil
}
