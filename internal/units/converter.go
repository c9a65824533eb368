package units

import (
	"sync"

	"github.com/hammamikhairi/recipecost/internal/domain"
	"github.com/hammamikhairi/recipecost/internal/logger"
)

// Compile-time interface check.
var _ domain.UnitConverter = (*Converter)(nil)

// Converter converts between any two units connected by a chain of rules.
// Resolved chains are cached. Safe for concurrent use.
type Converter struct {
	rules *RuleSet
	log   *logger.Logger

	mu    sync.RWMutex
	paths map[[2]domain.Unit][]domain.Unit
}

// NewConverter creates a converter over the given rules.
func NewConverter(rules *RuleSet, log *logger.Logger) *Converter {
	return &Converter{
		rules: rules,
		log:   log,
		paths: make(map[[2]domain.Unit][]domain.Unit),
	}
}

// Convert translates q into the target unit. Every hop of the resolved
// chain goes through RuleSet.ConvertUnits, so a chain is exactly the
// composition of its single-hop conversions. Fails with an error wrapping
// domain.ErrNoConversionPath when no chain exists; no partial result is
// returned.
func (c *Converter) Convert(q domain.UnitOfMeasure, name domain.UnitName, typ domain.UnitType) (domain.UnitOfMeasure, error) {
	path, err := c.Path(q.Unit(), domain.Unit{Name: name, Type: typ})
	if err != nil {
		return domain.UnitOfMeasure{}, err
	}

	out := q
	for _, hop := range path[1:] {
		out, err = c.rules.ConvertUnits(out, hop.Name, hop.Type)
		if err != nil {
			return domain.UnitOfMeasure{}, err
		}
	}
	return out, nil
}

// Path returns the shortest chain of units from one unit to another,
// both ends included. A unit's path to itself is just that unit.
func (c *Converter) Path(from, to domain.Unit) ([]domain.Unit, error) {
	if from == to {
		return []domain.Unit{from}, nil
	}

	key := [2]domain.Unit{from, to}
	c.mu.RLock()
	path, ok := c.paths[key]
	c.mu.RUnlock()
	if ok {
		if path == nil {
			return nil, &domain.ConversionError{From: from, To: to}
		}
		return path, nil
	}

	path = c.search(from, to)

	c.mu.Lock()
	c.paths[key] = path
	c.mu.Unlock()

	if path == nil {
		c.log.Debug("no conversion path %s -> %s", from, to)
		return nil, &domain.ConversionError{From: from, To: to}
	}
	c.log.Debug("resolved conversion path %s -> %s in %d hops", from, to, len(path)-1)
	return path, nil
}

// search runs a breadth-first search over the rule graph. Neighbours are
// visited in rule order, so equal-length chains resolve the same way on
// every run. Returns nil when to is unreachable.
func (c *Converter) search(from, to domain.Unit) []domain.Unit {
	prev := map[domain.Unit]domain.Unit{}
	visited := map[domain.Unit]bool{from: true}
	queue := []domain.Unit{from}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, next := range c.rules.Neighbours(cur) {
			if visited[next] {
				continue
			}
			visited[next] = true
			prev[next] = cur
			if next == to {
				return walkBack(prev, from, to)
			}
			queue = append(queue, next)
		}
	}
	return nil
}

func walkBack(prev map[domain.Unit]domain.Unit, from, to domain.Unit) []domain.Unit {
	var rev []domain.Unit
	for u := to; u != from; u = prev[u] {
		rev = append(rev, u)
	}
	rev = append(rev, from)

	path := make([]domain.Unit, len(rev))
	for i, u := range rev {
		path[len(rev)-1-i] = u
	}
	return path
}
