// Package storage provides summary book implementations.
package storage

import (
	"context"
	"sync"

	"github.com/hammamikhairi/recipecost/internal/domain"
	"github.com/hammamikhairi/recipecost/internal/logger"
)

// Compile-time interface check.
var _ domain.SummaryBook = (*MemoryBook)(nil)

// MemoryBook is an in-memory summary book. Safe for concurrent access.
type MemoryBook struct {
	mu        sync.RWMutex
	summaries domain.Summaries
	log       *logger.Logger
}

// NewMemoryBook creates an empty in-memory summary book.
func NewMemoryBook(log *logger.Logger) *MemoryBook {
	return &MemoryBook{
		summaries: make(domain.Summaries),
		log:       log,
	}
}

// Record stores a summary. Overwrites if the recipe already has one.
func (b *MemoryBook) Record(ctx context.Context, name string, summary domain.RecipeSummary) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.summaries[name]; ok {
		b.log.Debug("replacing summary for %q", name)
	}
	b.summaries[name] = summary
	return nil
}

// Load retrieves the summary for a recipe.
func (b *MemoryBook) Load(ctx context.Context, name string) (domain.RecipeSummary, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	s, ok := b.summaries[name]
	if !ok {
		b.log.Debug("summary not found: %s", name)
		return domain.RecipeSummary{}, domain.ErrNotFound
	}
	return s, nil
}

// Delete removes the summary for a recipe.
func (b *MemoryBook) Delete(ctx context.Context, name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.summaries[name]; !ok {
		return domain.ErrNotFound
	}
	delete(b.summaries, name)
	b.log.Debug("deleted summary %s", name)
	return nil
}

// All returns a copy of every recorded summary.
func (b *MemoryBook) All(ctx context.Context) (domain.Summaries, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make(domain.Summaries, len(b.summaries))
	for name, s := range b.summaries {
		out[name] = s
	}
	return out, nil
}
