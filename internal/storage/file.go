package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/hammamikhairi/recipecost/internal/domain"
	"github.com/hammamikhairi/recipecost/internal/logger"
)

// Compile-time interface check.
var _ domain.SummaryBook = (*FileBook)(nil)

const entryExt = ".msgpack"

// entry is the on-disk record. The recipe name is stored alongside the
// summary since file names are hashes.
type entry struct {
	Name    string               `msgpack:"name"`
	Summary domain.RecipeSummary `msgpack:"summary"`
}

// FileBook is a two-tier summary book: an in-memory map in front of one
// msgpack file per recipe in dir. Summaries from earlier runs are read
// back from disk on demand. Safe for concurrent access.
type FileBook struct {
	mu      sync.RWMutex
	entries map[string]domain.RecipeSummary
	dir     string
	log     *logger.Logger
}

// NewFileBook creates a file-backed book rooted at dir, creating it if
// needed.
func NewFileBook(dir string, log *logger.Logger) (*FileBook, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating book dir: %w", err)
	}
	return &FileBook{
		entries: make(map[string]domain.RecipeSummary),
		dir:     dir,
		log:     log,
	}, nil
}

// Record stores a summary in memory and on disk. Overwrites if the recipe
// already has one.
func (b *FileBook) Record(ctx context.Context, name string, summary domain.RecipeSummary) error {
	data, err := msgpack.Marshal(&entry{Name: name, Summary: summary})
	if err != nil {
		return fmt.Errorf("encoding summary for %q: %w", name, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	path := b.path(name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing summary for %q: %w", name, err)
	}
	b.entries[name] = summary
	b.log.Debug("book store: %s -> %s (%d bytes)", name, filepath.Base(path), len(data))
	return nil
}

// Load returns the summary for a recipe, checking memory then disk.
func (b *FileBook) Load(ctx context.Context, name string) (domain.RecipeSummary, error) {
	b.mu.RLock()
	s, ok := b.entries[name]
	b.mu.RUnlock()
	if ok {
		return s, nil
	}

	e, err := readEntry(b.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return domain.RecipeSummary{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.RecipeSummary{}, err
	}

	// Promote for subsequent loads.
	b.mu.Lock()
	b.entries[name] = e.Summary
	b.mu.Unlock()
	b.log.Debug("book hit (disk): %s", name)
	return e.Summary, nil
}

// Delete removes the summary for a recipe from both tiers.
func (b *FileBook) Delete(ctx context.Context, name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.entries, name)
	err := os.Remove(b.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("deleting summary for %q: %w", name, err)
	}
	b.log.Debug("deleted summary %s", name)
	return nil
}

// All returns every summary on disk.
func (b *FileBook) All(ctx context.Context) (domain.Summaries, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	files, err := os.ReadDir(b.dir)
	if err != nil {
		return nil, fmt.Errorf("listing book dir: %w", err)
	}

	out := make(domain.Summaries, len(files))
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), entryExt) {
			continue
		}
		e, err := readEntry(filepath.Join(b.dir, f.Name()))
		if err != nil {
			return nil, err
		}
		out[e.Name] = e.Summary
	}
	return out, nil
}

// ── disk helpers ─────────────────────────────────────────────────

// path returns the file for a recipe: a hex SHA-256 of its name.
func (b *FileBook) path(name string) string {
	h := sha256.Sum256([]byte(name))
	return filepath.Join(b.dir, hex.EncodeToString(h[:])+entryExt)
}

func readEntry(path string) (*entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var e entry
	if err := msgpack.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return &e, nil
}
