package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/hammamikhairi/recipecost/internal/catalog"
	"github.com/hammamikhairi/recipecost/internal/display"
	"github.com/hammamikhairi/recipecost/internal/domain"
	"github.com/hammamikhairi/recipecost/internal/engine"
	"github.com/hammamikhairi/recipecost/internal/harness"
	"github.com/hammamikhairi/recipecost/internal/logger"
	"github.com/hammamikhairi/recipecost/internal/storage"
	"github.com/hammamikhairi/recipecost/internal/units"
)

var (
	errMismatch  = errors.New("summaries do not match the expected set")
	errNoBookDir = errors.New("--book-dir is required")
)

// setupLogger builds the logger from the verbosity flags. The returned
// func closes the log file, if one was opened.
func setupLogger(c *cli.Context) (*logger.Logger, func()) {
	level := logger.LevelNormal
	if c.Bool("verbose") {
		level = logger.LevelVerbose
	}
	if c.Bool("quiet") {
		level = logger.LevelOff
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	if path := c.String("log-file"); path != "" && path != "stderr" {
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", path, err)
		} else {
			out = f
			closeFn = func() { f.Close() }
		}
	}
	return logger.New(level, out), closeFn
}

// loadSnapshot reads --catalog, or returns the built-in catalog.
func loadSnapshot(c *cli.Context, log *logger.Logger) (*domain.Snapshot, error) {
	path := c.String("catalog")
	if path == "" {
		log.Debug("using built-in catalog")
		return catalog.Seed(), nil
	}
	snap, err := catalog.LoadFile(path)
	if err != nil {
		return nil, err
	}
	log.Info("loaded catalog %s: %d recipes, %d products", path, len(snap.Recipes), len(snap.Products))
	return snap, nil
}

// openCatalog serves the snapshot from memory, or from SQLite when
// --sqlite is set.
func openCatalog(c *cli.Context, snap *domain.Snapshot, log *logger.Logger) (domain.Catalog, func(), error) {
	path := c.String("sqlite")
	if path == "" {
		src, err := catalog.FromSnapshot(snap, log)
		if err != nil {
			return nil, nil, err
		}
		return src, func() {}, nil
	}

	src, err := catalog.OpenSQLite(path, log)
	if err != nil {
		return nil, nil, err
	}
	if err := src.Import(c.Context, snap); err != nil {
		src.Close()
		return nil, nil, err
	}
	return src, func() { src.Close() }, nil
}

// openBook returns the book summaries are recorded in: a directory of
// files when --book-dir is set, memory otherwise.
func openBook(c *cli.Context, log *logger.Logger) (domain.SummaryBook, error) {
	if dir := c.String("book-dir"); dir != "" {
		return storage.NewFileBook(dir, log)
	}
	return storage.NewMemoryBook(log), nil
}

// expectedSummaries returns what the run is checked against: --expected
// when set, the built-in expectations for the built-in catalog, or nil to
// skip the comparison.
func expectedSummaries(c *cli.Context) (domain.Summaries, error) {
	if path := c.String("expected"); path != "" {
		return harness.LoadExpected(path)
	}
	if c.String("catalog") == "" {
		return harness.Expected(), nil
	}
	return nil, nil
}

func runCost(c *cli.Context) error {
	log, closeLog := setupLogger(c)
	defer closeLog()

	snap, err := loadSnapshot(c, log)
	if err != nil {
		return err
	}
	cat, closeCat, err := openCatalog(c, snap, log)
	if err != nil {
		return err
	}
	defer closeCat()

	book, err := openBook(c, log)
	if err != nil {
		return err
	}
	conv := units.NewConverter(units.DefaultRules(), log)
	eng := engine.New(cat, conv, log, engine.WithBook(book))

	out := c.App.Writer
	run, costErr := eng.CostAll(c.Context)
	if run == nil {
		return costErr
	}

	summaries := run.Summaries

	if c.Bool("json") {
		data, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding summaries: %w", err)
		}
		fmt.Fprintln(out, string(data))
	} else {
		width := display.TermWidth()
		fmt.Fprint(out, display.RenderBanner(width))
		fmt.Fprint(out, display.RenderRun(run, width))
	}

	if costErr != nil {
		return costErr
	}

	expected, err := expectedSummaries(c)
	if err != nil {
		return err
	}
	if expected == nil {
		log.Debug("no expected summaries, skipping comparison")
		return nil
	}

	report := harness.Compare(summaries, expected, c.Float64("tolerance"))
	if !c.Bool("json") {
		fmt.Fprint(out, display.RenderReport(report))
	}
	if !report.Passed() {
		for _, m := range report.Mismatches {
			log.Error("%s", m)
		}
		return errMismatch
	}
	return nil
}

func runExport(c *cli.Context) error {
	log, closeLog := setupLogger(c)
	defer closeLog()

	loaded, err := loadSnapshot(c, log)
	if err != nil {
		return err
	}
	src, err := catalog.FromSnapshot(loaded, log)
	if err != nil {
		return err
	}
	snap := src.Snapshot()

	path := c.String("out")
	if err := catalog.WriteFile(path, snap); err != nil {
		return err
	}
	log.Info("wrote catalog to %s", path)
	fmt.Fprintf(c.App.Writer, "wrote %d recipes and %d products to %s\n", len(snap.Recipes), len(snap.Products), path)
	return nil
}

func runBook(c *cli.Context) error {
	log, closeLog := setupLogger(c)
	defer closeLog()

	dir := c.String("book-dir")
	if dir == "" {
		return errNoBookDir
	}
	book, err := storage.NewFileBook(dir, log)
	if err != nil {
		return err
	}
	summaries, err := book.All(c.Context)
	if err != nil {
		return err
	}
	log.Debug("book %s: %d summaries", dir, len(summaries))

	if c.Bool("json") {
		data, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding summaries: %w", err)
		}
		fmt.Fprintln(c.App.Writer, string(data))
		return nil
	}
	fmt.Fprint(c.App.Writer, display.RenderSummaries(summaries, display.TermWidth()))
	return nil
}
