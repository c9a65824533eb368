// recipecost prices every recipe in a catalog at its cheapest supplier
// offers and totals the nutrients of the chosen products.
//
// Usage:
//
//	recipecost [--catalog file] [--sqlite db] [--expected file] [--json] [--verbose|--quiet]
//	recipecost --book-dir dir book
//	recipecost export --out catalog.json
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/hammamikhairi/recipecost/internal/harness"
)

func main() {
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "recipecost",
		Usage: "cheapest-offer costing and nutrient totals for recipes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "catalog",
				Usage:   "catalog snapshot to load (.json, .msgpack or .mp); the built-in catalog when empty",
				EnvVars: []string{"RECIPECOST_CATALOG"},
			},
			&cli.StringFlag{
				Name:    "sqlite",
				Usage:   "import the catalog into this SQLite database and cost from it",
				EnvVars: []string{"RECIPECOST_SQLITE"},
			},
			&cli.StringFlag{
				Name:    "book-dir",
				Usage:   "persist every summary under this directory",
				EnvVars: []string{"RECIPECOST_BOOK_DIR"},
			},
			&cli.StringFlag{
				Name:    "expected",
				Usage:   "JSON file of expected summaries to compare against",
				EnvVars: []string{"RECIPECOST_EXPECTED"},
			},
			&cli.Float64Flag{
				Name:  "tolerance",
				Value: harness.DefaultTolerance,
				Usage: "largest difference accepted when comparing amounts",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print summaries as JSON",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable verbose/debug logging",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "disable all logging",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "file to write logs to (stderr when empty)",
			},
		},
		Action: runCost,
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "cost every recipe, print the summaries and compare them",
				Action: runCost,
			},
			{
				Name:   "book",
				Usage:  "list the summaries recorded under --book-dir",
				Action: runBook,
			},
			{
				Name:  "export",
				Usage: "write the catalog to a snapshot file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "out",
						Aliases:  []string{"o"},
						Usage:    "destination file (.json, .msgpack or .mp)",
						Required: true,
					},
				},
				Action: runExport,
			},
		},
	}
}
