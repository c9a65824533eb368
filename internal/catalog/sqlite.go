package catalog

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hammamikhairi/recipecost/internal/domain"
	"github.com/hammamikhairi/recipecost/internal/logger"
)

// Compile-time interface check.
var _ domain.Catalog = (*SQLiteSource)(nil)

// SQLiteSource reads a catalog from a SQLite database. Position columns
// keep recipes, line items, products and offers in catalog order.
type SQLiteSource struct {
	db  *sql.DB
	log *logger.Logger
}

// OpenSQLite opens (or creates) a catalog database and ensures the schema.
func OpenSQLite(path string, log *logger.Logger) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	src := &SQLiteSource{db: db, log: log}
	if err := src.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialising schema: %w", err)
	}
	return src, nil
}

// Close releases the database handle.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

func (s *SQLiteSource) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS recipes (
			name TEXT PRIMARY KEY,
			position INTEGER
		);`,
		`CREATE TABLE IF NOT EXISTS line_items (
			recipe_name TEXT,
			position INTEGER,
			ingredient TEXT,
			amount REAL,
			uom_name TEXT,
			uom_type TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS products (
			id INTEGER PRIMARY KEY,
			ingredient TEXT,
			name TEXT,
			brand TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS supplier_products (
			product_id INTEGER,
			position INTEGER,
			supplier TEXT,
			name TEXT,
			price REAL,
			amount REAL,
			uom_name TEXT,
			uom_type TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS nutrient_facts (
			product_id INTEGER,
			position INTEGER,
			nutrient TEXT,
			amount REAL,
			amount_name TEXT,
			amount_type TEXT,
			per REAL,
			per_name TEXT,
			per_type TEXT
		);`,
		`CREATE INDEX IF NOT EXISTS products_ingredient ON products (ingredient, id);`,
	}
	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// Import replaces the stored catalog with snap in a single transaction.
func (s *SQLiteSource) Import(ctx context.Context, snap *domain.Snapshot) error {
	if err := domain.Validate(snap); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning import: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"recipes", "line_items", "products", "supplier_products", "nutrient_facts"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for i, r := range snap.Recipes {
		if _, err := tx.ExecContext(ctx, `INSERT INTO recipes (name, position) VALUES (?, ?)`, r.Name, i); err != nil {
			return fmt.Errorf("inserting recipe %q: %w", r.Name, err)
		}
		for j, li := range r.LineItems {
			u := li.UnitOfMeasure
			_, err := tx.ExecContext(ctx,
				`INSERT INTO line_items (recipe_name, position, ingredient, amount, uom_name, uom_type) VALUES (?, ?, ?, ?, ?, ?)`,
				r.Name, j, li.Ingredient.Name, u.Amount, string(u.Name), string(u.Type))
			if err != nil {
				return fmt.Errorf("inserting line item %d of %q: %w", j, r.Name, err)
			}
		}
	}

	for i, p := range snap.Products {
		id := i + 1
		_, err := tx.ExecContext(ctx, `INSERT INTO products (id, ingredient, name, brand) VALUES (?, ?, ?, ?)`,
			id, p.IngredientName, p.Name, p.BrandName)
		if err != nil {
			return fmt.Errorf("inserting product %q: %w", p.Name, err)
		}
		for j, sp := range p.SupplierProducts {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO supplier_products (product_id, position, supplier, name, price, amount, uom_name, uom_type) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				id, j, sp.SupplierName, sp.SupplierProductName, sp.Price, sp.UoM.Amount, string(sp.UoM.Name), string(sp.UoM.Type))
			if err != nil {
				return fmt.Errorf("inserting offer %d of %q: %w", j, p.Name, err)
			}
		}
		for j, nf := range p.NutrientFacts {
			a, per := nf.QuantityAmount, nf.QuantityPer
			_, err := tx.ExecContext(ctx,
				`INSERT INTO nutrient_facts (product_id, position, nutrient, amount, amount_name, amount_type, per, per_name, per_type) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				id, j, nf.NutrientName, a.Amount, string(a.Name), string(a.Type), per.Amount, string(per.Name), string(per.Type))
			if err != nil {
				return fmt.Errorf("inserting nutrient %q of %q: %w", nf.NutrientName, p.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}
	s.log.Info("imported catalog into sqlite: %d recipes, %d products", len(snap.Recipes), len(snap.Products))
	return nil
}

// Recipes returns every recipe in catalog order.
func (s *SQLiteSource) Recipes(ctx context.Context) ([]domain.Recipe, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.name, li.ingredient, li.amount, li.uom_name, li.uom_type
		FROM recipes r
		LEFT JOIN line_items li ON li.recipe_name = r.name
		ORDER BY r.position, li.position`)
	if err != nil {
		return nil, fmt.Errorf("querying recipes: %w", err)
	}
	defer rows.Close()

	var out []domain.Recipe
	for rows.Next() {
		var (
			name                     string
			ingredient, uName, uType sql.NullString
			amount                   sql.NullFloat64
		)
		if err := rows.Scan(&name, &ingredient, &amount, &uName, &uType); err != nil {
			return nil, fmt.Errorf("scanning recipe: %w", err)
		}
		if len(out) == 0 || out[len(out)-1].Name != name {
			out = append(out, domain.Recipe{Name: name})
		}
		if !ingredient.Valid {
			continue
		}
		r := &out[len(out)-1]
		r.LineItems = append(r.LineItems, domain.RecipeLineItem{
			Ingredient:    domain.Ingredient{Name: ingredient.String},
			UnitOfMeasure: domain.UoM(amount.Float64, domain.UnitName(uName.String), domain.UnitType(uType.String)),
		})
	}
	return out, rows.Err()
}

// ProductsForIngredient returns the candidates for an ingredient in
// catalog order.
func (s *SQLiteSource) ProductsForIngredient(ctx context.Context, ingredient domain.Ingredient) ([]domain.Product, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, brand FROM products WHERE ingredient = ? ORDER BY id`, ingredient.Name)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}

	var ids []int64
	var out []domain.Product
	for rows.Next() {
		var id int64
		p := domain.Product{IngredientName: ingredient.Name}
		if err := rows.Scan(&id, &p.Name, &p.BrandName); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		ids = append(ids, id)
		out = append(out, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, id := range ids {
		if out[i].SupplierProducts, err = s.supplierProducts(ctx, id); err != nil {
			return nil, err
		}
		if out[i].NutrientFacts, err = s.nutrientFacts(ctx, id); err != nil {
			return nil, err
		}
	}

	s.log.Debug("ingredient %q: %d candidates (sqlite)", ingredient.Name, len(out))
	return out, nil
}

func (s *SQLiteSource) supplierProducts(ctx context.Context, productID int64) ([]domain.SupplierProduct, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT supplier, name, price, amount, uom_name, uom_type
		FROM supplier_products WHERE product_id = ? ORDER BY position`, productID)
	if err != nil {
		return nil, fmt.Errorf("querying offers: %w", err)
	}
	defer rows.Close()

	var out []domain.SupplierProduct
	for rows.Next() {
		var sp domain.SupplierProduct
		var uName, uType string
		if err := rows.Scan(&sp.SupplierName, &sp.SupplierProductName, &sp.Price, &sp.UoM.Amount, &uName, &uType); err != nil {
			return nil, fmt.Errorf("scanning offer: %w", err)
		}
		sp.UoM.Name, sp.UoM.Type = domain.UnitName(uName), domain.UnitType(uType)
		out = append(out, sp)
	}
	return out, rows.Err()
}

func (s *SQLiteSource) nutrientFacts(ctx context.Context, productID int64) ([]domain.NutrientFact, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT nutrient, amount, amount_name, amount_type, per, per_name, per_type
		FROM nutrient_facts WHERE product_id = ? ORDER BY position`, productID)
	if err != nil {
		return nil, fmt.Errorf("querying nutrients: %w", err)
	}
	defer rows.Close()

	var out []domain.NutrientFact
	for rows.Next() {
		var nf domain.NutrientFact
		var aName, aType, pName, pType string
		if err := rows.Scan(&nf.NutrientName, &nf.QuantityAmount.Amount, &aName, &aType, &nf.QuantityPer.Amount, &pName, &pType); err != nil {
			return nil, fmt.Errorf("scanning nutrient: %w", err)
		}
		nf.QuantityAmount.Name, nf.QuantityAmount.Type = domain.UnitName(aName), domain.UnitType(aType)
		nf.QuantityPer.Name, nf.QuantityPer.Type = domain.UnitName(pName), domain.UnitType(pType)
		out = append(out, nf)
	}
	return out, rows.Err()
}
