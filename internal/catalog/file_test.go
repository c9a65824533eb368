package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/hammamikhairi/recipecost/internal/domain"
)

func TestWriteThenLoadFile(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"catalog.json", "catalog.msgpack", "nested/catalog.mp"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := WriteFile(path, Seed()); err != nil {
				t.Fatalf("write: %v", err)
			}
			got, err := LoadFile(path)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if !reflect.DeepEqual(got, Seed()) {
				t.Fatal("loaded snapshot differs from the seed")
			}
		})
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFile(filepath.Join(dir, "catalog.yaml")); err == nil {
		t.Fatal("expected unsupported extension error")
	}
	if _, err := LoadFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("expected missing file error")
	}

	garbled := filepath.Join(dir, "garbled.json")
	if err := os.WriteFile(garbled, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFile(garbled); err == nil {
		t.Fatal("expected decode error")
	}

	invalid := filepath.Join(dir, "invalid.json")
	body := `{"recipes":[{"recipeName":"Toast","lineItems":[{"ingredient":{"ingredientName":"bread"},"unitOfMeasure":{"uomAmount":-2,"uomName":"each","uomType":"count"}}]}],"products":[]}`
	if err := os.WriteFile(invalid, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFile(invalid); !errors.Is(err, domain.ErrInvalidCatalog) {
		t.Fatalf("expected ErrInvalidCatalog, got %v", err)
	}
}

func TestDecodeUsesWireNames(t *testing.T) {
	body := `{
		"recipes": [{"recipeName": "Toast", "lineItems": [
			{"ingredient": {"ingredientName": "bread"}, "unitOfMeasure": {"uomAmount": 2, "uomName": "each", "uomType": "count"}}
		]}],
		"products": [{"productName": "Sourdough", "ingredientName": "bread",
			"supplierProducts": [{"supplierName": "Baker", "supplierProductName": "Loaf", "supplierPrice": 4.5,
				"supplierProductUoM": {"uomAmount": 1, "uomName": "each", "uomType": "count"}}],
			"nutrientFacts": []}]
	}`

	snap, err := Decode([]byte(body), FormatJSON)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.Recipes[0].LineItems[0].UnitOfMeasure.Amount != 2 {
		t.Fatalf("unexpected line item: %+v", snap.Recipes[0].LineItems[0])
	}
	if got := snap.Products[0].SupplierProducts[0].Price; got != 4.5 {
		t.Fatalf("expected price 4.5, got %g", got)
	}
}
