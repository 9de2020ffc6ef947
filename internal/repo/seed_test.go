package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charcuterie-certains/storefront-api/internal/models"
)

func TestDefaultProductsSeedIsValid(t *testing.T) {
	products := DefaultProducts()
	if len(products) == 0 {
		t.Fatal("default seed is empty")
	}

	if _, err := NewInMemoryProductRepository(products); err != nil {
		t.Fatalf("default seed rejected: %v", err)
	}

	for _, p := range products {
		if err := validateSeedProduct(p); err != nil {
			t.Errorf("product %d: %v", p.ID, err)
		}
		if p.Slug == "" || p.Image == "" {
			t.Errorf("product %d: missing slug or image", p.ID)
		}
	}
}

func TestDefaultProductsCoverEveryCategory(t *testing.T) {
	byCategory := map[models.Category]int{}
	for _, p := range DefaultProducts() {
		byCategory[p.Category]++
	}
	for _, c := range models.Categories() {
		if byCategory[c] == 0 {
			t.Errorf("category %q has no seed products", c)
		}
	}
}

func TestLoadProductsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	seed := `[
		{"id": 1, "name": "Saucisse", "category": "Viandes", "price": 3},
		{"id": 2, "name": "Vin Baron", "category": "Vins rouges", "price": 12, "in_stock": false}
	]`
	if err := os.WriteFile(path, []byte(seed), 0o600); err != nil {
		t.Fatal(err)
	}

	products, err := LoadProductsFile(path)
	if err != nil {
		t.Fatalf("LoadProductsFile: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].Available() != true {
		t.Error("absent in_stock should mean available")
	}
	if products[1].Available() {
		t.Error("explicit in_stock=false should mean unavailable")
	}
}

func TestLoadProductsFileRejectsBadRows(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown category", `[{"id": 1, "name": "X", "category": "Fromages", "price": 1}]`},
		{"negative price", `[{"id": 1, "name": "X", "category": "Viandes", "price": -1}]`},
		{"missing name", `[{"id": 1, "category": "Viandes", "price": 1}]`},
		{"non-positive id", `[{"id": 0, "name": "X", "category": "Viandes", "price": 1}]`},
		{"not json", `{nope}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "products.json")
			if err := os.WriteFile(path, []byte(tt.body), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadProductsFile(path); err == nil {
				t.Error("expected load error")
			}
		})
	}
}
