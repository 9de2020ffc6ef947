package repo

import (
	"errors"
	"testing"

	"github.com/charcuterie-certains/storefront-api/internal/models"
)

func testCatalog(t *testing.T) *InMemoryProductRepository {
	t.Helper()
	r, err := NewInMemoryProductRepository([]models.Product{
		{ID: 1, Name: "Saucisse", Description: "Saucisse fraîche", Category: models.CategoryMeats, Price: 3, Popularity: 10},
		{ID: 2, Name: "Vin Baron", Description: "Vin rouge de table", Category: models.CategoryRedWines, Price: 12, Popularity: 40},
		{ID: 3, Name: "Jus de bissap", Description: "Infusion d'hibiscus", Category: models.CategoryNaturalBeverages, Price: 2, Popularity: 25},
		{ID: 4, Name: "Chorizo", Description: "Chorizo doux au paprika", Category: models.CategoryMeats, Price: 7, InStock: boolPtr(false), Popularity: 5},
		{ID: 5, Name: "Miel", Description: "Miel de forêt", Category: models.CategoryOtherProducts, Price: 7, Popularity: 25},
	})
	if err != nil {
		t.Fatalf("building catalog: %v", err)
	}
	return r
}

func ids(products []models.Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestNewInMemoryProductRepositoryRejectsDuplicateIDs(t *testing.T) {
	_, err := NewInMemoryProductRepository([]models.Product{
		{ID: 1, Name: "A", Category: models.CategoryMeats},
		{ID: 1, Name: "B", Category: models.CategoryMeats},
	})
	if !errors.Is(err, ErrDuplicateProductID) {
		t.Fatalf("expected ErrDuplicateProductID, got %v", err)
	}
}

func TestSearchFilters(t *testing.T) {
	r := testCatalog(t)

	tests := []struct {
		name     string
		query    CatalogQuery
		expected []int
	}{
		{"no constraints", CatalogQuery{}, []int{1, 2, 3, 4, 5}},
		{"category", CatalogQuery{Category: models.CategoryMeats}, []int{1, 4}},
		{"text on name", CatalogQuery{Text: "vin"}, []int{2}},
		{"text on description", CatalogQuery{Text: "hibiscus"}, []int{3}},
		{"text case-insensitive", CatalogQuery{Text: "SAUCISSE"}, []int{1}},
		{"min price inclusive", CatalogQuery{MinPrice: floatPtr(7)}, []int{2, 4, 5}},
		{"max price inclusive", CatalogQuery{MaxPrice: floatPtr(3)}, []int{1, 3}},
		{"price band", CatalogQuery{MinPrice: floatPtr(3), MaxPrice: floatPtr(7)}, []int{1, 4, 5}},
		{"only in stock", CatalogQuery{OnlyInStock: true}, []int{1, 2, 3, 5}},
		{"category and stock", CatalogQuery{Category: models.CategoryMeats, OnlyInStock: true}, []int{1}},
		{"all directive", CatalogQuery{Text: ":all"}, []int{1, 2, 3, 4, 5}},
		{"nothing matches", CatalogQuery{Text: "poulet"}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := r.Search(tt.query)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			if total != len(tt.expected) {
				t.Errorf("expected total %d, got %d", len(tt.expected), total)
			}
			if !equalIDs(ids(got), tt.expected) {
				t.Errorf("expected ids %v, got %v", tt.expected, ids(got))
			}
		})
	}
}

func TestSearchUnknownDirective(t *testing.T) {
	r := testCatalog(t)
	_, _, err := r.Search(CatalogQuery{Text: ":favorites"})
	if !errors.Is(err, ErrUnknownDirective) {
		t.Fatalf("expected ErrUnknownDirective, got %v", err)
	}
}

func TestSearchFilterDimensionsCommute(t *testing.T) {
	r := testCatalog(t)

	// category then price against price then category: the engine applies
	// both in one pass, so both descriptors must yield the same set.
	a, _, err := r.Search(CatalogQuery{Category: models.CategoryMeats, MaxPrice: floatPtr(5)})
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := r.Search(CatalogQuery{MaxPrice: floatPtr(5), Category: models.CategoryMeats})
	if err != nil {
		t.Fatal(err)
	}
	if !equalIDs(ids(a), ids(b)) {
		t.Errorf("filter order changed result: %v vs %v", ids(a), ids(b))
	}
}

func TestSearchSorting(t *testing.T) {
	r := testCatalog(t)

	tests := []struct {
		name     string
		sort     SortKey
		expected []int
	}{
		{"recommended keeps catalog order", SortRecommended, []int{1, 2, 3, 4, 5}},
		{"price ascending", SortPriceAsc, []int{3, 1, 4, 5, 2}},
		{"price descending", SortPriceDesc, []int{2, 4, 5, 3, 1}},
		{"name ascending", SortNameAsc, []int{4, 3, 5, 1, 2}},
		{"name descending", SortNameDesc, []int{2, 1, 5, 3, 4}},
		{"newest by id descending", SortNewest, []int{5, 4, 3, 2, 1}},
		{"popularity descending", SortPopularityDesc, []int{2, 3, 5, 1, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := r.Search(CatalogQuery{Sort: tt.sort})
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			if !equalIDs(ids(got), tt.expected) {
				t.Errorf("expected order %v, got %v", tt.expected, ids(got))
			}
		})
	}
}

func TestSearchSortIsStable(t *testing.T) {
	r := testCatalog(t)

	// products 4 and 5 share price 7, products 3 and 5 share popularity 25;
	// ties must keep catalog order.
	byPrice, _, err := r.Search(CatalogQuery{Sort: SortPriceAsc, MinPrice: floatPtr(7)})
	if err != nil {
		t.Fatal(err)
	}
	if !equalIDs(ids(byPrice), []int{4, 5, 2}) {
		t.Errorf("expected stable order [4 5 2], got %v", ids(byPrice))
	}

	byPopularity, _, err := r.Search(CatalogQuery{Sort: SortPopularityDesc, MaxPrice: floatPtr(7)})
	if err != nil {
		t.Fatal(err)
	}
	if !equalIDs(ids(byPopularity), []int{3, 5, 1, 4}) {
		t.Errorf("expected stable order [3 5 1 4], got %v", ids(byPopularity))
	}
}

func TestSearchPagination(t *testing.T) {
	r := testCatalog(t)

	tests := []struct {
		name     string
		offset   *int
		limit    *int
		expected []int
		total    int
	}{
		{"limit only", nil, intPtr(2), []int{1, 2}, 5},
		{"offset only", intPtr(3), nil, []int{4, 5}, 5},
		{"offset and limit", intPtr(1), intPtr(2), []int{2, 3}, 5},
		{"offset beyond end", intPtr(10), nil, []int{}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := r.Search(CatalogQuery{Offset: tt.offset, Limit: tt.limit})
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			if total != tt.total {
				t.Errorf("expected total %d, got %d", tt.total, total)
			}
			if !equalIDs(ids(got), tt.expected) {
				t.Errorf("expected ids %v, got %v", tt.expected, ids(got))
			}
		})
	}
}

func TestGetByID(t *testing.T) {
	r := testCatalog(t)

	p, err := r.GetByID(2)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if p.Name != "Vin Baron" {
		t.Errorf("expected Vin Baron, got %q", p.Name)
	}

	if _, err := r.GetByID(99); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		in       string
		expected SortKey
		ok       bool
	}{
		{"", SortRecommended, true},
		{"recommended", SortRecommended, true},
		{"price-asc", SortPriceAsc, true},
		{"PRICE-DESC", SortPriceDesc, true},
		{"name-asc", SortNameAsc, true},
		{"name-desc", SortNameDesc, true},
		{"newest", SortNewest, true},
		{"popularity-desc", SortPopularityDesc, true},
		{"cheapest", "", false},
	}

	for _, tt := range tests {
		key, ok := ParseSortKey(tt.in)
		if ok != tt.ok || (ok && key != tt.expected) {
			t.Errorf("ParseSortKey(%q) = (%q, %v), want (%q, %v)", tt.in, key, ok, tt.expected, tt.ok)
		}
	}
}
