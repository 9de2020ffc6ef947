package repo

import (
	"sort"
	"strings"

	"github.com/charcuterie-certains/storefront-api/internal/models"
)

// InMemoryProductRepository holds the static catalog. The product slice is
// never mutated after construction, so reads need no locking.
type InMemoryProductRepository struct {
	products []models.Product
}

// NewInMemoryProductRepository builds the catalog from the given seed,
// rejecting duplicate ids.
func NewInMemoryProductRepository(products []models.Product) (*InMemoryProductRepository, error) {
	seen := make(map[int]struct{}, len(products))
	for _, p := range products {
		if _, dup := seen[p.ID]; dup {
			return nil, ErrDuplicateProductID
		}
		seen[p.ID] = struct{}{}
	}
	return &InMemoryProductRepository{products: products}, nil
}

// GetAll retrieves the full catalog in its original order.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func matchesQuery(p models.Product, q CatalogQuery, text string) bool {
	if q.Category != "" && p.Category != q.Category {
		return false
	}
	if text != "" &&
		!strings.Contains(strings.ToLower(p.Name), text) &&
		!strings.Contains(strings.ToLower(p.Description), text) {
		return false
	}
	if q.MinPrice != nil && p.Price < *q.MinPrice {
		return false
	}
	if q.MaxPrice != nil && p.Price > *q.MaxPrice {
		return false
	}
	if q.OnlyInStock && !p.Available() {
		return false
	}
	return true
}

// Search filters, sorts and paginates the catalog. The second return value
// is the total match count before pagination.
func (r *InMemoryProductRepository) Search(q CatalogQuery) ([]models.Product, int, error) {
	text := strings.ToLower(strings.TrimSpace(q.Text))
	if strings.HasPrefix(text, directivePrefix) {
		if text != DirectiveAll {
			return nil, 0, ErrUnknownDirective
		}
		text = ""
	}

	filtered := []models.Product{}
	for _, p := range r.products {
		if matchesQuery(p, q, text) {
			filtered = append(filtered, p)
		}
	}

	sortProducts(filtered, q.Sort)

	total := len(filtered)
	start := 0
	if q.Offset != nil {
		start = clamp(*q.Offset, 0, total)
	}
	end := total
	if q.Limit != nil && *q.Limit > 0 {
		end = clamp(start+*q.Limit, start, total)
	}

	return filtered[start:end], total, nil
}

func sortProducts(products []models.Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case SortNameAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
		})
	case SortNameDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) > strings.ToLower(products[j].Name)
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool { return products[i].ID > products[j].ID })
	case SortPopularityDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Popularity > products[j].Popularity })
	case SortRecommended:
		// catalog order unchanged
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
