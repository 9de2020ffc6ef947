package models

import "strings"

// Category is one of the fixed storefront categories. Display names are kept
// in French to match the shop's catalog data.
type Category string

const (
	CategoryMeats            Category = "Viandes"
	CategoryNaturalBeverages Category = "Boissons naturelles"
	CategoryOtherProducts    Category = "Autres produits"
	CategoryRedWines         Category = "Vins rouges"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{
		CategoryMeats,
		CategoryNaturalBeverages,
		CategoryOtherProducts,
		CategoryRedWines,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryMeats, CategoryNaturalBeverages, CategoryOtherProducts, CategoryRedWines:
		return true
	}
	return false
}

// Slug returns the canonical URL slug for the category.
func (c Category) Slug() string {
	switch c {
	case CategoryMeats:
		return "viandes"
	case CategoryNaturalBeverages:
		return "boissons-naturelles"
	case CategoryOtherProducts:
		return "autres-produits"
	case CategoryRedWines:
		return "vins"
	}
	return ""
}

// categoryBySlug is the exhaustive slug lookup table. "fromages" is a
// historical alias kept so old category links keep working; cheese is listed
// under Autres produits.
var categoryBySlug = map[string]Category{
	"viandes":             CategoryMeats,
	"boissons-naturelles": CategoryNaturalBeverages,
	"autres-produits":     CategoryOtherProducts,
	"vins":                CategoryRedWines,
	"fromages":            CategoryOtherProducts,
}

// CategoryFromSlug resolves a URL slug to a category. Unknown slugs report
// ok=false; there is no fallback guessing.
func CategoryFromSlug(slug string) (Category, bool) {
	c, ok := categoryBySlug[strings.ToLower(strings.TrimSpace(slug))]
	return c, ok
}
