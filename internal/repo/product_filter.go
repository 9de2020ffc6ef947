package repo

import (
	"errors"
	"strings"

	"github.com/charcuterie-certains/storefront-api/internal/models"
)

// SortKey selects the ordering of catalog search results. Every sort is
// stable: products that compare equal keep their catalog order.
type SortKey string

const (
	SortRecommended    SortKey = "recommended"
	SortPriceAsc       SortKey = "price-asc"
	SortPriceDesc      SortKey = "price-desc"
	SortNameAsc        SortKey = "name-asc"
	SortNameDesc       SortKey = "name-desc"
	SortNewest         SortKey = "newest"
	SortPopularityDesc SortKey = "popularity-desc"
)

// ParseSortKey maps a query-parameter value to a SortKey. The empty string
// means SortRecommended.
func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return SortRecommended, true
	case SortRecommended:
		return SortRecommended, true
	case SortPriceAsc:
		return SortPriceAsc, true
	case SortPriceDesc:
		return SortPriceDesc, true
	case SortNameAsc:
		return SortNameAsc, true
	case SortNameDesc:
		return SortNameDesc, true
	case SortNewest:
		return SortNewest, true
	case SortPopularityDesc:
		return SortPopularityDesc, true
	}
	return "", false
}

// CatalogQuery describes one catalog search. Zero values mean "no
// constraint"; pagination applies after filtering and sorting.
type CatalogQuery struct {
	Category    models.Category // empty means all categories
	Text        string
	MinPrice    *float64
	MaxPrice    *float64
	OnlyInStock bool
	Sort        SortKey
	Offset      *int
	Limit       *int
}

// Text queries starting with ':' are directives. ':all' matches every
// product; anything else is rejected so a half-built directive can never
// silently widen a search.
const directivePrefix = ":"

const DirectiveAll = ":all"

// ErrUnknownDirective is returned for a ':'-prefixed text query that is not
// one of the supported directives.
var ErrUnknownDirective = errors.New("unknown search directive")
