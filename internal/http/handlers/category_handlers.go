package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/charcuterie-certains/storefront-api/internal/models"
)

// ListCategoriesHandler godoc
// @Summary List storefront categories
// @Tags categories
// @Produce json
// @Success 200 {array} CategoryResponse
// @Failure 500 {string} string "Internal error"
// @Router /categories [get]
func (h *Handler) ListCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.GetAll()
	if err != nil {
		http.Error(w, "could not fetch catalog", http.StatusInternalServerError)
		return
	}

	counts := make(map[models.Category]int, 4)
	for _, p := range products {
		counts[p.Category]++
	}

	categories := models.Categories()
	resp := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		resp[i] = CategoryResponse{
			Name:         string(c),
			Slug:         c.Slug(),
			ProductCount: counts[c],
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListCategoryProductsHandler godoc
// @Summary Search products within one category
// @Tags categories
// @Produce json
// @Param slug path string true "Category slug"
// @Param q query string false "Free-text query over name and description"
// @Param minPrice query number false "Minimum price (inclusive)"
// @Param maxPrice query number false "Maximum price (inclusive)"
// @Param inStock query bool false "Only products in stock"
// @Param sort query string false "Sort key"
// @Success 200 {object} ProductsSearchResult
// @Failure 400 {string} string "Invalid query"
// @Failure 404 {string} string "Unknown category"
// @Router /categories/{slug}/products [get]
func (h *Handler) ListCategoryProductsHandler(w http.ResponseWriter, r *http.Request) {
	category, ok := models.CategoryFromSlug(chi.URLParam(r, "slug"))
	if !ok {
		http.Error(w, "unknown category", http.StatusNotFound)
		return
	}

	params := r.URL.Query()
	params.Del("category")
	query, err := catalogQueryFromParams(params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	query.Category = category

	h.respondSearch(w, query)
}
