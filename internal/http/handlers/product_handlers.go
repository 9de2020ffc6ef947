package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/charcuterie-certains/storefront-api/internal/models"
	"github.com/charcuterie-certains/storefront-api/internal/repo"
)

// catalogQueryFromParams builds a CatalogQuery from URL query parameters.
// Malformed numeric bounds become absent constraints; an unknown sort key or
// category is reported so the caller can 400.
func catalogQueryFromParams(q url.Values) (repo.CatalogQuery, error) {
	sortKey, ok := repo.ParseSortKey(q.Get("sort"))
	if !ok {
		return repo.CatalogQuery{}, errors.New("unknown sort key")
	}

	query := repo.CatalogQuery{
		Text:        q.Get("q"),
		MinPrice:    parseFloatPtr(q.Get("minPrice")),
		MaxPrice:    parseFloatPtr(q.Get("maxPrice")),
		OnlyInStock: q.Get("inStock") == "true",
		Sort:        sortKey,
		Offset:      parseIntPtr(q.Get("offset")),
		Limit:       parseIntPtr(q.Get("limit")),
	}

	if raw := q.Get("category"); raw != "" && raw != "all" {
		category, ok := models.CategoryFromSlug(raw)
		if !ok {
			// also accept the display name, as the storefront UI sends it
			category = models.Category(raw)
			if !category.Valid() {
				return repo.CatalogQuery{}, errors.New("unknown category")
			}
		}
		query.Category = category
	}

	return query, nil
}

// ListProductsHandler godoc
// @Summary Search the product catalog
// @Tags products
// @Produce json
// @Param category query string false "Category slug or name, or 'all'"
// @Param q query string false "Free-text query over name and description"
// @Param minPrice query number false "Minimum price (inclusive)"
// @Param maxPrice query number false "Maximum price (inclusive)"
// @Param inStock query bool false "Only products in stock"
// @Param sort query string false "Sort key (recommended|price-asc|price-desc|name-asc|name-desc|newest|popularity-desc)"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} ProductsSearchResult
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func (h *Handler) ListProductsHandler(w http.ResponseWriter, r *http.Request) {
	query, err := catalogQueryFromParams(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if query.Limit != nil && *query.Limit <= 0 {
		http.Error(w, "limit must be greater than zero", http.StatusBadRequest)
		return
	}
	if query.Offset != nil && *query.Offset < 0 {
		http.Error(w, "offset must be zero or positive", http.StatusBadRequest)
		return
	}

	h.respondSearch(w, query)
}

func (h *Handler) respondSearch(w http.ResponseWriter, query repo.CatalogQuery) {
	products, total, err := h.products.Search(query)
	if err != nil {
		if errors.Is(err, repo.ErrUnknownDirective) {
			http.Error(w, "unknown search directive", http.StatusBadRequest)
			return
		}
		http.Error(w, "could not search products", http.StatusInternalServerError)
		return
	}

	resp := ProductsSearchResult{
		Data: make([]ProductResponse, len(products)),
		Meta: Meta{TotalCount: total},
	}
	for i, p := range products {
		resp.Data[i] = h.toProductResponse(p)
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [get]
func (h *Handler) GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := h.products.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, h.toProductResponse(product))
}

// ProductWhatsAppLinkHandler godoc
// @Summary WhatsApp inquiry link for a product
// @Description Returns a wa.me link opening a chat with the shop, prefilled with the product name and quantity.
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Param quantity query int false "Quantity (default 1)"
// @Success 200 {object} WhatsAppLinkResult
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /products/{id}/whatsapp [get]
func (h *Handler) ProductWhatsAppLinkHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := h.products.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	quantity := 1
	if qty := parseIntPtr(r.URL.Query().Get("quantity")); qty != nil && *qty > 0 {
		quantity = *qty
	}

	writeJSON(w, http.StatusOK, WhatsAppLinkResult{
		URL: h.wa.ProductInquiryWithQuantity(product.Name, quantity),
	})
}
