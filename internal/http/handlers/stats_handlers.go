package handlers

import (
	"net/http"

	"github.com/charcuterie-certains/storefront-api/internal/repo"
)

// GetStatsHandler godoc
// @Summary Storefront dashboard metrics
// @Tags stats
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 500 {string} string "Internal error"
// @Router /stats [get]
func (h *Handler) GetStatsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.GetAll()
	if err != nil {
		http.Error(w, "could not fetch catalog", http.StatusInternalServerError)
		return
	}

	stats := repo.ComputeCatalogStats(products)
	resp := StatsResponse{
		TotalProducts:      stats.TotalProducts,
		CountByCategory:    stats.CountByCategory,
		OutOfStockCount:    stats.OutOfStockCount,
		ActiveCartSessions: h.carts.ActiveSessions(),
	}
	resp.MostPopularProduct.ID = stats.MostPopularProduct.ID
	resp.MostPopularProduct.Name = stats.MostPopularProduct.Name
	resp.MostPopularProduct.Popularity = stats.MostPopularProduct.Popularity

	writeJSON(w, http.StatusOK, resp)
}
