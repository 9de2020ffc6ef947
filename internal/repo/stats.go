package repo

import "github.com/charcuterie-certains/storefront-api/internal/models"

// MostPopularProduct is the catalog entry with the highest popularity score.
type MostPopularProduct struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Popularity int    `json:"popularity"`
}

// CatalogStats is the dashboard summary of the static catalog.
type CatalogStats struct {
	TotalProducts      int                `json:"total_products"`
	CountByCategory    map[string]int     `json:"count_by_category"`
	OutOfStockCount    int                `json:"out_of_stock_count"`
	MostPopularProduct MostPopularProduct `json:"most_popular_product"`
}

// ComputeCatalogStats aggregates the catalog in one pass. The catalog never
// changes at runtime, but the computation is cheap enough to redo per call.
func ComputeCatalogStats(products []models.Product) CatalogStats {
	stats := CatalogStats{
		TotalProducts:   len(products),
		CountByCategory: make(map[string]int, 4),
	}
	for _, c := range models.Categories() {
		stats.CountByCategory[string(c)] = 0
	}

	for _, p := range products {
		stats.CountByCategory[string(p.Category)]++
		if !p.Available() {
			stats.OutOfStockCount++
		}
		if p.Popularity > stats.MostPopularProduct.Popularity {
			stats.MostPopularProduct = MostPopularProduct{
				ID:         p.ID,
				Name:       p.Name,
				Popularity: p.Popularity,
			}
		}
	}
	return stats
}
