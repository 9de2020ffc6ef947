package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/charcuterie-certains/storefront-api/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func parseFloatPtr(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseIntPtr(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func (h *Handler) toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Category:    string(p.Category),
		Price:       p.Price,
		Image:       p.Image,
		InStock:     p.Available(),
		Popularity:  p.Popularity,
		WhatsAppURL: h.wa.ProductInquiry(p.Name),
	}
}
