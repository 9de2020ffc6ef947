package handlers_test_suite

import (
	"net/http"
	"testing"

	"github.com/charcuterie-certains/storefront-api/internal/http/handlers"
)

func TestHealthz(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodGet, "/healthz", nil, nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestGetStats(t *testing.T) {
	e := newEnv(t)

	// open two cart sessions first
	e.do(t, http.MethodGet, "/cart", nil, nil)
	e.do(t, http.MethodGet, "/cart", nil, nil)

	w := e.do(t, http.MethodGet, "/stats", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	stats := decode[handlers.StatsResponse](t, w)
	if stats.TotalProducts != 13 {
		t.Errorf("expected 13 products, got %d", stats.TotalProducts)
	}
	if stats.OutOfStockCount != 2 {
		t.Errorf("expected 2 out-of-stock products, got %d", stats.OutOfStockCount)
	}
	if stats.CountByCategory["Viandes"] != 4 {
		t.Errorf("expected 4 meat products, got %d", stats.CountByCategory["Viandes"])
	}
	if stats.MostPopularProduct.ID != 5 || stats.MostPopularProduct.Popularity != 92 {
		t.Errorf("expected Jus de gingembre (id 5, popularity 92) as most popular, got %+v",
			stats.MostPopularProduct)
	}
	if stats.ActiveCartSessions != 2 {
		t.Errorf("expected 2 active cart sessions, got %d", stats.ActiveCartSessions)
	}
}
