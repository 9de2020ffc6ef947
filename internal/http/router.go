package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/charcuterie-certains/storefront-api/internal/auth"
	"github.com/charcuterie-certains/storefront-api/internal/http/ban"
	"github.com/charcuterie-certains/storefront-api/internal/http/handlers"
	rl "github.com/charcuterie-certains/storefront-api/internal/http/rate_limiter"
)

// NewRouter assembles the storefront's routes. Cart mutations require a
// logged-in customer; reading the catalog and the cart does not.
func NewRouter(h *handlers.Handler, tokens *auth.Tokens, limiter *rl.Limiter, bans *ban.Banlist, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger(log))

	r.Get("/healthz", h.HealthzHandler)

	r.Get("/products", h.ListProductsHandler)
	r.Get("/products/{id}", h.GetProductByIDHandler)
	r.Get("/products/{id}/whatsapp", h.ProductWhatsAppLinkHandler)

	r.Get("/categories", h.ListCategoriesHandler)
	r.Get("/categories/{slug}/products", h.ListCategoryProductsHandler)

	r.Get("/stats", h.GetStatsHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Use(RateLimitMiddleware(limiter, bans))
		r.Post("/register", h.RegisterHandler)
		r.Post("/login", h.LoginHandler)
		r.Post("/refresh", h.RefreshHandler)
		r.With(AuthMiddleware(tokens)).Post("/logout", h.LogoutHandler)
	})

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", h.GetCartHandler)
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(tokens))
			r.Post("/items", h.AddCartItemHandler)
			r.Put("/items/{productID}", h.UpdateCartItemHandler)
			r.Delete("/items/{productID}", h.RemoveCartItemHandler)
			r.Delete("/", h.ClearCartHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
