package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/charcuterie-certains/storefront-api/internal/auth"
	"github.com/charcuterie-certains/storefront-api/internal/cart"
	"github.com/charcuterie-certains/storefront-api/internal/repo"
	"github.com/charcuterie-certains/storefront-api/internal/whatsapp"
)

// Deps collects everything the handlers need. All fields are required.
type Deps struct {
	Products   repo.ProductRepository
	Users      repo.UserRepository
	Carts      *cart.Manager
	Tokens     *auth.Tokens
	Refresh    auth.RefreshStore
	RefreshTTL time.Duration
	WhatsApp   *whatsapp.LinkBuilder
	Log        zerolog.Logger
}

// Handler bundles the storefront's HTTP handlers around their dependencies.
type Handler struct {
	products   repo.ProductRepository
	users      repo.UserRepository
	carts      *cart.Manager
	tokens     *auth.Tokens
	refresh    auth.RefreshStore
	refreshTTL time.Duration
	wa         *whatsapp.LinkBuilder
	log        zerolog.Logger
	validate   *validator.Validate
}

func New(deps Deps) *Handler {
	return &Handler{
		products:   deps.Products,
		users:      deps.Users,
		carts:      deps.Carts,
		tokens:     deps.Tokens,
		refresh:    deps.Refresh,
		refreshTTL: deps.RefreshTTL,
		wa:         deps.WhatsApp,
		log:        deps.Log,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
}

// HealthzHandler godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func (h *Handler) HealthzHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
