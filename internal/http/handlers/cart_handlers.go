package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/charcuterie-certains/storefront-api/internal/cart"
	"github.com/charcuterie-certains/storefront-api/internal/repo"
)

// SessionHeader carries the cart session id. The first cart call without it
// starts a new session; the response always echoes the id to keep.
const SessionHeader = "X-Session-ID"

func (h *Handler) cartSession(w http.ResponseWriter, r *http.Request) (string, *cart.Store) {
	sessionID, store := h.carts.GetOrCreate(r.Header.Get(SessionHeader))
	w.Header().Set(SessionHeader, sessionID)
	return sessionID, store
}

func (h *Handler) cartSnapshot(sessionID string, store *cart.Store) CartResponse {
	items := store.Items()
	resp := CartResponse{
		SessionID: sessionID,
		Items:     make([]CartItemResponse, len(items)),
		Total:     store.Total(),
		ItemCount: store.ItemCount(),
	}
	for i, item := range items {
		resp.Items[i] = CartItemResponse{
			Product:   h.toProductResponse(item.Product),
			Quantity:  item.Quantity,
			LineTotal: item.Product.Price * float64(item.Quantity),
		}
	}
	return resp
}

// GetCartHandler godoc
// @Summary Current cart snapshot
// @Tags cart
// @Produce json
// @Param X-Session-ID header string false "Cart session id"
// @Success 200 {object} CartResponse
// @Router /cart [get]
func (h *Handler) GetCartHandler(w http.ResponseWriter, r *http.Request) {
	sessionID, store := h.cartSession(w, r)
	writeJSON(w, http.StatusOK, h.cartSnapshot(sessionID, store))
}

// AddCartItemHandler godoc
// @Summary Add a product to the cart
// @Description Merges the quantity into an existing line for the product, or appends a new line.
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Session-ID header string false "Cart session id"
// @Param item body CartItemRequest true "Product and quantity"
// @Success 201 {object} CartResponse
// @Failure 400 {object} []ValidationError
// @Failure 404 {string} string "Unknown product"
// @Router /cart/items [post]
func (h *Handler) AddCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var req CartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if validationErrors := h.validateStruct(req); len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	product, err := h.products.GetByID(req.ProductID)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	sessionID, store := h.cartSession(w, r)
	store.Add(product, req.Quantity)
	writeJSON(w, http.StatusCreated, h.cartSnapshot(sessionID, store))
}

// UpdateCartItemHandler godoc
// @Summary Set the quantity of a cart line
// @Description A quantity of zero or less removes the line. Updating a product that is not in the cart is a no-op.
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Session-ID header string false "Cart session id"
// @Param productID path int true "Product ID"
// @Param quantity body CartQuantityRequest true "New quantity"
// @Success 200 {object} CartResponse
// @Failure 400 {string} string "Invalid input"
// @Router /cart/items/{productID} [put]
func (h *Handler) UpdateCartItemHandler(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req CartQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	sessionID, store := h.cartSession(w, r)
	store.UpdateQuantity(productID, req.Quantity)
	writeJSON(w, http.StatusOK, h.cartSnapshot(sessionID, store))
}

// RemoveCartItemHandler godoc
// @Summary Remove a cart line
// @Description Idempotent: removing an absent product succeeds.
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param X-Session-ID header string false "Cart session id"
// @Param productID path int true "Product ID"
// @Success 200 {object} CartResponse
// @Failure 400 {string} string "Invalid ID"
// @Router /cart/items/{productID} [delete]
func (h *Handler) RemoveCartItemHandler(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	sessionID, store := h.cartSession(w, r)
	store.Remove(productID)
	writeJSON(w, http.StatusOK, h.cartSnapshot(sessionID, store))
}

// ClearCartHandler godoc
// @Summary Empty the cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param X-Session-ID header string false "Cart session id"
// @Success 200 {object} CartResponse
// @Router /cart [delete]
func (h *Handler) ClearCartHandler(w http.ResponseWriter, r *http.Request) {
	sessionID, store := h.cartSession(w, r)
	store.Clear()
	writeJSON(w, http.StatusOK, h.cartSnapshot(sessionID, store))
}
