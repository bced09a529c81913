package cart

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/smarthub/restaurant-backend/internal/http/middleware"
	"github.com/smarthub/restaurant-backend/pkg/logging"
)

// Handler serves the authenticated cart endpoints.
type Handler struct {
	repo   Repository
	logger *logging.Logger
}

// NewHandler creates a cart handler.
func NewHandler(repo Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, logger: logger}
}

// List handles GET /api/cart.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "Invalid token.")
		return
	}

	items, err := h.repo.ListByUser(r.Context(), user.UserID())
	if err != nil {
		h.logger.Error("failed to fetch cart", "error", err, "user_id", user.UserID())
		writeJSONError(w, http.StatusInternalServerError, "Failed to fetch cart items.")
		return
	}
	if items == nil {
		items = []Item{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(items)
}

// Add handles POST /api/cart. Adding a menu item that is already in the
// cart bumps its quantity instead of creating a duplicate row.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "Invalid token.")
		return
	}

	var req AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Menu item ID and valid quantity are required.")
		return
	}
	if err := req.Validate(); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Menu item ID and valid quantity are required.")
		return
	}

	item, err := h.repo.Upsert(r.Context(), user.UserID(), req.MenuItemID, req.Quantity)
	if err != nil {
		h.logger.Error("failed to upsert cart item", "error", err, "user_id", user.UserID())
		writeJSONError(w, http.StatusInternalServerError, "Failed to update cart.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(item)
}

// UpdateQuantity handles PUT /api/cart/{itemID}. A quantity of zero
// removes the row.
func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "Invalid token.")
		return
	}
	itemID := chi.URLParam(r, "itemID")

	var req struct {
		Quantity *int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Quantity == nil || *req.Quantity < 0 {
		writeJSONError(w, http.StatusBadRequest, "Invalid quantity provided.")
		return
	}

	if *req.Quantity == 0 {
		if err := h.repo.Delete(r.Context(), user.UserID(), itemID); err != nil {
			h.logger.Error("failed to remove cart item", "error", err, "user_id", user.UserID())
			writeJSONError(w, http.StatusInternalServerError, "Failed to update item quantity.")
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	item, err := h.repo.UpdateQuantity(r.Context(), user.UserID(), itemID, *req.Quantity)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "Cart item not found.")
			return
		}
		h.logger.Error("failed to update cart quantity", "error", err, "user_id", user.UserID())
		writeJSONError(w, http.StatusInternalServerError, "Failed to update item quantity.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(item)
}

// Remove handles DELETE /api/cart/{itemID}.
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "Invalid token.")
		return
	}
	itemID := chi.URLParam(r, "itemID")

	if err := h.repo.Delete(r.Context(), user.UserID(), itemID); err != nil {
		h.logger.Error("failed to delete cart item", "error", err, "user_id", user.UserID())
		writeJSONError(w, http.StatusInternalServerError, "Failed to remove item from cart.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
