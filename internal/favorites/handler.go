package favorites

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/smarthub/restaurant-backend/internal/http/middleware"
	"github.com/smarthub/restaurant-backend/pkg/logging"
)

// Handler serves the authenticated favorites endpoints.
type Handler struct {
	repo   Repository
	logger *logging.Logger
}

// NewHandler creates a favorites handler.
func NewHandler(repo Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, logger: logger}
}

// List handles GET /api/favorites.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "Invalid token.")
		return
	}

	favs, err := h.repo.ListByUser(r.Context(), user.UserID())
	if err != nil {
		h.logger.Error("failed to fetch favorites", "error", err, "user_id", user.UserID())
		writeJSONError(w, http.StatusInternalServerError, "Failed to fetch favorites.")
		return
	}
	if favs == nil {
		favs = []Favorite{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(favs)
}

// Add handles POST /api/favorites. Saving the same item twice answers
// 409 instead of duplicating the row.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "Invalid token.")
		return
	}

	var req AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Menu item ID is required.")
		return
	}
	if err := req.Validate(); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Menu item ID is required.")
		return
	}

	fav, err := h.repo.Add(r.Context(), user.UserID(), req.MenuItemID)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Item already in favorites."})
			return
		}
		h.logger.Error("failed to add favorite", "error", err, "user_id", user.UserID())
		writeJSONError(w, http.StatusInternalServerError, "Failed to add favorite.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(fav)
}

// Remove handles DELETE /api/favorites/{menuItemID}.
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "Invalid token.")
		return
	}
	menuItemID := chi.URLParam(r, "menuItemID")

	if err := h.repo.Remove(r.Context(), user.UserID(), menuItemID); err != nil {
		h.logger.Error("failed to remove favorite", "error", err, "user_id", user.UserID())
		writeJSONError(w, http.StatusInternalServerError, "Failed to remove favorite.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
