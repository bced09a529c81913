package menu

import (
	"encoding/json"
	"net/http"

	"github.com/smarthub/restaurant-backend/pkg/logging"
)

// Handler serves the public menu endpoints.
type Handler struct {
	repo   Repository
	logger *logging.Logger
}

// NewHandler creates a menu handler.
func NewHandler(repo Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, logger: logger}
}

// ListItems handles GET /api/menu with an optional ?category= filter.
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	items, err := h.repo.List(r.Context(), category)
	if err != nil {
		h.logger.Error("failed to fetch menu items", "error", err, "category", category)
		writeJSONError(w, http.StatusInternalServerError, "Failed to fetch menu items")
		return
	}
	if items == nil {
		items = []Item{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(items)
}

// ListCategories handles GET /api/categories.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.Categories(r.Context())
	if err != nil {
		h.logger.Error("failed to fetch categories", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	if categories == nil {
		categories = []string{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(categories)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
