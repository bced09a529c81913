package contact

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/smarthub/restaurant-backend/pkg/logging"
)

// Handler serves the public contact form endpoint.
type Handler struct {
	repo   Repository
	logger *logging.Logger
}

// NewHandler creates a contact handler.
func NewHandler(repo Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, logger: logger}
}

// Create handles POST /api/contact.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var sub Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeJSONError(w, http.StatusBadRequest, "All fields are required.")
		return
	}

	if err := h.repo.Create(r.Context(), &sub); err != nil {
		if errors.Is(err, ErrInvalidSubmission) {
			writeJSONError(w, http.StatusBadRequest, "All fields are required.")
			return
		}
		h.logger.Error("failed to save contact submission", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to send message.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Message sent successfully!"})
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
