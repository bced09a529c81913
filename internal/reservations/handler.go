package reservations

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/smarthub/restaurant-backend/pkg/logging"
)

// Handler serves the public reservation endpoint.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a reservation handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

// Create handles POST /api/reservations.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "All required fields must be filled.")
		return
	}

	if _, err := h.service.Book(r.Context(), &req); err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			writeJSONError(w, http.StatusBadRequest, "All required fields must be filled.")
			return
		}
		h.logger.Error("failed to create reservation", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to create reservation.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Reservation confirmed! Please check your email."})
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
