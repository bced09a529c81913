package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/smarthub/restaurant-backend/pkg/logging"
)

type messageRequest struct {
	Message string `json:"message"`
}

type messageResponse struct {
	Reply string `json:"reply"`
}

// Handler serves the HTTP chat endpoint.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates the chat handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

// PostMessage handles POST /api/chat. The endpoint is stateless; each
// request carries the full message and gets a single reply back.
func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Message is required.")
		return
	}

	reply, err := h.service.HandleMessage(r.Context(), req.Message)
	if err != nil {
		if errors.Is(err, ErrEmptyMessage) {
			writeJSONError(w, http.StatusBadRequest, "Message is required.")
			return
		}
		h.logger.Error("chat message failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Sorry, I encountered an internal error. Please try again later.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(messageResponse{Reply: reply.Text})
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
