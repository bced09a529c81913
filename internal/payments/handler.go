package payments

import (
	"context"
	"encoding/json"
	"math"
	"net/http"

	"github.com/smarthub/restaurant-backend/pkg/logging"
)

// PriceLookup resolves menu item prices so the charge amount is always
// computed server side, never trusted from the client.
type PriceLookup interface {
	PricesByID(ctx context.Context, ids []string) (map[string]float64, error)
}

type orderItem struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

type createIntentRequest struct {
	Items []orderItem `json:"items"`
}

// Handler serves the checkout endpoint.
type Handler struct {
	intents IntentCreator
	prices  PriceLookup
	logger  *logging.Logger
}

// NewHandler creates a payments handler.
func NewHandler(intents IntentCreator, prices PriceLookup, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{intents: intents, prices: prices, logger: logger}
}

// CreateIntent handles POST /api/create-payment-intent.
func (h *Handler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req createIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid order amount.")
		return
	}

	amount, err := h.orderAmountCents(r.Context(), req.Items)
	if err != nil {
		h.logger.Error("failed to price order", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to create payment intent.")
		return
	}
	if amount <= 0 {
		writeJSONError(w, http.StatusBadRequest, "Invalid order amount.")
		return
	}

	secret, err := h.intents.CreateIntent(r.Context(), amount)
	if err != nil {
		h.logger.Error("failed to create payment intent", "error", err, "amount_cents", amount)
		writeJSONError(w, http.StatusInternalServerError, "Failed to create payment intent.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"clientSecret": secret})
}

// orderAmountCents totals the order from stored prices. Unknown item ids
// and non-positive quantities contribute nothing.
func (h *Handler) orderAmountCents(ctx context.Context, items []orderItem) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		if item.MenuItemID != "" && item.Quantity > 0 {
			ids = append(ids, item.MenuItemID)
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}

	prices, err := h.prices.PricesByID(ctx, ids)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, item := range items {
		price, ok := prices[item.MenuItemID]
		if !ok || item.Quantity <= 0 {
			continue
		}
		total += int64(math.Round(price*100)) * int64(item.Quantity)
	}
	return total, nil
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
