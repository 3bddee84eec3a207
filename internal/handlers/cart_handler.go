package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/kiwipantry/smartcart/internal/models"
	"github.com/kiwipantry/smartcart/internal/planner"
)

// CartHandler handles cart generation requests.
type CartHandler struct {
	planner *planner.Planner
	logger  *slog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(p *planner.Planner, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		planner: p,
		logger:  logger,
	}
}

// CartResponse wraps a generated cart with a request-scoped id so clients
// can reference a particular generation.
type CartResponse struct {
	ID string `json:"id"`
	models.GeneratedCart
}

// GenerateCart handles POST /api/cart
// - 200: cart generated (possibly empty when the budget allows nothing)
// - 400: malformed body or invalid household composition
func (h *CartHandler) GenerateCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var prefs models.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		h.logger.Warn("invalid cart request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if prefs.Adults < 1 {
		writeError(w, http.StatusBadRequest, "At least one adult is required")
		return
	}
	if prefs.Infants < 0 {
		writeError(w, http.StatusBadRequest, "Infant count cannot be negative")
		return
	}

	cart, err := h.planner.GenerateCart(ctx, prefs)
	if err != nil {
		h.logger.Error("failed to generate cart", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.logger.Info("cart generated",
		"budget", prefs.Budget,
		"items", len(cart.Items),
		"total", cart.Total,
		"survival_mode", cart.IsSurvivalMode,
	)

	writeJSON(w, http.StatusOK, CartResponse{
		ID:            uuid.New().String(),
		GeneratedCart: *cart,
	})
}
