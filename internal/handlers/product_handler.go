package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kiwipantry/smartcart/internal/models"
	"github.com/kiwipantry/smartcart/internal/repository"
)

// ProductHandler handles catalog HTTP requests.
type ProductHandler struct {
	repo   repository.ProductRepository
	logger *slog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(repo repository.ProductRepository, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		repo:   repo,
		logger: logger,
	}
}

// productResponse is a catalog product plus its derived value score, so
// value-comparison clients never re-derive ranking math.
type productResponse struct {
	models.Product
	ValueScore float64 `json:"valueScore"`
}

func toProductResponse(p models.Product) productResponse {
	return productResponse{Product: p, ValueScore: p.ValueScore()}
}

// ListProducts handles GET /api/product
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.repo.GetAll(ctx)
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}

	writeJSON(w, http.StatusOK, out)
}

// GetProduct handles GET /api/product/{productID}
// - 200: successful operation
// - 400: missing ID
// - 404: product not found
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := chi.URLParam(r, "productID")

	if productID == "" {
		h.logger.Warn("product ID is required")
		writeError(w, http.StatusBadRequest, "Invalid ID supplied")
		return
	}

	product, err := h.repo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			h.logger.Info("product not found", "productId", productID)
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}

		h.logger.Error("failed to get product", "productId", productID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(*product))
}
