package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/kiwipantry/smartcart/internal/repository"
	"github.com/kiwipantry/smartcart/pkg/logger"
)

func TestListProducts(t *testing.T) {
	// Setup
	repo := repository.NewInMemoryProductRepository()
	log := logger.New("error")
	handler := NewProductHandler(repo, log)

	// Create request
	req := httptest.NewRequest(http.MethodGet, "/api/product", nil)
	w := httptest.NewRecorder()

	// Execute
	handler.ListProducts(w, req)

	// Assert
	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var products []productResponse
	if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(products) == 0 {
		t.Fatal("expected products to be returned")
	}

	// Every product carries its derived value score for comparison UIs.
	for _, p := range products {
		if p.Price > 0 && p.ProteinGrams > 0 && p.ValueScore <= 0 {
			t.Errorf("product %s missing value score", p.ID)
		}
	}
}

func TestGetProduct_Success(t *testing.T) {
	// Setup
	repo := repository.NewInMemoryProductRepository()
	log := logger.New("error")
	handler := NewProductHandler(repo, log)

	// Create router to handle URL params
	r := chi.NewRouter()
	r.Get("/api/product/{productID}", handler.GetProduct)

	// Create request
	req := httptest.NewRequest(http.MethodGet, "/api/product/p1", nil)
	w := httptest.NewRecorder()

	// Execute
	r.ServeHTTP(w, req)

	// Assert
	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var product productResponse
	if err := json.NewDecoder(w.Body).Decode(&product); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if product.ID != "p1" {
		t.Errorf("expected product ID p1, got %s", product.ID)
	}

	if product.Name != "Value Beef Mince" {
		t.Errorf("expected product name 'Value Beef Mince', got %s", product.Name)
	}

	if product.Price != 13.90 {
		t.Errorf("expected product price 13.90, got %f", product.Price)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	repo := repository.NewInMemoryProductRepository()
	log := logger.New("error")
	handler := NewProductHandler(repo, log)

	r := chi.NewRouter()
	r.Get("/api/product/{productID}", handler.GetProduct)

	req := httptest.NewRequest(http.MethodGet, "/api/product/zz99", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}
