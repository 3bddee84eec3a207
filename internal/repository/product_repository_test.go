package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/kiwipantry/smartcart/internal/models"
)

func TestInMemoryProductRepository_GetAll(t *testing.T) {
	repo := NewInMemoryProductRepository()

	products, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll() unexpected error: %v", err)
	}
	if len(products) == 0 {
		t.Fatal("expected seed catalog to contain products")
	}

	// Catalog order must be stable so cart generation is deterministic.
	again, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll() unexpected error: %v", err)
	}
	if !reflect.DeepEqual(products, again) {
		t.Error("GetAll() order changed between calls")
	}

	// Returned slice is a copy; mutating it must not affect the catalog.
	products[0].Price = 999
	fresh, _ := repo.GetAll(context.Background())
	if fresh[0].Price == 999 {
		t.Error("GetAll() leaked internal storage")
	}
}

func TestInMemoryProductRepository_GetByID(t *testing.T) {
	repo := NewInMemoryProductRepository()

	t.Run("existing product", func(t *testing.T) {
		product, err := repo.GetByID(context.Background(), "p1")
		if err != nil {
			t.Fatalf("GetByID() unexpected error: %v", err)
		}
		if product.ID != "p1" {
			t.Errorf("GetByID() id = %s, want p1", product.ID)
		}
		if product.Category != models.CategoryProtein {
			t.Errorf("GetByID() category = %s, want protein", product.Category)
		}
	})

	t.Run("missing product", func(t *testing.T) {
		_, err := repo.GetByID(context.Background(), "nope")
		if !errors.Is(err, ErrProductNotFound) {
			t.Errorf("GetByID() error = %v, want ErrProductNotFound", err)
		}
	})
}

func TestNewFromFile(t *testing.T) {
	t.Run("valid catalog file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.json")
		data := `[{"id":"x1","name":"Test Rice","price":3.50,"weightG":1000,"category":"carb","subCategory":"rice","brandTier":"budget","servingsPerUnit":10,"sodiumLevel":"low","store":"General","isVegetarian":true,"isGlutenFree":true}]`
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatalf("failed to write catalog file: %v", err)
		}

		repo, err := NewFromFile(path)
		if err != nil {
			t.Fatalf("NewFromFile() unexpected error: %v", err)
		}

		product, err := repo.GetByID(context.Background(), "x1")
		if err != nil {
			t.Fatalf("GetByID() unexpected error: %v", err)
		}
		if product.Name != "Test Rice" || product.Price != 3.50 {
			t.Errorf("unexpected product: %+v", product)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := NewFromFile("/non/existent/catalog.json"); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("empty catalog", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.json")
		if err := os.WriteFile(path, []byte(`[]`), 0644); err != nil {
			t.Fatalf("failed to write catalog file: %v", err)
		}
		if _, err := NewFromFile(path); err == nil {
			t.Error("expected error for empty catalog")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		if err := os.WriteFile(path, []byte(`{not json`), 0644); err != nil {
			t.Fatalf("failed to write catalog file: %v", err)
		}
		if _, err := NewFromFile(path); err == nil {
			t.Error("expected error for malformed catalog")
		}
	})
}
