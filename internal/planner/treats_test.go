package planner

import (
	"testing"

	"github.com/kiwipantry/smartcart/internal/models"
)

func treatCatalog() []models.Product {
	return []models.Product{
		{ID: "treat-choc", Name: "Dark Chocolate", Price: 5.50, WeightGrams: 250, ProteinGrams: 12, Category: models.CategoryFat, SubCategory: "chocolate", BrandTier: models.TierStandard, ServingsPerUnit: 10, SodiumLevel: models.SodiumLow, Store: models.StoreGeneral, IsVegetarian: true, IsGlutenFree: true},
		{ID: "treat-biscuit", Name: "Assorted Biscuits", Price: 3.00, WeightGrams: 500, ProteinGrams: 15, Category: models.CategoryCarb, SubCategory: "biscuit", BrandTier: models.TierStandard, ServingsPerUnit: 12, SodiumLevel: models.SodiumLow, Store: models.StoreGeneral, IsVegetarian: true, Allergens: []string{"Gluten (Wheat)", "Dairy"}},
		{ID: "snack-chips-salted", Name: "Salted Chips", Price: 2.50, WeightGrams: 150, ProteinGrams: 9, Category: models.CategoryCarb, SubCategory: "chips", BrandTier: models.TierStandard, ServingsPerUnit: 5, SodiumLevel: models.SodiumModerate, Store: models.StoreGeneral, IsVegetarian: true, IsGlutenFree: true},
		{ID: "snack-dip-reduced-cream", Name: "Reduced Cream", Price: 2.50, WeightGrams: 250, ProteinGrams: 10, Category: models.CategoryFat, SubCategory: "dip", BrandTier: models.TierBudget, ServingsPerUnit: 6, SodiumLevel: models.SodiumLow, Store: models.StoreGeneral, IsVegetarian: true, IsGlutenFree: true, Allergens: []string{"Dairy"}},
		{ID: "snack-dip-onion-soup", Name: "Onion Soup Mix", Price: 2.00, WeightGrams: 60, ProteinGrams: 4, Category: models.CategoryVeg, SubCategory: "dip", BrandTier: models.TierBudget, ServingsPerUnit: 6, SodiumLevel: models.SodiumLow, Store: models.StoreGeneral, IsVegetarian: true, IsGlutenFree: true},
		{ID: "snack-hummus", Name: "Classic Hummus", Price: 3.50, WeightGrams: 380, ProteinGrams: 26, Category: models.CategoryFat, SubCategory: "hummus", BrandTier: models.TierStandard, ServingsPerUnit: 8, SodiumLevel: models.SodiumLow, Store: models.StoreGeneral, IsVegetarian: true, IsGlutenFree: true},
		{ID: "drink-juice-orange", Name: "Orange Juice", Price: 4.50, WeightGrams: 2000, ProteinGrams: 4, Category: models.CategoryFruit, SubCategory: "juice", BrandTier: models.TierStandard, ServingsPerUnit: 8, SodiumLevel: models.SodiumLow, Store: models.StoreGeneral, IsVegetarian: true, IsGlutenFree: true},
	}
}

func TestAddTreats(t *testing.T) {
	t.Run("no treats below slack threshold", func(t *testing.T) {
		a := newTestAllocator(treatCatalog(), models.Preferences{Budget: 8, Adults: 2})
		a.addTreats()

		if len(a.state.items) != 0 {
			t.Errorf("expected no treats with slack at threshold, got %d items", len(a.state.items))
		}
	})

	t.Run("chocolate preferred over biscuit", func(t *testing.T) {
		a := newTestAllocator(treatCatalog(), models.Preferences{Budget: 9, Adults: 1})
		a.addTreats()

		if len(a.state.items) == 0 || a.state.items[0].Product.ID != "treat-choc" {
			t.Fatalf("expected chocolate first, got %+v", a.state.items)
		}
	})

	t.Run("biscuit fallback when chocolate excluded", func(t *testing.T) {
		catalog := treatCatalog()
		catalog[0].Store = models.StoreB // chocolate out of the preferred store

		a := newTestAllocator(catalog, models.Preferences{Budget: 20, Adults: 1, PreferredStore: models.StoreA})
		a.addTreats()

		if len(a.state.items) == 0 || a.state.items[0].Product.ID != "treat-biscuit" {
			t.Fatalf("expected biscuit fallback, got %+v", a.state.items)
		}
	})

	t.Run("dip pair added when chips are in the cart", func(t *testing.T) {
		a := newTestAllocator(treatCatalog(), models.Preferences{Budget: 30, Adults: 1})
		a.state.add(a.catalog[2], 1) // chips
		a.addTreats()

		if !a.state.contains("snack-dip-reduced-cream") || !a.state.contains("snack-dip-onion-soup") {
			t.Error("expected the dip pair alongside chips")
		}
	})

	t.Run("hummus fallback when dip pair unavailable", func(t *testing.T) {
		catalog := treatCatalog()
		catalog[3].Store = models.StoreB // reduced cream out of store
		a := newTestAllocator(catalog, models.Preferences{Budget: 30, Adults: 1, PreferredStore: models.StoreA})
		a.state.add(catalog[2], 1) // chips
		a.addTreats()

		if !a.state.contains("snack-hummus") {
			t.Error("expected hummus fallback")
		}
		if a.state.contains("snack-dip-onion-soup") {
			t.Error("half a dip pair should never be added")
		}
	})

	t.Run("juice only for multiple adults", func(t *testing.T) {
		solo := newTestAllocator(treatCatalog(), models.Preferences{Budget: 50, Adults: 1})
		solo.addTreats()
		if solo.state.contains("drink-juice-orange") {
			t.Error("juice should be skipped for a single adult")
		}

		couple := newTestAllocator(treatCatalog(), models.Preferences{Budget: 50, Adults: 2})
		couple.addTreats()
		if !couple.state.contains("drink-juice-orange") {
			t.Error("expected juice for multiple adults with slack")
		}
	})
}

func TestAddSnacks(t *testing.T) {
	t.Run("disabled by default", func(t *testing.T) {
		a := newTestAllocator(treatCatalog(), models.Preferences{Budget: 50, Adults: 2})
		a.addSnacks()
		if len(a.state.items) != 0 {
			t.Errorf("expected no snacks, got %d items", len(a.state.items))
		}
	})

	t.Run("adds dip pair, chips and biscuits when enabled", func(t *testing.T) {
		a := newTestAllocator(treatCatalog(), models.Preferences{Budget: 50, Adults: 2, IncludeSnacks: true})
		a.addSnacks()

		for _, id := range []string{"snack-dip-reduced-cream", "snack-dip-onion-soup", "snack-chips-salted"} {
			if !a.state.contains(id) {
				t.Errorf("expected %s in cart", id)
			}
		}
	})

	t.Run("snack lines respect dietary constraints", func(t *testing.T) {
		a := newTestAllocator(treatCatalog(), models.Preferences{Budget: 50, Adults: 2, IncludeSnacks: true, ExcludedAllergens: []string{"Dairy"}})
		a.addSnacks()

		if a.state.contains("snack-dip-reduced-cream") {
			t.Error("dairy dip should be excluded")
		}
	})
}
