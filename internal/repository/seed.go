package repository

import "github.com/kiwipantry/smartcart/internal/models"

// seedCatalog returns the built-in market snapshot used when no catalog
// file is configured. Prices reflect supermarket budget/value lines.
func seedCatalog() []models.Product {
	return []models.Product{
		// Proteins
		{ID: "p1", Name: "Value Beef Mince", Price: 13.90, Unit: "1kg", WeightGrams: 1000, ProteinGrams: 180, Calories: 2200, Category: models.CategoryProtein, BrandTier: models.TierBudget, ServingsPerUnit: 8, SodiumLevel: models.SodiumLow, Store: models.StoreA, IsVegetarian: false, IsGlutenFree: true, Tags: []string{"beef", "comfort"}},
		{ID: "p2", Name: "Chicken Breast", Price: 14.50, Unit: "1kg", WeightGrams: 1000, ProteinGrams: 310, Calories: 1650, Category: models.CategoryProtein, BrandTier: models.TierStandard, ServingsPerUnit: 6, SodiumLevel: models.SodiumLow, Store: models.StoreGeneral, IsVegetarian: false, IsGlutenFree: true, Tags: []string{"chicken", "low-cholesterol"}},
		{ID: "p3", Name: "Colony Eggs", Price: 14.90, Unit: "Tray (20)", WeightGrams: 1200, ProteinGrams: 120, Calories: 1400, Category: models.CategoryProtein, BrandTier: models.TierBudget, ServingsPerUnit: 10, SodiumLevel: models.SodiumLow, Store: models.StoreA, IsVegetarian: true, IsGlutenFree: true, Allergens: []string{"Egg"}},
		{ID: "p4", Name: "Canned Tuna", Price: 2.10, Unit: "185g Can", WeightGrams: 185, ProteinGrams: 45, Calories: 200, Category: models.CategoryProtein, BrandTier: models.TierBudget, ServingsPerUnit: 2, SodiumLevel: models.SodiumModerate, Store: models.StoreC, IsVegetarian: false, IsGlutenFree: true, IsPantryStaple: true, Allergens: []string{"Fish"}, Tags: []string{"fish"}},
		{ID: "p5", Name: "Value Lentils", Price: 1.20, Unit: "400g Can", WeightGrams: 400, ProteinGrams: 36, Calories: 320, Category: models.CategoryProtein, BrandTier: models.TierBudget, ServingsPerUnit: 2, SodiumLevel: models.SodiumModerate, Store: models.StoreGeneral, IsVegetarian: true, IsGlutenFree: true, IsPantryStaple: true, Preservatives: []string{"Sulphites"}, Tags: []string{"veg", "gut-health"}},
		{ID: "p6", Name: "Precooked Sausages", Price: 11.00, Unit: "1kg Pack", WeightGrams: 1000, ProteinGrams: 120, Calories: 2800, Category: models.CategoryProtein, BrandTier: models.TierBudget, ServingsPerUnit: 8, SodiumLevel: models.SodiumHigh, Store: models.StoreGeneral, IsVegetarian: false, IsGlutenFree: false, Allergens: []string{"Soy", "Gluten", "Sulphites"}, Preservatives: []string{"Sodium Nitrite (250)", "Sulphur Dioxide (220)"}, Tags: []string{"comfort"}},
		{ID: "p7", Name: "Premium Angus Mince", Price: 18.99, Unit: "1kg", WeightGrams: 1000, ProteinGrams: 190, Calories: 2100, Category: models.CategoryProtein, BrandTier: models.TierPremium, ServingsPerUnit: 8, SodiumLevel: models.SodiumLow, Store: models.StoreC, IsVegetarian: false, IsGlutenFree: true, Tags: []string{"beef"}},

		// Carbs
		{ID: "c1", Name: "Value White Rice", Price: 9.50, Unit: "5kg Bag", WeightGrams: 5000, ProteinGrams: 350, Calories: 18000, Category: models.CategoryCarb, SubCategory: "rice", BrandTier: models.TierBudget, ServingsPerUnit: 60, SodiumLevel: models.SodiumLow, Store: models.StoreA, IsVegetarian: true, IsGlutenFree: true, IsPantryStaple: true, Tags: []string{"asian"}},
		{ID: "c2", Name: "White Rice Pack", Price: 2.80, Unit: "1kg", WeightGrams: 1000, ProteinGrams: 70, Calories: 3600, Category: models.CategoryCarb, SubCategory: "rice", BrandTier: models.TierStandard, ServingsPerUnit: 12, SodiumLevel: models.SodiumLow, Store: models.StoreB, IsVegetarian: true, IsGlutenFree: true, IsPantryStaple: true, Tags: []string{"asian"}},
		{ID: "c3", Name: "Value Pasta", Price: 1.20, Unit: "500g", WeightGrams: 500, ProteinGrams: 60, Calories: 1800, Category: models.CategoryCarb, SubCategory: "pasta", BrandTier: models.TierBudget, ServingsPerUnit: 5, SodiumLevel: models.SodiumLow, Store: models.StoreGeneral, IsVegetarian: true, IsGlutenFree: false, IsPantryStaple: true, Allergens: []string{"Gluten (Wheat)"}, Tags: []string{"italian"}},
		{ID: "c4", Name: "Value White Toast Bread", Price: 1.40, Unit: "Loaf", WeightGrams: 600, ProteinGrams: 48, Calories: 1500, Category: models.CategoryCarb, SubCategory: "bread", BrandTier: models.TierBudget, ServingsPerUnit: 10, SodiumLevel: models.SodiumModerate, Store: models.StoreGeneral, IsVegetarian: true, IsGlutenFree: false, Allergens: []string{"Gluten (Wheat)", "Soy"}, Preservatives: []string{"Calcium Propionate (282)"}},
		{ID: "c5", Name: "Rolled Oats", Price: 6.20, Unit: "1.5kg", WeightGrams: 1500, ProteinGrams: 195, Calories: 5600, Category: models.CategoryCarb, SubCategory: "oats", BrandTier: models.TierStandard, ServingsPerUnit: 30, SodiumLevel: models.SodiumLow, Store: models.StoreGeneral, IsVegetarian: true, IsGlutenFree: false, IsPantryStaple: true, Allergens: []string{"Gluten (Oats)"}, Tags: []string{"gut-health"}},
		{ID: "c6", Name: "Ugly Bag Potatoes", Price: 5.99, Unit: "4kg", WeightGrams: 4000, ProteinGrams: 80, Calories: 3000, Category: models.CategoryCarb, SubCategory: "potato", BrandTier: models.TierBudget, ServingsPerUnit: 20, SodiumLevel: models.SodiumLow, Store: models.StoreA, IsVegetarian: true, IsGlutenFree: true, Tags: []string{"comfort"}},
		{ID: "c7", Name: "Artisan Sourdough", Price: 6.50, Unit: "Loaf", WeightGrams: 600, ProteinGrams: 50, Calories: 1400, Category: models.CategoryCarb, SubCategory: "bread", BrandTier: models.TierPremium, ServingsPerUnit: 8, SodiumLevel: models.SodiumModerate, Store: models.StoreC, IsVegetarian: true, IsGlutenFree: false, Allergens: []string{"Gluten (Wheat)"}},

		// Veg
		{ID: "v1", Name: "Value Frozen Mixed Veg", Price: 3.50, Unit: "1kg", WeightGrams: 1000, ProteinGrams: 30, Calories: 600, Category: models.CategoryVeg, BrandTier: models.TierBudget, ServingsPerUnit: 10, SodiumLevel: models.SodiumLow, Store: models.StoreA, IsVegetarian: true, IsGlutenFree: true, Tags: []string{"veg"}},
		{ID: "v2", Name: "Fresh Carrots", Price: 2.50, Unit: "1.5kg", WeightGrams: 1500, ProteinGrams: 15, Calories: 600, Category: models.CategoryVeg, BrandTier: models.TierBudget, ServingsPerUnit: 15, SodiumLevel: models.SodiumLow, Store: models.StoreGeneral, IsVegetarian: true, IsGlutenFree: true, Tags: []string{"veg", "gut-health"}},
		{ID: "v3", Name: "Brown Onions", Price: 2.80, Unit: "1.5kg", WeightGrams: 1500, ProteinGrams: 15, Calories: 600, Category: models.CategoryVeg, BrandTier: models.TierBudget, ServingsPerUnit: 15, SodiumLevel: models.SodiumLow, Store: models.StoreGeneral, IsVegetarian: true, IsGlutenFree: true, Tags: []string{"veg"}},
		{ID: "v4", Name: "Canned Tomatoes (Diced)", Price: 1.10, Unit: "400g Can", WeightGrams: 400, ProteinGrams: 4, Calories: 100, Category: models.CategoryVeg, BrandTier: models.TierBudget, ServingsPerUnit: 4, SodiumLevel: models.SodiumLow, Store: models.StoreGeneral, IsVegetarian: true, IsGlutenFree: true, IsPantryStaple: true, Preservatives: []string{"Citric Acid"}, Tags: []string{"italian"}},

		// Fruit
		{ID: "f1", Name: "Bananas (Loose)", Price: 3.80, Unit: "1kg", WeightGrams: 1000, ProteinGrams: 10, Calories: 890, Category: models.CategoryFruit, BrandTier: models.TierStandard, ServingsPerUnit: 8, SodiumLevel: models.SodiumLow, Store: models.StoreGeneral, IsVegetarian: true, IsGlutenFree: true},
		{ID: "f2", Name: "Apples (Odd Bunch)", Price: 4.00, Unit: "1.5kg", WeightGrams: 1500, ProteinGrams: 7, Calories: 780, Category: models.CategoryFruit, BrandTier: models.TierBudget, ServingsPerUnit: 10, SodiumLevel: models.SodiumLow, Store: models.StoreB, IsVegetarian: true, IsGlutenFree: true, Tags: []string{"gut-health"}},
		{ID: "f3", Name: "Gold Kiwifruit", Price: 7.99, Unit: "1kg", WeightGrams: 1000, ProteinGrams: 11, Calories: 610, Category: models.CategoryFruit, BrandTier: models.TierPremium, ServingsPerUnit: 8, SodiumLevel: models.SodiumLow, Store: models.StoreC, IsVegetarian: true, IsGlutenFree: true, Tags: []string{"gut-health"}},

		// Dairy / fats
		{ID: "d1", Name: "Value Standard Milk", Price: 2.90, Unit: "2L", WeightGrams: 2000, ProteinGrams: 66, Calories: 1200, Category: models.CategoryFat, SubCategory: "milk", BrandTier: models.TierBudget, ServingsPerUnit: 8, SodiumLevel: models.SodiumLow, Store: models.StoreA, IsVegetarian: true, IsGlutenFree: true, Allergens: []string{"Dairy"}},
		{ID: "d2", Name: "Mild Cheese Block", Price: 13.50, Unit: "1kg", WeightGrams: 1000, ProteinGrams: 250, Calories: 3800, Category: models.CategoryFat, SubCategory: "cheese", BrandTier: models.TierBudget, ServingsPerUnit: 25, SodiumLevel: models.SodiumModerate, Store: models.StoreA, IsVegetarian: true, IsGlutenFree: true, Allergens: []string{"Dairy"}, Preservatives: []string{"Sorbic Acid (200)"}, Tags: []string{"comfort"}},
		{ID: "d3", Name: "Butter (Salted)", Price: 6.50, Unit: "500g", WeightGrams: 500, ProteinGrams: 4, Calories: 3600, Category: models.CategoryFat, SubCategory: "butter", BrandTier: models.TierStandard, ServingsPerUnit: 50, SodiumLevel: models.SodiumModerate, Store: models.StoreGeneral, IsVegetarian: true, IsGlutenFree: true, IsPantryStaple: true, Allergens: []string{"Dairy"}},

		// Baby
		{ID: "b1", Name: "Infant Formula Step 1", Price: 23.50, Unit: "900g", WeightGrams: 900, ProteinGrams: 100, Calories: 4500, Category: models.CategoryBaby, SubCategory: "formula", BrandTier: models.TierStandard, ServingsPerUnit: 30, SodiumLevel: models.SodiumLow, Store: models.StoreGeneral, IsVegetarian: true, IsGlutenFree: true, Allergens: []string{"Dairy", "Soy", "Fish"}},
		{ID: "b2", Name: "Nurture Formula", Price: 18.00, Unit: "900g", WeightGrams: 900, ProteinGrams: 100, Calories: 4500, Category: models.CategoryBaby, SubCategory: "formula", BrandTier: models.TierBudget, ServingsPerUnit: 30, SodiumLevel: models.SodiumLow, Store: models.StoreGeneral, IsVegetarian: true, IsGlutenFree: true, Allergens: []string{"Dairy", "Soy", "Fish"}},
		{ID: "b3", Name: "Baby Food Pouch", Price: 1.90, Unit: "120g Pouch", WeightGrams: 120, ProteinGrams: 2, Calories: 80, Category: models.CategoryBaby, SubCategory: "pouch", BrandTier: models.TierStandard, ServingsPerUnit: 1, SodiumLevel: models.SodiumLow, Store: models.StoreGeneral, IsVegetarian: true, IsGlutenFree: true},

		// Treats, snacks and drinks. These ids carry the treat-/snack-/drink-
		// prefixes the scale-up loop uses to exclude discretionary lines.
		{ID: "treat-choc-dark", Name: "Dark Chocolate Block", Price: 5.50, Unit: "250g", WeightGrams: 250, ProteinGrams: 12, Calories: 1350, Category: models.CategoryFat, SubCategory: "chocolate", BrandTier: models.TierStandard, ServingsPerUnit: 10, SodiumLevel: models.SodiumLow, Store: models.StoreGeneral, IsVegetarian: true, IsGlutenFree: true, Allergens: []string{"Dairy", "Soy"}, Tags: []string{"comfort"}},
		{ID: "treat-biscuit-assorted", Name: "Assorted Biscuits", Price: 3.00, Unit: "500g", WeightGrams: 500, ProteinGrams: 15, Calories: 2400, Category: models.CategoryCarb, SubCategory: "biscuit", BrandTier: models.TierStandard, ServingsPerUnit: 12, SodiumLevel: models.SodiumModerate, Store: models.StoreGeneral, IsVegetarian: true, IsGlutenFree: false, Allergens: []string{"Gluten (Wheat)", "Dairy"}, Tags: []string{"comfort"}},
		{ID: "snack-chips-salted", Name: "Salted Potato Chips", Price: 2.50, Unit: "150g", WeightGrams: 150, ProteinGrams: 9, Calories: 800, Category: models.CategoryCarb, SubCategory: "chips", BrandTier: models.TierStandard, ServingsPerUnit: 5, SodiumLevel: models.SodiumModerate, Store: models.StoreGeneral, IsVegetarian: true, IsGlutenFree: true, Tags: []string{"comfort"}},
		{ID: "snack-dip-reduced-cream", Name: "Reduced Cream", Price: 2.50, Unit: "250g Can", WeightGrams: 250, ProteinGrams: 10, Calories: 580, Category: models.CategoryFat, SubCategory: "dip", BrandTier: models.TierBudget, ServingsPerUnit: 6, SodiumLevel: models.SodiumLow, Store: models.StoreGeneral, IsVegetarian: true, IsGlutenFree: true, Allergens: []string{"Dairy"}},
		{ID: "snack-dip-onion-soup", Name: "Onion Soup Mix", Price: 2.00, Unit: "2 Pack", WeightGrams: 60, ProteinGrams: 4, Calories: 180, Category: models.CategoryVeg, SubCategory: "dip", BrandTier: models.TierBudget, ServingsPerUnit: 6, SodiumLevel: models.SodiumHigh, Store: models.StoreGeneral, IsVegetarian: true, IsGlutenFree: false, Allergens: []string{"Gluten (Wheat)"}, Preservatives: []string{"Flavour Enhancer (621)"}},
		{ID: "snack-hummus-classic", Name: "Classic Hummus", Price: 3.50, Unit: "380g Tub", WeightGrams: 380, ProteinGrams: 26, Calories: 900, Category: models.CategoryFat, SubCategory: "hummus", BrandTier: models.TierStandard, ServingsPerUnit: 8, SodiumLevel: models.SodiumModerate, Store: models.StoreB, IsVegetarian: true, IsGlutenFree: true, Allergens: []string{"Sesame"}, Tags: []string{"gut-health"}},
		{ID: "drink-juice-orange", Name: "Orange Juice", Price: 4.50, Unit: "2L", WeightGrams: 2000, ProteinGrams: 4, Calories: 880, Category: models.CategoryFruit, SubCategory: "juice", BrandTier: models.TierStandard, ServingsPerUnit: 8, SodiumLevel: models.SodiumLow, Store: models.StoreGeneral, IsVegetarian: true, IsGlutenFree: true, Preservatives: []string{"Ascorbic Acid (300)"}},
	}
}
