package planner

import (
	"strings"

	"github.com/kiwipantry/smartcart/internal/models"
)

// Predicate is a single eligibility constraint over a product.
type Predicate func(models.Product) bool

// allOf combines predicates with logical AND.
func allOf(preds ...Predicate) Predicate {
	return func(p models.Product) bool {
		for _, pred := range preds {
			if !pred(p) {
				return false
			}
		}
		return true
	}
}

// infantSodiumSafe rejects high-sodium products when the household has
// infants sharing the family meals.
func infantSodiumSafe(prefs models.Preferences) Predicate {
	return func(p models.Product) bool {
		return prefs.Infants == 0 || p.SodiumLevel != models.SodiumHigh
	}
}

func vegetarianOnly(prefs models.Preferences) Predicate {
	return func(p models.Product) bool {
		return !prefs.IsVegetarian || p.IsVegetarian
	}
}

// glutenFreeOnly applies when the toggle is set or "Gluten" appears in the
// excluded allergen list.
func glutenFreeOnly(prefs models.Preferences) Predicate {
	required := prefs.IsGlutenFree
	if !required {
		for _, a := range prefs.ExcludedAllergens {
			if a == "Gluten" {
				required = true
				break
			}
		}
	}
	return func(p models.Product) bool {
		return !required || p.IsGlutenFree
	}
}

// skipOwnedStaples drops pantry staples the household already holds.
func skipOwnedStaples(prefs models.Preferences) Predicate {
	return func(p models.Product) bool {
		return !prefs.HasPantryStaples || !p.IsPantryStaple
	}
}

func preservativeFree(prefs models.Preferences) Predicate {
	return func(p models.Product) bool {
		return !prefs.IsPreservativeFree || len(p.Preservatives) == 0
	}
}

// allergenSafe rejects a product when any excluded allergen tag appears as
// a substring of any allergen on the product, so excluding "Gluten" also
// catches "Gluten (Wheat)".
func allergenSafe(prefs models.Preferences) Predicate {
	return func(p models.Product) bool {
		if len(prefs.ExcludedAllergens) == 0 || len(p.Allergens) == 0 {
			return true
		}
		for _, allergen := range p.Allergens {
			for _, excluded := range prefs.ExcludedAllergens {
				if strings.Contains(allergen, excluded) {
					return false
				}
			}
		}
		return true
	}
}

// storeMatch keeps products from the preferred store; General products are
// stocked everywhere and always pass.
func storeMatch(prefs models.Preferences) Predicate {
	return func(p models.Product) bool {
		if prefs.PreferredStore == models.StoreAny {
			return true
		}
		return p.Store == models.StoreGeneral || p.Store == prefs.PreferredStore
	}
}

// Eligible is the general family-safety predicate: a product must pass
// every dietary, allergen, pantry and store constraint.
func Eligible(prefs models.Preferences) Predicate {
	return allOf(
		infantSodiumSafe(prefs),
		vegetarianOnly(prefs),
		glutenFreeOnly(prefs),
		skipOwnedStaples(prefs),
		preservativeFree(prefs),
		allergenSafe(prefs),
		storeMatch(prefs),
	)
}

// SafeForInfant is the stricter check for infant-specific items: only the
// allergen exclusions apply; formula and baby food are not subject to the
// general vegetarian/gluten/pantry constraints.
func SafeForInfant(prefs models.Preferences) Predicate {
	return allergenSafe(prefs)
}
