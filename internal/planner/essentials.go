package planner

import "github.com/kiwipantry/smartcart/internal/models"

// addEssentials fills the fixed staple roles: a carb source (rice, falling
// back to pasta), bread and milk. Each role is added once, only if it does
// not duplicate an existing line and fits the budget.
func (a *allocator) addEssentials() {
	if carb, ok := a.pickEssential(models.CategoryCarb, "rice", "pasta"); ok {
		qty := 1
		// Small packs don't stretch far for bigger households or longer
		// plans.
		if carb.WeightGrams < a.policy.SmallPackGrams && (a.prefs.Adults > 2 || a.prefs.DurationDays > 7) {
			qty = 2
		}
		a.addStaple(carb, qty)
	}

	if !a.prefs.HasPantryStaples {
		if bread, ok := a.pickEssential(models.CategoryCarb, "bread"); ok {
			// One loaf lasts about three days per two adults.
			qty := ceilDiv(a.prefs.DurationDays, 3) * ceilDiv(a.prefs.Adults, 2)
			a.addStaple(bread, qty)
		}
	}

	if milk, ok := a.pickEssential(models.CategoryFat, "milk"); ok {
		// One bottle per week per two adults.
		qty := ceilDiv(a.prefs.DurationDays, 7) * ceilDiv(a.prefs.Adults, 2)
		a.addStaple(milk, qty)
	}
}

func (a *allocator) addStaple(p models.Product, qty int) {
	if a.state.contains(p.ID) {
		return
	}
	a.state.add(p, qty)
}

// pickEssential resolves a staple role through an ordered sub-category
// fallback chain, applying the bulk upgrade to the first sub-category that
// has any candidate.
func (a *allocator) pickEssential(category models.Category, subCategories ...string) (models.Product, bool) {
	for _, sub := range subCategories {
		candidates := a.categoryCandidates(category, sub)
		if len(candidates) == 0 {
			continue
		}
		best := candidates[0]
		if bulk, ok := a.bulkUpgrade(best, category, sub); ok {
			return bulk, true
		}
		return best, true
	}
	return models.Product{}, false
}

// bulkUpgrade substitutes a large pack for the standard pick when it is
// strictly cheaper per gram and still fits the remaining budget.
func (a *allocator) bulkUpgrade(standard models.Product, category models.Category, subCategory string) (models.Product, bool) {
	for _, p := range a.catalog {
		if p.Category != category || p.SubCategory != subCategory {
			continue
		}
		if p.WeightGrams < a.policy.BulkWeightGrams || p.ID == standard.ID {
			continue
		}
		if !a.eligible(p) {
			continue
		}
		if p.PricePerGram() < standard.PricePerGram() && a.state.fits(p.Price) {
			return p, true
		}
		return models.Product{}, false
	}
	return models.Product{}, false
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
