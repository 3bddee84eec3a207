package planner

import (
	"sort"
	"strings"

	"github.com/kiwipantry/smartcart/internal/models"
)

// proteinTypeCravings are cravings that name a protein type rather than a
// flavour; when any is active the protein candidate list is filtered
// strictly to matching products.
var proteinTypeCravings = []string{"chicken", "beef", "fish", "veg"}

// scaleUpOrder is the fixed category priority for quantity growth.
var scaleUpOrder = []models.Category{
	models.CategoryProtein,
	models.CategoryVeg,
	models.CategoryFruit,
	models.CategoryCarb,
	models.CategoryFat,
}

// matchesCraving reports whether a craving matches the product's tags,
// sub-category or name.
func matchesCraving(p models.Product, craving string) bool {
	c := strings.ToLower(craving)
	for _, tag := range p.Tags {
		if tag == c {
			return true
		}
	}
	if p.SubCategory == c {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), c)
}

// healthScore awards 10 points per matched health goal.
func (a *allocator) healthScore(p models.Product) int {
	score := 0
	if a.prefs.HealthGoals.GutHealth && hasTag(p, "gut-health") {
		score += 10
	}
	if a.prefs.HealthGoals.LowCholesterol && hasTag(p, "low-cholesterol") {
		score += 10
	}
	return score
}

// fillScore is the composite ranking for the priority fill: health goals
// plus a strong boost for any active craving match.
func (a *allocator) fillScore(p models.Product) int {
	score := a.healthScore(p)
	for _, craving := range a.prefs.Cravings {
		if matchesCraving(p, craving) {
			score += 50
			break
		}
	}
	return score
}

func hasTag(p models.Product, tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// categoryCandidates returns the eligible products of a category (and
// optional sub-category), sorted by health score descending then price
// ascending. Protein lists are strictly narrowed to craved protein types
// when any protein-type craving is active.
func (a *allocator) categoryCandidates(category models.Category, subCategory string) []models.Product {
	var activeTypes []string
	if category == models.CategoryProtein {
		for _, craving := range a.prefs.Cravings {
			c := strings.ToLower(craving)
			for _, t := range proteinTypeCravings {
				if c == t {
					activeTypes = append(activeTypes, c)
				}
			}
		}
	}

	var candidates []models.Product
	for _, p := range a.catalog {
		if p.Category != category || !a.eligible(p) {
			continue
		}
		if subCategory != "" && p.SubCategory != subCategory {
			continue
		}
		if len(activeTypes) > 0 {
			matched := false
			for _, t := range activeTypes {
				if matchesCraving(p, t) {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		candidates = append(candidates, p)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		si, sj := a.healthScore(candidates[i]), a.healthScore(candidates[j])
		if si != sj {
			return si > sj
		}
		return candidates[i].Price < candidates[j].Price
	})
	return candidates
}

// priorityFill greedily adds one unit of each remaining eligible product in
// descending composite-score order, ties broken by protein value per
// currency unit. A single pass, no backtracking: a product that does not
// fit is skipped for good.
func (a *allocator) priorityFill() {
	var candidates []models.Product
	for _, cat := range scaleUpOrder {
		candidates = append(candidates, a.categoryCandidates(cat, "")...)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		si, sj := a.fillScore(candidates[i]), a.fillScore(candidates[j])
		if si != sj {
			return si > sj
		}
		return candidates[i].ValueScore() > candidates[j].ValueScore()
	})

	for _, p := range candidates {
		if p.Category == models.CategoryBaby {
			continue
		}
		if a.state.contains(p.ID) {
			continue
		}
		if a.state.fits(p.Price) {
			a.state.add(p, 1)
		}
	}
}

// scaleUpQuantities repeatedly sweeps the cart in category priority order,
// growing each non-discretionary line by one unit while it fits, until a
// full sweep changes nothing or the budget is exhausted. Spend only grows
// and every line is capped, so the loop terminates.
func (a *allocator) scaleUpQuantities() {
	madeChange := true
	for madeChange && a.state.spend < a.state.budget {
		madeChange = false

		for _, cat := range scaleUpOrder {
			for i := range a.state.items {
				item := a.state.items[i]
				if item.Product.Category != cat || discretionary(item.Product) {
					continue
				}
				if item.Quantity >= a.policy.MaxLineQuantity {
					continue
				}
				if a.state.increment(i) {
					madeChange = true
					if a.state.spend >= a.state.budget {
						return
					}
				}
			}
		}
	}
}
