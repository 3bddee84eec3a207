package planner

import (
	"strings"

	"github.com/kiwipantry/smartcart/internal/models"
)

// addSnacks is the opt-in early snack phase: a chip dip pair, a bag of
// chips and a packet of biscuits, each budget-gated. Unlike the later
// treats protocol it runs before the main fill, so snack money is spent
// ahead of nutrition only when the household asked for it.
func (a *allocator) addSnacks() {
	if !a.prefs.IncludeSnacks {
		return
	}

	if cream, soup, ok := a.dipPair(); ok {
		if a.state.fits(cream.Price + soup.Price) {
			a.state.add(cream, 1)
			a.state.add(soup, 1)
		}
	}

	if chips, ok := a.firstEligible(func(p models.Product) bool {
		return p.SubCategory == "chips" && p.BrandTier == models.TierStandard
	}); ok {
		a.state.add(chips, 1)
	}

	if biscuits, ok := a.firstEligible(func(p models.Product) bool {
		return p.SubCategory == "biscuit" && p.BrandTier == models.TierStandard
	}); ok {
		a.state.add(biscuits, 1)
	}
}

// addTreats runs after scale-up when meaningful slack remains: one
// chocolate-or-biscuit treat, a dip for any chips already in the cart, and
// juice for multi-adult households. All best-effort and order-dependent.
func (a *allocator) addTreats() {
	if a.state.remaining() <= a.policy.TreatSlack {
		return
	}

	choc, hasChoc := a.firstEligible(func(p models.Product) bool {
		return strings.HasPrefix(p.ID, "treat-") && p.SubCategory == "chocolate"
	})
	if hasChoc && a.state.fits(choc.Price) && !a.state.contains(choc.ID) {
		a.state.add(choc, 1)
	} else {
		biscuit, hasBiscuit := a.firstEligible(func(p models.Product) bool {
			return strings.HasPrefix(p.ID, "treat-") && p.SubCategory == "biscuit"
		})
		if hasBiscuit && !a.state.contains(biscuit.ID) {
			a.state.add(biscuit, 1)
		}
	}

	if a.cartHasChips() && a.state.remaining() > a.policy.DipSlack {
		added := false
		if cream, soup, ok := a.dipPair(); ok && a.state.fits(cream.Price+soup.Price) {
			if !a.state.contains(cream.ID) && !a.state.contains(soup.ID) {
				a.state.add(cream, 1)
				a.state.add(soup, 1)
				added = true
			}
		}
		if !added {
			if hummus, ok := a.firstEligible(func(p models.Product) bool {
				return p.SubCategory == "hummus"
			}); ok && !a.state.contains(hummus.ID) {
				a.state.add(hummus, 1)
			}
		}
	}

	if a.state.remaining() > a.policy.JuiceSlack && a.prefs.Adults > 1 {
		if juice, ok := a.firstEligible(func(p models.Product) bool {
			return strings.HasPrefix(p.ID, "drink-juice")
		}); ok && !a.state.contains(juice.ID) {
			a.state.add(juice, 1)
		}
	}
}

// dipPair finds the classic two-part chip dip: the reduced cream and onion
// soup lines, both of which must be eligible.
func (a *allocator) dipPair() (models.Product, models.Product, bool) {
	var pair []models.Product
	for _, p := range a.catalog {
		if strings.HasPrefix(p.ID, "snack-dip-") && a.eligible(p) {
			pair = append(pair, p)
			if len(pair) == 2 {
				return pair[0], pair[1], true
			}
		}
	}
	return models.Product{}, models.Product{}, false
}

func (a *allocator) firstEligible(match func(models.Product) bool) (models.Product, bool) {
	for _, p := range a.catalog {
		if match(p) && a.eligible(p) {
			return p, true
		}
	}
	return models.Product{}, false
}

func (a *allocator) cartHasChips() bool {
	for _, item := range a.state.items {
		if item.Product.SubCategory == "chips" ||
			strings.Contains(strings.ToLower(item.Product.Name), "chips") {
			return true
		}
	}
	return false
}
