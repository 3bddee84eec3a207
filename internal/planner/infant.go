package planner

import (
	"sort"
	"strings"

	"github.com/kiwipantry/smartcart/internal/models"
)

// allocateInfantItems reserves budget for formula and baby food before any
// general filling. Each line is committed only if it fits whole; an
// unaffordable line is skipped without error.
func (a *allocator) allocateInfantItems() {
	if a.prefs.Infants == 0 {
		return
	}

	formula, hasFormula := a.cheapestFormula()
	if hasFormula {
		tins := a.prefs.DurationDays / a.policy.FormulaDaysPerTin
		if a.prefs.DurationDays%a.policy.FormulaDaysPerTin != 0 {
			tins++
		}
		if tins < 1 {
			tins = 1
		}
		a.state.add(formula, tins)
	}

	pouch, hasPouch := a.pickPouch(formula, hasFormula)
	if hasPouch {
		qty := a.prefs.DurationDays * a.policy.PouchesPerInfantPerDay * a.prefs.Infants
		a.state.add(pouch, qty)
	}
}

// cheapestFormula returns the minimum-price formula that passes both the
// family and infant safety checks.
func (a *allocator) cheapestFormula() (models.Product, bool) {
	var formulas []models.Product
	for _, p := range a.catalog {
		if p.Category != models.CategoryBaby || !strings.Contains(p.Name, "Formula") {
			continue
		}
		if !a.eligible(p) || !a.safeForInfant(p) {
			continue
		}
		formulas = append(formulas, p)
	}
	if len(formulas) == 0 {
		return models.Product{}, false
	}
	sort.SliceStable(formulas, func(i, j int) bool {
		return formulas[i].Price < formulas[j].Price
	})
	return formulas[0], true
}

// pickPouch resolves the non-formula baby item through an ordered tier
// fallback: budget tier first, then standard.
func (a *allocator) pickPouch(formula models.Product, hasFormula bool) (models.Product, bool) {
	for _, tier := range []models.BrandTier{models.TierBudget, models.TierStandard} {
		for _, p := range a.catalog {
			if p.Category != models.CategoryBaby || p.BrandTier != tier {
				continue
			}
			if hasFormula && p.ID == formula.ID {
				continue
			}
			if strings.Contains(p.Name, "Formula") {
				continue
			}
			if !a.safeForInfant(p) {
				continue
			}
			return p, true
		}
	}
	return models.Product{}, false
}
