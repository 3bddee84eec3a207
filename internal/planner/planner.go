// Package planner turns a grocery budget and family composition into a
// concrete shopping cart. The allocation pipeline is deterministic and
// budget-safe: infant priority items, staple essentials with bulk
// upgrades, a greedy priority fill, bounded quantity scale-up, then
// discretionary treats, followed by coverage metrics.
package planner

import (
	"context"
	"fmt"
	"math"

	"github.com/kiwipantry/smartcart/internal/models"
	"github.com/kiwipantry/smartcart/internal/repository"
)

// Planner generates carts against an injected read-only product catalog.
type Planner struct {
	repo   repository.ProductRepository
	policy Policy
}

// New creates a planner over the given catalog repository.
func New(repo repository.ProductRepository, policy Policy) *Planner {
	return &Planner{
		repo:   repo,
		policy: policy,
	}
}

// GenerateCart fetches the catalog and runs the allocation pipeline.
func (pl *Planner) GenerateCart(ctx context.Context, prefs models.Preferences) (*models.GeneratedCart, error) {
	catalog, err := pl.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	cart := BuildCart(catalog, prefs, pl.policy)
	return &cart, nil
}

// allocator carries the per-invocation state through the phases. Nothing
// here outlives the call and the catalog is never mutated, so BuildCart is
// safe to run concurrently.
type allocator struct {
	catalog       []models.Product
	prefs         models.Preferences
	policy        Policy
	eligible      Predicate
	safeForInfant Predicate
	state         *cartState
}

// BuildCart is the pure allocation pipeline: (catalog, preferences) in,
// GeneratedCart out. A non-positive budget yields an empty cart.
func BuildCart(catalog []models.Product, prefs models.Preferences, policy Policy) models.GeneratedCart {
	prefs = prefs.Normalize()

	servingsRequired := prefs.Adults * prefs.MealsPerDay * prefs.DurationDays
	survival := survivalMode(prefs, policy)

	if prefs.Budget <= 0 {
		return models.GeneratedCart{
			Items:          []models.CartItem{},
			InfantCount:    prefs.Infants,
			DurationDays:   prefs.DurationDays,
			MealsRequired:  servingsRequired,
			IsSurvivalMode: survival,
		}
	}

	a := &allocator{
		catalog:       catalog,
		prefs:         prefs,
		policy:        policy,
		eligible:      Eligible(prefs),
		safeForInfant: SafeForInfant(prefs),
		state:         newCartState(prefs.Budget),
	}

	a.allocateInfantItems()
	a.addSnacks()
	a.addEssentials()
	a.priorityFill()
	a.scaleUpQuantities()
	a.addTreats()

	portions := proteinPortions(a.state.items)

	items := a.state.items
	if items == nil {
		items = []models.CartItem{}
	}

	return models.GeneratedCart{
		Items:           items,
		Total:           a.state.spend,
		RemainingBudget: a.state.remaining(),
		TotalMeals:      int(math.Floor(portions)),
		DaysCovered:     daysCovered(prefs, portions),
		InfantCount:     prefs.Infants,
		DurationDays:    prefs.DurationDays,
		MealsRequired:   servingsRequired,
		IsSurvivalMode:  survival,
	}
}
