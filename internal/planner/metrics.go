package planner

import (
	"math"
	"strings"

	"github.com/kiwipantry/smartcart/internal/models"
)

// survivalMode is computed from the requested budget before any
// allocation: if the budget left after reserving for infants works out
// below the minimum per-meal cost, the plan cannot plausibly cover the
// required meals.
func survivalMode(prefs models.Preferences, policy Policy) bool {
	servings := prefs.Adults * prefs.MealsPerDay * prefs.DurationDays
	if servings <= 0 {
		return true
	}
	budgetPerMeal := (prefs.Budget - float64(prefs.Infants)*policy.InfantBudgetReserve) / float64(servings)
	return budgetPerMeal < policy.SurvivalCostPerMeal
}

// proteinPortions counts meal-anchoring servings: every protein line, plus
// fat lines that are vegetarian protein substitutes (egg, cheese, tofu).
func proteinPortions(items []models.CartItem) float64 {
	var portions float64
	for _, item := range items {
		switch item.Product.Category {
		case models.CategoryProtein:
			portions += item.Product.ServingsPerUnit * float64(item.Quantity)
		case models.CategoryFat:
			name := strings.ToLower(item.Product.Name)
			if strings.Contains(name, "egg") || strings.Contains(name, "cheese") || strings.Contains(name, "tofu") {
				portions += item.Product.ServingsPerUnit * float64(item.Quantity)
			}
		}
	}
	return portions
}

// daysCovered scales the plan duration by how much of the required protein
// portions the cart actually covers, capped at the duration itself.
func daysCovered(prefs models.Preferences, portions float64) int {
	required := prefs.Adults * prefs.DurationDays
	if required <= 0 {
		return 0
	}
	ratio := portions / float64(required)
	covered := int(math.Floor(float64(prefs.DurationDays) * ratio))
	if covered > prefs.DurationDays {
		return prefs.DurationDays
	}
	return covered
}
