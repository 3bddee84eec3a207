package planner

import (
	"math"
	"strings"

	"github.com/kiwipantry/smartcart/internal/models"
)

// cartState is the accumulator threaded through the allocation phases:
// the ordered cart lines plus the running spend against the budget.
type cartState struct {
	items  []models.CartItem
	spend  float64
	budget float64
}

func newCartState(budget float64) *cartState {
	return &cartState{budget: budget}
}

// roundCents keeps the running spend at 2-decimal currency precision so
// repeated additions cannot drift past the budget.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// fits reports whether an additional cost stays within the budget.
func (s *cartState) fits(cost float64) bool {
	return roundCents(s.spend+cost) <= s.budget
}

func (s *cartState) remaining() float64 {
	return roundCents(s.budget - s.spend)
}

func (s *cartState) contains(productID string) bool {
	for _, item := range s.items {
		if item.Product.ID == productID {
			return true
		}
	}
	return false
}

// add appends a new line if the full line cost fits the budget. It reports
// whether the line was committed; an over-budget line is skipped whole.
func (s *cartState) add(p models.Product, quantity int) bool {
	cost := p.Price * float64(quantity)
	if quantity <= 0 || !s.fits(cost) {
		return false
	}
	s.items = append(s.items, models.CartItem{Product: p, Quantity: quantity})
	s.spend = roundCents(s.spend + cost)
	return true
}

// increment grows an existing line by one unit if it fits.
func (s *cartState) increment(i int) bool {
	price := s.items[i].Product.Price
	if !s.fits(price) {
		return false
	}
	s.items[i].Quantity++
	s.spend = roundCents(s.spend + price)
	return true
}

// discretionary identifies treat/snack/drink lines by the id-prefix
// convention; the scale-up loop never grows these.
func discretionary(p models.Product) bool {
	return strings.HasPrefix(p.ID, "treat-") ||
		strings.HasPrefix(p.ID, "snack-") ||
		strings.HasPrefix(p.ID, "drink-")
}
