package planner

import (
	"testing"

	"github.com/kiwipantry/smartcart/internal/models"
)

func TestSurvivalMode(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name  string
		prefs models.Preferences
		want  bool
	}{
		{
			name:  "just under threshold",
			prefs: models.Preferences{Budget: 60, Adults: 2, MealsPerDay: 3, DurationDays: 7},
			want:  true, // 60 / 42 ≈ 1.43
		},
		{
			name:  "comfortably over threshold",
			prefs: models.Preferences{Budget: 70, Adults: 2, MealsPerDay: 3, DurationDays: 7},
			want:  false, // 70 / 42 ≈ 1.67
		},
		{
			name:  "infant reserve comes off the top",
			prefs: models.Preferences{Budget: 80, Adults: 2, Infants: 1, MealsPerDay: 3, DurationDays: 7},
			want:  true, // (80 - 20) / 42 ≈ 1.43
		},
		{
			name:  "single adult single meal",
			prefs: models.Preferences{Budget: 15, Adults: 1, MealsPerDay: 1, DurationDays: 7},
			want:  false, // 15 / 7 ≈ 2.14
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := survivalMode(tt.prefs.Normalize(), policy)
			if got != tt.want {
				t.Errorf("survivalMode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProteinPortions(t *testing.T) {
	items := []models.CartItem{
		{Product: models.Product{Category: models.CategoryProtein, ServingsPerUnit: 8}, Quantity: 2},
		{Product: models.Product{Category: models.CategoryFat, Name: "Mild Cheese Block", ServingsPerUnit: 25}, Quantity: 1},
		{Product: models.Product{Category: models.CategoryFat, Name: "Butter (Salted)", ServingsPerUnit: 50}, Quantity: 1},
		{Product: models.Product{Category: models.CategoryCarb, ServingsPerUnit: 60}, Quantity: 1},
	}

	// 2x8 protein servings plus the cheese substitute; butter and carbs
	// never count.
	if got := proteinPortions(items); got != 41 {
		t.Errorf("proteinPortions() = %.1f, want 41", got)
	}
}

func TestDaysCovered(t *testing.T) {
	prefs := models.Preferences{Adults: 2, DurationDays: 7}.Normalize()

	tests := []struct {
		name     string
		portions float64
		want     int
	}{
		{name: "no portions", portions: 0, want: 0},
		{name: "half coverage", portions: 7, want: 3},
		{name: "full coverage", portions: 14, want: 7},
		{name: "surplus capped at duration", portions: 50, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := daysCovered(prefs, tt.portions); got != tt.want {
				t.Errorf("daysCovered(%.1f) = %d, want %d", tt.portions, got, tt.want)
			}
		})
	}
}
