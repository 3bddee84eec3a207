package models

// HealthGoals are optional scoring biases applied during the fill phase.
type HealthGoals struct {
	GutHealth      bool `json:"gutHealth"`
	LowCholesterol bool `json:"lowCholesterol"`
}

// Preferences is the full input to cart generation. Zero values are valid
// for every optional field; Normalize fills the documented defaults.
type Preferences struct {
	Budget             float64     `json:"budget"`
	Adults             int         `json:"adults"`
	Infants            int         `json:"infants"`
	IsVegetarian       bool        `json:"isVegetarian"`
	IsGlutenFree       bool        `json:"isGlutenFree"`
	HasPantryStaples   bool        `json:"hasPantryStaples"`
	PreferredStore     Store       `json:"preferredStore"`
	IsPreservativeFree bool        `json:"isPreservativeFree"`
	ExcludedAllergens  []string    `json:"excludedAllergens,omitempty"`
	DurationDays       int         `json:"durationDays"`
	MealsPerDay        int         `json:"mealsPerDay"`
	IncludeSnacks      bool        `json:"includeSnacks"`
	Cravings           []string    `json:"cravings,omitempty"`
	HealthGoals        HealthGoals `json:"healthGoals"`
}

// Normalize applies defaults for optional fields left at their zero value.
func (p Preferences) Normalize() Preferences {
	if p.PreferredStore == "" {
		p.PreferredStore = StoreAny
	}
	if p.DurationDays <= 0 {
		p.DurationDays = 7
	}
	if p.MealsPerDay <= 0 {
		p.MealsPerDay = 3
	}
	return p
}

// CartItem is one cart line: a catalog product reference plus quantity.
// Savings stays 0 until a live pricing source exists to populate it.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Savings  float64 `json:"savings"`
}

// LineTotal is price times quantity for this line.
func (c CartItem) LineTotal() float64 {
	return c.Product.Price * float64(c.Quantity)
}

// GeneratedCart is the allocator output. Item order is allocation order,
// meaningful for display only.
type GeneratedCart struct {
	Items           []CartItem `json:"items"`
	Total           float64    `json:"total"`
	RemainingBudget float64    `json:"remainingBudget"`
	TotalMeals      int        `json:"totalMeals"`
	DaysCovered     int        `json:"daysCovered"`
	InfantCount     int        `json:"infantCount"`
	DurationDays    int        `json:"durationDays"`
	MealsRequired   int        `json:"mealsRequired"`
	IsSurvivalMode  bool       `json:"isSurvivalMode"`
}
