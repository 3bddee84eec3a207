package models

// Category classifies a product for allocation priority and metrics.
type Category string

const (
	CategoryProtein Category = "protein"
	CategoryCarb    Category = "carb"
	CategoryVeg     Category = "veg"
	CategoryFat     Category = "fat"
	CategoryFruit   Category = "fruit"
	CategoryBaby    Category = "baby"
)

// BrandTier indicates the price positioning of a product line.
type BrandTier string

const (
	TierBudget   BrandTier = "budget"
	TierStandard BrandTier = "standard"
	TierPremium  BrandTier = "premium"
)

// SodiumLevel is a coarse health-safety tag; high-sodium products are
// excluded from households with infants.
type SodiumLevel string

const (
	SodiumLow      SodiumLevel = "low"
	SodiumModerate SodiumLevel = "moderate"
	SodiumHigh     SodiumLevel = "high"
)

// Store identifies which supermarket stocks a product. General products
// are available everywhere and pass every store filter.
type Store string

const (
	StoreAny     Store = "Any"
	StoreA       Store = "StoreA"
	StoreB       Store = "StoreB"
	StoreC       Store = "StoreC"
	StoreGeneral Store = "General"
)

// Product represents a catalog item with nutritional, safety and pricing
// metadata. Catalog products are read-only: the planner never mutates them.
type Product struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Price           float64     `json:"price"`
	Unit            string      `json:"unit"`
	WeightGrams     float64     `json:"weightG"`
	ProteinGrams    float64     `json:"proteinG"`
	Calories        float64     `json:"calories"`
	Category        Category    `json:"category"`
	SubCategory     string      `json:"subCategory,omitempty"`
	BrandTier       BrandTier   `json:"brandTier"`
	ServingsPerUnit float64     `json:"servingsPerUnit"`
	SodiumLevel     SodiumLevel `json:"sodiumLevel"`
	Store           Store       `json:"store"`
	IsVegetarian    bool        `json:"isVegetarian"`
	IsGlutenFree    bool        `json:"isGlutenFree"`
	IsPantryStaple  bool        `json:"isPantryStaple"`
	Allergens       []string    `json:"allergens,omitempty"`
	Preservatives   []string    `json:"preservatives,omitempty"`
	Tags            []string    `json:"tags,omitempty"`
}

// PricePerGram is the unit-cost basis for bulk comparisons. Products with
// zero weight are never bulk candidates, so the zero guard only protects
// against malformed catalog rows.
func (p Product) PricePerGram() float64 {
	if p.WeightGrams <= 0 {
		return 0
	}
	return p.Price / p.WeightGrams
}

// ValueScore is protein grams per currency unit, used to rank fill
// candidates and shown alongside products for value comparison.
func (p Product) ValueScore() float64 {
	if p.Price <= 0 {
		return 0
	}
	return p.ProteinGrams / p.Price
}
