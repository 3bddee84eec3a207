package planner

// Policy holds the allocation heuristics. The defaults mirror the
// household rules the planner was tuned with; deployments can override
// them through configuration.
type Policy struct {
	// FormulaDaysPerTin is how many days one formula tin covers.
	FormulaDaysPerTin int
	// PouchesPerInfantPerDay is the baby food pouch consumption rate.
	PouchesPerInfantPerDay int
	// InfantBudgetReserve is the amount reserved off the top per infant
	// when estimating the per-meal budget.
	InfantBudgetReserve float64
	// SurvivalCostPerMeal is the per-meal budget below which survival
	// mode is flagged.
	SurvivalCostPerMeal float64
	// MaxLineQuantity caps how far the scale-up loop grows any one line.
	MaxLineQuantity int
	// TreatSlack, DipSlack and JuiceSlack gate the discretionary
	// additions after scale-up.
	TreatSlack float64
	DipSlack   float64
	JuiceSlack float64
	// BulkWeightGrams is the minimum pack weight considered bulk.
	BulkWeightGrams float64
	// SmallPackGrams is the pack weight under which the carb source
	// quantity is doubled for larger households or longer plans.
	SmallPackGrams float64
}

// DefaultPolicy returns the standard heuristics.
func DefaultPolicy() Policy {
	return Policy{
		FormulaDaysPerTin:      7,
		PouchesPerInfantPerDay: 2,
		InfantBudgetReserve:    20.0,
		SurvivalCostPerMeal:    1.50,
		MaxLineQuantity:        6,
		TreatSlack:             8.0,
		DipSlack:               5.0,
		JuiceSlack:             6.0,
		BulkWeightGrams:        2000,
		SmallPackGrams:         1000,
	}
}
