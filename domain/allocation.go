package domain

// Category identifies one of the four fixed budget categories. The engine
// deliberately models the budget as a closed record instead of an open map so
// that category-specific rules (floors, donor priority) stay exhaustive.
type Category string

const (
	CategorySavings     Category = "savings"
	CategoryInvestments Category = "investments"
	CategoryPersonal    Category = "personal"
	CategoryMisc        Category = "misc"
)

// Categories lists every budget category in display and scoring order.
// Savings is the highest-priority destination, misc the first donor.
var Categories = []Category{
	CategorySavings,
	CategoryInvestments,
	CategoryPersonal,
	CategoryMisc,
}

// Allocation is a monthly budget split across the four fixed categories.
// At creation the amounts sum to the total income; later adjustments
// (the reallocation planner) must preserve that total.
type Allocation struct {
	Savings     float64 `json:"savings"`
	Investments float64 `json:"investments"`
	Personal    float64 `json:"personal"`
	Misc        float64 `json:"misc"`
}

// Amount returns the amount held in the given category.
func (a Allocation) Amount(c Category) float64 {
	switch c {
	case CategorySavings:
		return a.Savings
	case CategoryInvestments:
		return a.Investments
	case CategoryPersonal:
		return a.Personal
	case CategoryMisc:
		return a.Misc
	}
	return 0
}

// SetAmount overwrites the amount held in the given category.
func (a *Allocation) SetAmount(c Category, v float64) {
	switch c {
	case CategorySavings:
		a.Savings = v
	case CategoryInvestments:
		a.Investments = v
	case CategoryPersonal:
		a.Personal = v
	case CategoryMisc:
		a.Misc = v
	}
}

// Total returns the sum across all categories.
func (a Allocation) Total() float64 {
	return a.Savings + a.Investments + a.Personal + a.Misc
}

// Discretionary returns the personal plus misc portion of the budget.
func (a Allocation) Discretionary() float64 {
	return a.Personal + a.Misc
}

// BudgetInput carries the income and percentage split used to build an
// Allocation. Percentages are expected to sum to 100 within 0.01; the
// presentation layer enforces that before the engine is called.
type BudgetInput struct {
	TotalAmount   float64 `json:"total_amount"`
	SavingsPct    float64 `json:"savings_pct"`
	InvestmentPct float64 `json:"investment_pct"`
	PersonalPct   float64 `json:"personal_pct"`
	MiscPct       float64 `json:"misc_pct"`
}

// Period names a projection horizon measured in months.
type Period struct {
	Name   string
	Months int
}

// ProjectedAllocation is an Allocation scaled out to a period's month count.
type ProjectedAllocation struct {
	Period     string     `json:"period"`
	Months     int        `json:"months"`
	Allocation Allocation `json:"allocation"`
}
