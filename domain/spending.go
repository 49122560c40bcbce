package domain

// SuggestionType classifies a reallocation suggestion.
type SuggestionType string

const (
	SuggestionDeficitCoverage     SuggestionType = "deficit_coverage"
	SuggestionSurplusReallocation SuggestionType = "surplus_reallocation"
	SuggestionDeficitWarning      SuggestionType = "deficit_warning"
	SuggestionEfficiencyTip       SuggestionType = "efficiency_tip"
)

// Suggestion is one piece of reallocation advice for a category, produced by
// comparing allocated amounts against actual spending.
type Suggestion struct {
	Type      SuggestionType `json:"type"`
	Category  Category       `json:"category"`
	Allocated float64        `json:"allocated"`
	Spent     float64        `json:"spent"`
	Action    string         `json:"action"`
	Priority  string         `json:"priority"`
}

// ExpensePrediction is one forecast entry: a pattern detected in the
// spending history and the amount it implies.
type ExpensePrediction struct {
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Probability float64 `json:"probability"`
	Timeframe   string  `json:"timeframe"`
	Suggestion  string  `json:"suggestion"`
}

// IncomeBuffer is the smoothed-budget recommendation derived from income
// history volatility.
type IncomeBuffer struct {
	AvgIncome      float64 `json:"avg_income"`
	VolatilityPct  float64 `json:"volatility_pct"`
	SafeBudget     float64 `json:"safe_budget"`
	BufferNeeded   float64 `json:"buffer_needed"`
	Recommendation string  `json:"recommendation"`
}

// BudgetWin records a category that came in under budget for a period.
type BudgetWin struct {
	Category string  `json:"category"`
	Budgeted float64 `json:"budgeted"`
	Actual   float64 `json:"actual"`
}

// MicroSavingsTrigger is a budget win large enough to sweep into savings.
type MicroSavingsTrigger struct {
	Category string  `json:"category"`
	Budgeted float64 `json:"budgeted"`
	Actual   float64 `json:"actual"`
	Saved    float64 `json:"saved"`
	Action   string  `json:"action"`
}

// MicroSavingsResult aggregates all sweepable budget wins for a period.
type MicroSavingsResult struct {
	Triggers          []MicroSavingsTrigger `json:"triggers"`
	TotalMicroSavings float64               `json:"total_micro_savings"`
}

// MonthlyPerformance records whether one month met its discipline goal.
type MonthlyPerformance struct {
	Success bool `json:"success"`
}

// StreakReport summarizes budget-discipline streaks over tracked months.
type StreakReport struct {
	CurrentStreak int     `json:"current_streak"`
	LongestStreak int     `json:"longest_streak"`
	SuccessRate   float64 `json:"success_rate"`
	TotalMonths   int     `json:"total_months"`
	Milestone     string  `json:"milestone,omitempty"`
	GoalType      string  `json:"goal_type"`
}
