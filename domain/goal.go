package domain

// Goal is a savings or investment target. MonthlyRequired is derived once
// from the other fields and carried through scoring and inflation
// adjustment; it is never recomputed implicitly.
type Goal struct {
	Name            string  `json:"name"`
	TargetAmount    float64 `json:"target_amount"`
	TimelineMonths  int     `json:"timeline_months"`
	ExpectedReturn  float64 `json:"expected_return"`
	MonthlyRequired float64 `json:"monthly_required"`
}

// ScoredGoal augments a Goal with the conflict-resolver component scores.
// Each component score is on a 0-10 scale.
type ScoredGoal struct {
	Goal
	UrgencyScore     float64 `json:"urgency_score"`
	ROIScore         float64 `json:"roi_score"`
	FeasibilityScore float64 `json:"feasibility_score"`
	TotalScore       float64 `json:"total_score"`
	Priority         string  `json:"priority"`
}

// AdjustedGoal is a goal whose target has been grown to its
// inflation-adjusted future value, with the monthly requirement recomputed
// against the new target.
type AdjustedGoal struct {
	Name            string  `json:"name"`
	OriginalTarget  float64 `json:"original_target"`
	AdjustedTarget  float64 `json:"adjusted_target"`
	InflationImpact float64 `json:"inflation_impact"`
	OriginalMonthly float64 `json:"original_monthly"`
	AdjustedMonthly float64 `json:"adjusted_monthly"`
	MonthlyIncrease float64 `json:"monthly_increase"`
	TimelineYears   float64 `json:"timeline_years"`
	InflationRate   float64 `json:"inflation_rate"`
}

// CombinedGoalsInput pairs a savings goal and an investment goal against an
// existing budget so both can be reconciled in one pass.
type CombinedGoalsInput struct {
	TotalIncome      float64
	Allocation       Allocation
	SavingsTarget    float64
	SavingsMonths    int
	InvestmentTarget float64
	InvestmentMonths int
	AnnualReturn     float64
}

// CombinedGoalsResult reports both required monthlies, the gaps against the
// current allocation (negative means shortfall), and a reallocation plan
// when one could be built. Plan is nil when no reduction was possible.
type CombinedGoalsResult struct {
	RequiredMonthlySavings    float64         `json:"required_monthly_savings"`
	RequiredMonthlyInvestment float64         `json:"required_monthly_investment"`
	CurrentAllocation         Allocation      `json:"current_allocation"`
	SavingsGap                float64         `json:"savings_gap"`
	InvestmentGap             float64         `json:"investment_gap"`
	TotalShortfall            float64         `json:"total_shortfall"`
	GoalsMet                  bool            `json:"goals_met"`
	Plan                      *Allocation     `json:"new_allocation,omitempty"`
	Analysis                  AdvisorAnalysis `json:"analysis"`
}

// HealthReport scores an allocation 0-100 from its savings, investment and
// discretionary ratios and buckets the score into a rating.
type HealthReport struct {
	Score              int     `json:"score"`
	Rating             string  `json:"rating"`
	SavingsRatio       float64 `json:"savings_ratio"`
	InvestmentRatio    float64 `json:"investment_ratio"`
	DiscretionaryRatio float64 `json:"discretionary_ratio"`
}

// AdvisorAnalysis is the rule-driven advisory output. The strings are
// presentation text; only the conditions that trigger them are contractual.
type AdvisorAnalysis struct {
	Health          HealthReport `json:"allocation_health"`
	Recommendations []string     `json:"recommendations"`
	IdentifiedLeaks []string     `json:"identified_leaks"`
	PriorityActions []string     `json:"priority_actions"`
	Narrative       string       `json:"narrative,omitempty"`
}
