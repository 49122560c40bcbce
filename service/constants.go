package service

const (
	// CategoryFloorPct is the share of total income every category keeps no
	// matter what: the reallocation planner never draws misc or personal
	// below 5% of income.
	CategoryFloorPct = 0.05

	// SurplusUsagePct marks a category as a surplus donor when less than
	// this share of its allocation was actually spent.
	SurplusUsagePct = 85.0
	// EfficiencyUsagePct triggers a permanent allocation-cut tip.
	EfficiencyUsagePct = 70.0

	// Conflict-resolver weights. They sum to 1.
	UrgencyWeight     = 0.4
	ROIWeight         = 0.3
	FeasibilityWeight = 0.3

	MinGoalsForResolution = 2
	MinMonthsTracked      = 2
	MinExpenseHistory     = 3
	MinIncomeHistory      = 2

	// RebalanceTriggerPct is the drift, in percentage points, at which the
	// optimizer tells the investor to rebalance.
	RebalanceTriggerPct = 5.0

	// HarvestLossPct flags positions down more than 5% from purchase.
	HarvestLossPct = 5.0
	// HarvestTaxBracket is the assumed marginal bracket for offset math.
	HarvestTaxBracket = 0.3

	// SpikeFactor marks a month as an expense spike past 150% of the mean.
	SpikeFactor = 1.5
	// HighVolatilityPct separates the 70% safe-budget rule from the 85% one.
	HighVolatilityPct = 30.0

	// DefaultSavingsThreshold is the minimum budget win swept by the
	// micro-savings triggers when the caller supplies no threshold.
	DefaultSavingsThreshold = 50.0

	// IncomeWindowMonths caps the income-volatility lookback.
	IncomeWindowMonths = 6
)
