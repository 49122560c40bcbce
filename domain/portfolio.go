package domain

// RiskTolerance is the investor's declared risk appetite.
type RiskTolerance string

const (
	RiskConservative RiskTolerance = "conservative"
	RiskModerate     RiskTolerance = "moderate"
	RiskAggressive   RiskTolerance = "aggressive"
)

// ValidRiskTolerance reports whether s names a known risk tier.
func ValidRiskTolerance(s string) bool {
	switch RiskTolerance(s) {
	case RiskConservative, RiskModerate, RiskAggressive:
		return true
	}
	return false
}

// AssetAllocationInput is the investor profile fed to the optimizer.
// MonthlyInvestment is optional; when positive the result also carries the
// per-asset cash amounts at the recommended split.
type AssetAllocationInput struct {
	Age               int           `json:"age"`
	RiskTolerance     RiskTolerance `json:"risk_tolerance"`
	TimelineYears     int           `json:"timeline_years"`
	MonthlyInvestment float64       `json:"monthly_investment,omitempty"`
}

// AssetMix is a stock/bond/cash percentage split. The three values sum to
// 100 within 0.1.
type AssetMix struct {
	Stocks float64 `json:"stocks"`
	Bonds  float64 `json:"bonds"`
	Cash   float64 `json:"cash"`
}

// AssetAllocationResult is the optimizer output. RebalanceTrigger is the
// percentage-point drift at which the investor should rebalance.
type AssetAllocationResult struct {
	Mix              AssetMix      `json:"allocation"`
	RiskProfile      RiskTolerance `json:"risk_profile"`
	RebalanceTrigger float64       `json:"rebalance_trigger"`
	MonthlyBreakdown *AssetMix     `json:"monthly_breakdown,omitempty"`
}

// InvestmentPosition is a held investment with its purchase and current
// value, used by the tax-loss harvesting tracker.
type InvestmentPosition struct {
	Name          string  `json:"name"`
	PurchaseValue float64 `json:"purchase_value"`
	CurrentValue  float64 `json:"current_value"`
}

// HarvestOpportunity flags a position whose unrealized loss is deep enough
// to be worth selling for the tax offset.
type HarvestOpportunity struct {
	Name             string  `json:"name"`
	LossAmount       float64 `json:"loss_amount"`
	LossPct          float64 `json:"loss_pct"`
	TaxOffsetBenefit float64 `json:"tax_offset_benefit"`
	Suggestion       string  `json:"suggestion"`
}

// OpportunityCost quantifies the future value given up by skipping a
// recurring contribution.
type OpportunityCost struct {
	SkippedMonthly       float64 `json:"skipped_monthly"`
	Months               int     `json:"months"`
	AnnualReturn         float64 `json:"annual_return"`
	LostFutureValue      float64 `json:"lost_future_value"`
	LostCompoundedValue  float64 `json:"lost_compounded_value"`
	TotalOpportunityCost float64 `json:"total_opportunity_cost"`
}
