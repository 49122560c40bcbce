package http

import (
	"errors"
	"fmt"
	"math"

	"budget-agent/domain"
)

// Request types mirror the public API payloads. All input validation lives
// here, at the presentation boundary: the engine assumes validated input.

const percentSumTolerance = 0.01

// BudgetAllocationRequest splits a monthly income by percentages. MiscPct
// defaults to 15 when omitted.
type BudgetAllocationRequest struct {
	TotalAmount   float64  `json:"total_amount"`
	SavingsPct    float64  `json:"savings_pct"`
	InvestmentPct float64  `json:"investment_pct"`
	PersonalPct   float64  `json:"personal_pct"`
	MiscPct       *float64 `json:"misc_pct"`
}

func (r *BudgetAllocationRequest) Validate() error {
	if r.TotalAmount <= 0 {
		return errors.New("total_amount must be positive")
	}
	if r.MiscPct == nil {
		misc := 15.0
		r.MiscPct = &misc
	}
	for _, pct := range []float64{r.SavingsPct, r.InvestmentPct, r.PersonalPct, *r.MiscPct} {
		if pct < 0 || pct > 100 {
			return errors.New("percentages must be between 0 and 100")
		}
	}
	sum := r.SavingsPct + r.InvestmentPct + r.PersonalPct + *r.MiscPct
	if math.Abs(sum-100) > percentSumTolerance {
		return fmt.Errorf("percentages must sum to 100%%, current sum: %g%%", sum)
	}
	return nil
}

// Input converts the request into the engine input shape.
func (r *BudgetAllocationRequest) Input() domain.BudgetInput {
	return domain.BudgetInput{
		TotalAmount:   r.TotalAmount,
		SavingsPct:    r.SavingsPct,
		InvestmentPct: r.InvestmentPct,
		PersonalPct:   r.PersonalPct,
		MiscPct:       *r.MiscPct,
	}
}

type SavingsGoalRequest struct {
	TargetAmount float64 `json:"target_amount"`
	Months       int     `json:"months"`
}

func (r *SavingsGoalRequest) Validate() error {
	if r.TargetAmount <= 0 || r.Months <= 0 {
		return errors.New("target amount and months must be positive")
	}
	return nil
}

type InvestmentGoalRequest struct {
	TargetAmount    float64 `json:"target_amount"`
	Months          int     `json:"months"`
	AnnualReturnPct float64 `json:"annual_return_pct"`
}

func (r *InvestmentGoalRequest) Validate() error {
	if r.TargetAmount <= 0 || r.Months <= 0 {
		return errors.New("target amount and months must be positive")
	}
	if r.AnnualReturnPct < 0 {
		return errors.New("annual_return_pct must not be negative")
	}
	return nil
}

type CombinedGoalsRequest struct {
	TotalIncome      float64           `json:"total_income"`
	Allocation       domain.Allocation `json:"allocation"`
	SavingsTarget    float64           `json:"savings_target"`
	SavingsMonths    int               `json:"savings_months"`
	InvestmentTarget float64           `json:"investment_target"`
	InvestmentMonths int               `json:"investment_months"`
	AnnualReturn     float64           `json:"annual_return"`
}

func (r *CombinedGoalsRequest) Validate() error {
	if r.TotalIncome <= 0 {
		return errors.New("total_income must be positive")
	}
	if r.SavingsTarget <= 0 || r.InvestmentTarget <= 0 {
		return errors.New("goal targets must be positive")
	}
	if r.SavingsMonths <= 0 || r.InvestmentMonths <= 0 {
		return errors.New("goal months must be positive")
	}
	if r.AnnualReturn < 0 {
		return errors.New("annual_return must not be negative")
	}
	return nil
}

type AssetAllocationRequest struct {
	Age               int     `json:"age"`
	RiskTolerance     string  `json:"risk_tolerance"`
	TimelineYears     int     `json:"timeline_years"`
	MonthlyInvestment float64 `json:"monthly_investment"`
}

func (r *AssetAllocationRequest) Validate() error {
	if r.Age < 18 {
		return errors.New("age must be at least 18")
	}
	if !domain.ValidRiskTolerance(r.RiskTolerance) {
		return errors.New("risk_tolerance must be conservative, moderate or aggressive")
	}
	if r.TimelineYears <= 0 {
		return errors.New("timeline_years must be positive")
	}
	if r.MonthlyInvestment < 0 {
		return errors.New("monthly_investment must not be negative")
	}
	return nil
}

type DynamicReallocationRequest struct {
	Allocation     domain.Allocation `json:"allocation"`
	ActualSpending domain.Allocation `json:"actual_spending"`
	MonthsTracked  int               `json:"months_tracked"`
}

func (r *DynamicReallocationRequest) Validate() error {
	if r.MonthsTracked < 2 {
		return errors.New("months_tracked must be at least 2")
	}
	return nil
}

// GoalRequest is one goal as submitted by the caller; the monthly
// requirement is derived server-side before scoring.
type GoalRequest struct {
	Name           string  `json:"name"`
	TargetAmount   float64 `json:"target_amount"`
	TimelineMonths int     `json:"timeline_months"`
	ExpectedReturn float64 `json:"expected_return"`
}

func (r *GoalRequest) Validate() error {
	if r.TargetAmount <= 0 {
		return fmt.Errorf("goal %q: target_amount must be positive", r.Name)
	}
	if r.TimelineMonths <= 0 {
		return fmt.Errorf("goal %q: timeline_months must be positive", r.Name)
	}
	if r.ExpectedReturn < 0 {
		return fmt.Errorf("goal %q: expected_return must not be negative", r.Name)
	}
	return nil
}

type GoalConflictRequest struct {
	Goals             []GoalRequest     `json:"goals"`
	MonthlyIncome     float64           `json:"monthly_income"`
	CurrentAllocation domain.Allocation `json:"current_allocation"`
}

func (r *GoalConflictRequest) Validate() error {
	if len(r.Goals) < 2 {
		return errors.New("at least 2 goals are required")
	}
	if r.MonthlyIncome <= 0 {
		return errors.New("monthly_income must be positive")
	}
	for i := range r.Goals {
		if err := r.Goals[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

type MarketConditionsRequest struct {
	Status     string `json:"status"`
	Volatility string `json:"volatility"`
}

type MarketAdvisorRequest struct {
	CurrentMarketConditions MarketConditionsRequest `json:"current_market_conditions"`
	InvestmentAllocation    float64                 `json:"investment_allocation"`
	RiskTolerance           string                  `json:"risk_tolerance"`
}

func (r *MarketAdvisorRequest) Validate() error {
	if !domain.ValidMarketStatus(r.CurrentMarketConditions.Status) {
		return errors.New("status must be one of dip, correction, neutral, stable, peak, overvalued")
	}
	if !domain.ValidVolatility(r.CurrentMarketConditions.Volatility) {
		return errors.New("volatility must be one of low, medium, high")
	}
	if r.InvestmentAllocation <= 0 {
		return errors.New("investment_allocation must be positive")
	}
	if !domain.ValidRiskTolerance(r.RiskTolerance) {
		return errors.New("risk_tolerance must be conservative, moderate or aggressive")
	}
	return nil
}

type InflationAdjusterRequest struct {
	Goals                []GoalRequest `json:"goals"`
	CurrentInflationRate float64       `json:"current_inflation_rate"`
}

func (r *InflationAdjusterRequest) Validate() error {
	if len(r.Goals) == 0 {
		return errors.New("at least one goal is required")
	}
	if r.CurrentInflationRate <= 0 {
		return errors.New("current_inflation_rate must be positive")
	}
	for i := range r.Goals {
		if err := r.Goals[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

type ExpenseForecastRequest struct {
	MonthlyExpensesHistory []float64 `json:"monthly_expenses_history"`
}

func (r *ExpenseForecastRequest) Validate() error {
	if len(r.MonthlyExpensesHistory) < 3 {
		return errors.New("at least 3 months of expense history are required")
	}
	return nil
}

type IncomeVolatilityRequest struct {
	IncomeHistory []float64 `json:"income_history"`
}

func (r *IncomeVolatilityRequest) Validate() error {
	if len(r.IncomeHistory) < 2 {
		return errors.New("at least 2 months of income history are required")
	}
	for _, income := range r.IncomeHistory {
		if income <= 0 {
			return errors.New("income values must be positive")
		}
	}
	return nil
}

type TaxHarvestingRequest struct {
	Investments []domain.InvestmentPosition `json:"investments"`
}

func (r *TaxHarvestingRequest) Validate() error {
	for _, inv := range r.Investments {
		if inv.PurchaseValue <= 0 || inv.CurrentValue <= 0 {
			return fmt.Errorf("investment %q: values must be positive", inv.Name)
		}
	}
	return nil
}

type OpportunityCostRequest struct {
	SkippedAmount   float64 `json:"skipped_amount"`
	Months          int     `json:"months"`
	AnnualReturnPct float64 `json:"annual_return_pct"`
}

func (r *OpportunityCostRequest) Validate() error {
	if r.SkippedAmount <= 0 || r.Months <= 0 {
		return errors.New("skipped_amount and months must be positive")
	}
	if r.AnnualReturnPct < 0 {
		return errors.New("annual_return_pct must not be negative")
	}
	return nil
}

// MicroSavingsRequest defaults the threshold to 50 when omitted.
type MicroSavingsRequest struct {
	Transactions     []domain.BudgetWin `json:"transactions"`
	SavingsThreshold *float64           `json:"savings_threshold"`
}

func (r *MicroSavingsRequest) Validate() error {
	if r.SavingsThreshold == nil {
		threshold := 50.0
		r.SavingsThreshold = &threshold
	}
	if *r.SavingsThreshold <= 0 {
		return errors.New("savings_threshold must be positive")
	}
	return nil
}

// StreakTrackingRequest defaults the goal type to budget_adherence.
type StreakTrackingRequest struct {
	MonthlyPerformance []domain.MonthlyPerformance `json:"monthly_performance"`
	GoalType           string                      `json:"goal_type"`
}

func (r *StreakTrackingRequest) Validate() error {
	if len(r.MonthlyPerformance) == 0 {
		return errors.New("at least 1 month of performance data is required")
	}
	if r.GoalType == "" {
		r.GoalType = "budget_adherence"
	}
	return nil
}

// BankFeedRequest defaults the variance to 0.1 when omitted.
type BankFeedRequest struct {
	MonthlyIncome float64           `json:"monthly_income"`
	Allocation    domain.Allocation `json:"allocation"`
	Variance      *float64          `json:"variance"`
}

func (r *BankFeedRequest) Validate() error {
	if r.MonthlyIncome <= 0 {
		return errors.New("monthly_income must be positive")
	}
	if r.Variance == nil {
		variance := 0.1
		r.Variance = &variance
	}
	if *r.Variance < 0 || *r.Variance > 1 {
		return errors.New("variance must be between 0 and 1")
	}
	return nil
}
