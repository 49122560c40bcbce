package service

import (
	"math"

	"github.com/sirupsen/logrus"

	"budget-agent/domain"
	"budget-agent/repository"
)

// GoalService computes the monthly contribution a goal needs and reconciles
// goal shortfalls against an existing budget.
type GoalService struct {
	advisor *AdvisorService
	cache   repository.CacheRepository
	log     *logrus.Logger
}

func NewGoalService(
	advisor *AdvisorService,
	cache repository.CacheRepository,
	log *logrus.Logger,
) *GoalService {
	return &GoalService{advisor: advisor, cache: cache, log: log}
}

// SavingsRequired is the linear monthly contribution toward a target.
// The caller guarantees months > 0.
func (s *GoalService) SavingsRequired(target float64, months int) float64 {
	return target / float64(months)
}

// InvestmentRequired solves the future-value annuity for its payment:
//
//	PMT = FV * r / ((1+r)^n - 1)
//
// with r the monthly rate derived from the annual percentage. At r = 0 it
// reduces to the linear case. Compounding is monthly, never annual.
func (s *GoalService) InvestmentRequired(target float64, months int, annualReturnPct float64) float64 {
	r := (annualReturnPct / 100) / 12
	n := float64(months)

	if r == 0 {
		return target / n
	}
	return target * r / (math.Pow(1+r, n) - 1)
}

// MonthlyRequired derives the monthly contribution for a goal, choosing the
// annuity formula when the goal carries an expected return.
func (s *GoalService) MonthlyRequired(g domain.Goal) float64 {
	if g.ExpectedReturn > 0 {
		return s.InvestmentRequired(g.TargetAmount, g.TimelineMonths, g.ExpectedReturn)
	}
	return s.SavingsRequired(g.TargetAmount, g.TimelineMonths)
}

// BuildReallocationPlan frees funds from misc first, then personal, each
// protected by a floor of 5% of total income, and applies the freed amount
// to the savings shortfall before the investment shortfall. The returned
// plan always totals the same as the input allocation.
//
// A plan is returned whenever any reduction happened, even when the freed
// amount does not fully cover the combined shortfall; nil means no category
// could be reduced at all. Callers that need full coverage must check the
// resulting savings/investment amounts themselves.
func (s *GoalService) BuildReallocationPlan(
	allocation domain.Allocation,
	savingsShortfall float64,
	investmentShortfall float64,
	totalIncome float64,
) *domain.Allocation {
	plan := allocation
	totalShortfall := savingsShortfall + investmentShortfall
	remaining := totalShortfall

	floor := totalIncome * CategoryFloorPct
	for _, category := range []domain.Category{domain.CategoryMisc, domain.CategoryPersonal} {
		if remaining <= 0 {
			break
		}
		available := math.Max(0, allocation.Amount(category)-floor)
		reduction := math.Min(available, remaining)
		if reduction > 0 {
			plan.SetAmount(category, plan.Amount(category)-reduction)
			remaining -= reduction
		}
	}

	if remaining < totalShortfall {
		freed := totalShortfall - remaining

		if savingsShortfall > 0 {
			toSavings := math.Min(savingsShortfall, freed)
			plan.Savings += toSavings
			freed -= toSavings
		}
		if investmentShortfall > 0 && freed > 0 {
			plan.Investments += math.Min(investmentShortfall, freed)
		}
		return &plan
	}

	return nil
}

// AnalyzeCombinedGoals reconciles a savings goal and an investment goal
// against the current budget in one pass: required monthlies, gaps, a
// reallocation plan when there is a shortfall, and the advisory analysis.
func (s *GoalService) AnalyzeCombinedGoals(input domain.CombinedGoalsInput) domain.CombinedGoalsResult {
	key := cacheKey("combined-goals", input)
	if cached, ok := lookupCached[domain.CombinedGoalsResult](s.cache, key); ok {
		return cached
	}

	requiredSavings := s.SavingsRequired(input.SavingsTarget, input.SavingsMonths)
	requiredInvestment := s.InvestmentRequired(
		input.InvestmentTarget,
		input.InvestmentMonths,
		input.AnnualReturn,
	)

	savingsGap := input.Allocation.Savings - requiredSavings
	investmentGap := input.Allocation.Investments - requiredInvestment

	var totalShortfall float64
	if savingsGap < 0 {
		totalShortfall += -savingsGap
	}
	if investmentGap < 0 {
		totalShortfall += -investmentGap
	}

	var plan *domain.Allocation
	if totalShortfall > 0 {
		plan = s.BuildReallocationPlan(
			input.Allocation,
			shortfallOf(savingsGap),
			shortfallOf(investmentGap),
			input.TotalIncome,
		)
	}

	result := domain.CombinedGoalsResult{
		RequiredMonthlySavings:    requiredSavings,
		RequiredMonthlyInvestment: requiredInvestment,
		CurrentAllocation:         input.Allocation,
		SavingsGap:                savingsGap,
		InvestmentGap:             investmentGap,
		TotalShortfall:            totalShortfall,
		GoalsMet:                  totalShortfall == 0,
		Plan:                      plan,
		Analysis:                  s.advisor.Analyze(input.TotalIncome, input.Allocation, savingsGap, investmentGap),
	}

	storeCached(s.cache, s.log, key, result)
	return result
}

// shortfallOf converts a gap to the shortfall magnitude: the absolute value
// for negative gaps, zero otherwise.
func shortfallOf(gap float64) float64 {
	if gap < 0 {
		return -gap
	}
	return 0
}
