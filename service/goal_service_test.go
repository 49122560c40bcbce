package service

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budget-agent/domain"
	"budget-agent/repository"
)

func newGoalService(t *testing.T) (*GoalService, *repository.MemoryCache) {
	t.Helper()
	cache := repository.NewMemoryCache()
	advisor := NewAdvisorService(nil)
	return NewGoalService(advisor, cache, logrus.New()), cache
}

func TestSavingsRequired(t *testing.T) {
	svc, _ := newGoalService(t)

	assert.Equal(t, 10000.0, svc.SavingsRequired(120000, 12))
	assert.InDelta(t, 1666.67, svc.SavingsRequired(10000, 6), 0.01)
}

func TestInvestmentRequiredZeroReturnIsLinear(t *testing.T) {
	svc, _ := newGoalService(t)

	assert.Equal(t, 10000.0, svc.InvestmentRequired(120000, 12, 0))
	assert.Equal(t, svc.SavingsRequired(60000, 24), svc.InvestmentRequired(60000, 24, 0))
}

func TestInvestmentRequiredAnnuity(t *testing.T) {
	svc, _ := newGoalService(t)

	// PMT = 120000 * 0.01 / (1.01^12 - 1)
	got := svc.InvestmentRequired(120000, 12, 12)
	assert.InDelta(t, 9461.85, got, 0.01)

	// Compounding lowers the required payment below the linear case.
	assert.Less(t, got, 10000.0)
}

func TestMonthlyRequired(t *testing.T) {
	svc, _ := newGoalService(t)

	linear := svc.MonthlyRequired(domain.Goal{TargetAmount: 12000, TimelineMonths: 12})
	assert.Equal(t, 1000.0, linear)

	compound := svc.MonthlyRequired(domain.Goal{TargetAmount: 12000, TimelineMonths: 12, ExpectedReturn: 12})
	assert.Less(t, compound, linear)
}

func TestBuildReallocationPlanCoversShortfall(t *testing.T) {
	svc, _ := newGoalService(t)

	allocation := domain.Allocation{Savings: 1000, Investments: 1000, Personal: 3000, Misc: 2000}
	plan := svc.BuildReallocationPlan(allocation, 1000, 500, 10000)

	require.NotNil(t, plan)
	// Misc alone can fund both shortfalls without touching personal.
	assert.Equal(t, 2000.0, plan.Savings)
	assert.Equal(t, 1500.0, plan.Investments)
	assert.Equal(t, 3000.0, plan.Personal)
	assert.Equal(t, 500.0, plan.Misc)
	assert.InDelta(t, allocation.Total(), plan.Total(), 0.01)
}

func TestBuildReallocationPlanRespectsFloors(t *testing.T) {
	svc, _ := newGoalService(t)

	// Both donors sit 100 above the 500 floor, so only 200 can move even
	// though the shortfall is 1000. A partial plan is still returned.
	allocation := domain.Allocation{Savings: 1000, Investments: 1000, Personal: 600, Misc: 600}
	plan := svc.BuildReallocationPlan(allocation, 1000, 0, 10000)

	require.NotNil(t, plan)
	assert.Equal(t, 1200.0, plan.Savings)
	assert.Equal(t, 500.0, plan.Personal)
	assert.Equal(t, 500.0, plan.Misc)
	assert.InDelta(t, allocation.Total(), plan.Total(), 0.01)
}

func TestBuildReallocationPlanNilWhenNothingToFree(t *testing.T) {
	svc, _ := newGoalService(t)

	allocation := domain.Allocation{Savings: 1000, Investments: 1000, Personal: 500, Misc: 500}
	plan := svc.BuildReallocationPlan(allocation, 1000, 0, 10000)

	assert.Nil(t, plan)
}

func TestAnalyzeCombinedGoalsMet(t *testing.T) {
	svc, _ := newGoalService(t)

	result := svc.AnalyzeCombinedGoals(domain.CombinedGoalsInput{
		TotalIncome:      100000,
		Allocation:       domain.Allocation{Savings: 25000, Investments: 20000, Personal: 40000, Misc: 15000},
		SavingsTarget:    120000,
		SavingsMonths:    12,
		InvestmentTarget: 120000,
		InvestmentMonths: 12,
		AnnualReturn:     12,
	})

	assert.True(t, result.GoalsMet)
	assert.Zero(t, result.TotalShortfall)
	assert.Nil(t, result.Plan)
	assert.GreaterOrEqual(t, result.SavingsGap, 0.0)
	assert.GreaterOrEqual(t, result.InvestmentGap, 0.0)
}

func TestAnalyzeCombinedGoalsShortfall(t *testing.T) {
	svc, _ := newGoalService(t)

	result := svc.AnalyzeCombinedGoals(domain.CombinedGoalsInput{
		TotalIncome:      50000,
		Allocation:       domain.Allocation{Savings: 5000, Investments: 5000, Personal: 25000, Misc: 15000},
		SavingsTarget:    120000,
		SavingsMonths:    12,
		InvestmentTarget: 120000,
		InvestmentMonths: 12,
		AnnualReturn:     12,
	})

	assert.False(t, result.GoalsMet)
	assert.Greater(t, result.TotalShortfall, 0.0)
	require.NotNil(t, result.Plan)
	assert.InDelta(t, result.CurrentAllocation.Total(), result.Plan.Total(), 0.01)
	assert.Greater(t, result.Plan.Savings, result.CurrentAllocation.Savings)
}

func TestAnalyzeCombinedGoalsIsCached(t *testing.T) {
	svc, cache := newGoalService(t)

	input := domain.CombinedGoalsInput{
		TotalIncome:      100000,
		Allocation:       domain.Allocation{Savings: 20000, Investments: 20000, Personal: 45000, Misc: 15000},
		SavingsTarget:    120000,
		SavingsMonths:    12,
		InvestmentTarget: 120000,
		InvestmentMonths: 12,
		AnnualReturn:     12,
	}

	first := svc.AnalyzeCombinedGoals(input)
	assert.Equal(t, 1, cache.Len())

	second := svc.AnalyzeCombinedGoals(input)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.Len())
}
