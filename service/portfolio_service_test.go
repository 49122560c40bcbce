package service

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budget-agent/domain"
	"budget-agent/repository"
)

func newPortfolioService(t *testing.T) (*PortfolioService, *repository.MemoryCache) {
	t.Helper()
	cache := repository.NewMemoryCache()
	return NewPortfolioService(cache, logrus.New()), cache
}

func TestOptimizeAllocationModerate(t *testing.T) {
	svc, _ := newPortfolioService(t)

	result := svc.OptimizeAllocation(domain.AssetAllocationInput{
		Age:           25,
		RiskTolerance: domain.RiskModerate,
		TimelineYears: 10,
	})

	// Base 60 stocks plus the +10 under-30 shift, remainder split 75/25.
	assert.Equal(t, 70.0, result.Mix.Stocks)
	assert.Equal(t, 22.5, result.Mix.Bonds)
	assert.Equal(t, 7.5, result.Mix.Cash)
	assert.Equal(t, RebalanceTriggerPct, result.RebalanceTrigger)
	assert.Nil(t, result.MonthlyBreakdown)
}

func TestOptimizeAllocationConservativeCap(t *testing.T) {
	svc, _ := newPortfolioService(t)

	for _, age := range []int{18, 25, 35, 45, 55, 65} {
		result := svc.OptimizeAllocation(domain.AssetAllocationInput{
			Age:           age,
			RiskTolerance: domain.RiskConservative,
			TimelineYears: 10,
		})
		assert.LessOrEqual(t, result.Mix.Stocks, 40.05, "age=%d", age)
	}
}

func TestOptimizeAllocationShortTimeline(t *testing.T) {
	svc, _ := newPortfolioService(t)

	result := svc.OptimizeAllocation(domain.AssetAllocationInput{
		Age:           65,
		RiskTolerance: domain.RiskAggressive,
		TimelineYears: 1,
	})

	// 80 base, -20 age shift, then the under-2-year damping.
	assert.Equal(t, 30.0, result.Mix.Stocks)
	assert.Equal(t, 30.0, result.Mix.Cash)
	assert.Equal(t, 40.0, result.Mix.Bonds)
}

func TestOptimizeAllocationAlwaysSumsTo100(t *testing.T) {
	svc, _ := newPortfolioService(t)

	tiers := []domain.RiskTolerance{domain.RiskConservative, domain.RiskModerate, domain.RiskAggressive}
	ages := []int{18, 29, 30, 39, 40, 49, 50, 59, 60, 75}
	timelines := []int{1, 2, 4, 5, 30}

	for _, tier := range tiers {
		for _, age := range ages {
			for _, timeline := range timelines {
				result := svc.OptimizeAllocation(domain.AssetAllocationInput{
					Age:           age,
					RiskTolerance: tier,
					TimelineYears: timeline,
				})
				sum := result.Mix.Stocks + result.Mix.Bonds + result.Mix.Cash
				assert.InDelta(t, 100.0, sum, 0.1,
					fmt.Sprintf("tier=%s age=%d timeline=%d", tier, age, timeline))
			}
		}
	}
}

func TestOptimizeAllocationMonthlyBreakdown(t *testing.T) {
	svc, _ := newPortfolioService(t)

	result := svc.OptimizeAllocation(domain.AssetAllocationInput{
		Age:               25,
		RiskTolerance:     domain.RiskModerate,
		TimelineYears:     10,
		MonthlyInvestment: 1000,
	})

	require.NotNil(t, result.MonthlyBreakdown)
	assert.InDelta(t, 700.0, result.MonthlyBreakdown.Stocks, 0.01)
	assert.InDelta(t, 1000.0,
		result.MonthlyBreakdown.Stocks+result.MonthlyBreakdown.Bonds+result.MonthlyBreakdown.Cash, 0.01)
}

func TestOptimizeAllocationIsCached(t *testing.T) {
	svc, cache := newPortfolioService(t)

	input := domain.AssetAllocationInput{Age: 40, RiskTolerance: domain.RiskModerate, TimelineYears: 10}

	first := svc.OptimizeAllocation(input)
	assert.Equal(t, 1, cache.Len())

	second := svc.OptimizeAllocation(input)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.Len())
}

func TestHarvestOpportunities(t *testing.T) {
	svc, _ := newPortfolioService(t)

	positions := []domain.InvestmentPosition{
		{Name: "tech fund", PurchaseValue: 10000, CurrentValue: 8500},
		{Name: "index fund", PurchaseValue: 10000, CurrentValue: 9800},
		{Name: "growth fund", PurchaseValue: 10000, CurrentValue: 12000},
	}

	opportunities := svc.HarvestOpportunities(positions)
	require.Len(t, opportunities, 1)

	opp := opportunities[0]
	assert.Equal(t, "tech fund", opp.Name)
	assert.Equal(t, 1500.0, opp.LossAmount)
	assert.Equal(t, 15.0, opp.LossPct)
	assert.InDelta(t, 450.0, opp.TaxOffsetBenefit, 0.01)
}

func TestHarvestOpportunitiesNoneQualify(t *testing.T) {
	svc, _ := newPortfolioService(t)

	opportunities := svc.HarvestOpportunities([]domain.InvestmentPosition{
		{Name: "steady fund", PurchaseValue: 10000, CurrentValue: 9700},
	})
	assert.Nil(t, opportunities)
}

func TestOpportunityCostZeroReturn(t *testing.T) {
	svc, _ := newPortfolioService(t)

	result := svc.OpportunityCost(500, 12, 0)
	assert.Equal(t, 6000.0, result.LostFutureValue)
	assert.Equal(t, 500.0, result.LostCompoundedValue)
	assert.Equal(t, 6000.0, result.TotalOpportunityCost)
}

func TestOpportunityCostWithReturn(t *testing.T) {
	svc, _ := newPortfolioService(t)

	result := svc.OpportunityCost(500, 12, 12)
	// FV of the annuity exceeds the simple sum once returns compound.
	assert.Greater(t, result.LostFutureValue, 6000.0)
	assert.Equal(t, result.LostFutureValue, result.TotalOpportunityCost)
}
