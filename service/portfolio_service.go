package service

import (
	"math"

	"github.com/sirupsen/logrus"

	"budget-agent/domain"
	"budget-agent/repository"
)

// assetBase is the starting stock/bond/cash split for a risk tier.
type assetBase struct {
	stocks float64
	bonds  float64
	cash   float64
}

// riskProfileBases is an explicit lookup table so every risk tier is
// accounted for; it is never derived at runtime.
var riskProfileBases = map[domain.RiskTolerance]assetBase{
	domain.RiskConservative: {stocks: 30, bonds: 55, cash: 15},
	domain.RiskModerate:     {stocks: 60, bonds: 30, cash: 10},
	domain.RiskAggressive:   {stocks: 80, bonds: 15, cash: 5},
}

// PortfolioService recommends asset splits and analyzes held positions.
type PortfolioService struct {
	cache repository.CacheRepository
	log   *logrus.Logger
}

func NewPortfolioService(cache repository.CacheRepository, log *logrus.Logger) *PortfolioService {
	return &PortfolioService{cache: cache, log: log}
}

// OptimizeAllocation derives a stock/bond/cash split from the investor's
// risk tier, age and timeline. The steps apply strictly in order: risk-tier
// base, age shift (non-conservative only), timeline damping, conservative
// re-cap, final normalization to 100. Percentages are reported to one
// decimal place and always sum to 100 within 0.1.
func (s *PortfolioService) OptimizeAllocation(input domain.AssetAllocationInput) domain.AssetAllocationResult {
	key := cacheKey("asset-allocation", input)
	if cached, ok := lookupCached[domain.AssetAllocationResult](s.cache, key); ok {
		return cached
	}

	base, ok := riskProfileBases[input.RiskTolerance]
	if !ok {
		base = riskProfileBases[domain.RiskModerate]
	}
	stocks, bonds, cash := base.stocks, base.bonds, base.cash

	ageAdj := ageAdjustment(input.Age)

	// Younger investors can carry more equity; conservative profiles skip
	// the shift entirely.
	if input.RiskTolerance != domain.RiskConservative {
		stocks = math.Max(20, math.Min(85, stocks+ageAdj))
		remaining := 100 - stocks
		bonds = remaining * 0.75
		cash = remaining * 0.25
	}

	// Short timelines force capital preservation regardless of risk tier.
	if input.TimelineYears < 2 {
		stocks = math.Max(10, stocks-30)
		cash = math.Max(30, cash+20)
		bonds = 100 - stocks - cash
	} else if input.TimelineYears < 5 {
		stocks = math.Max(20, stocks-15)
		cash = math.Max(15, cash+10)
		bonds = 100 - stocks - cash
	}

	// Conservative stays capped at 40% equity no matter what came before.
	if input.RiskTolerance == domain.RiskConservative {
		stocks = math.Min(stocks, 40)
		remaining := 100 - stocks
		bonds = remaining * 0.7
		cash = remaining * 0.3
	}

	if total := stocks + bonds + cash; total != 100 {
		stocks = stocks / total * 100
		bonds = bonds / total * 100
		cash = cash / total * 100
	}

	mix := domain.AssetMix{
		Stocks: roundTo1Decimal(stocks),
		Bonds:  roundTo1Decimal(bonds),
		Cash:   roundTo1Decimal(cash),
	}

	result := domain.AssetAllocationResult{
		Mix:              mix,
		RiskProfile:      input.RiskTolerance,
		RebalanceTrigger: RebalanceTriggerPct,
	}

	if input.MonthlyInvestment > 0 {
		result.MonthlyBreakdown = &domain.AssetMix{
			Stocks: mix.Stocks / 100 * input.MonthlyInvestment,
			Bonds:  mix.Bonds / 100 * input.MonthlyInvestment,
			Cash:   mix.Cash / 100 * input.MonthlyInvestment,
		}
	}

	storeCached(s.cache, s.log, key, result)
	return result
}

func ageAdjustment(age int) float64 {
	switch {
	case age < 30:
		return 10
	case age < 40:
		return 5
	case age < 50:
		return 0
	case age < 60:
		return -10
	default:
		return -20
	}
}

// HarvestOpportunities flags positions whose loss against purchase exceeds
// the harvest threshold and estimates the tax offset at the assumed bracket.
// Returns nil when no position qualifies. A zero purchase value yields a
// zero loss percentage rather than a division failure.
func (s *PortfolioService) HarvestOpportunities(
	positions []domain.InvestmentPosition,
) []domain.HarvestOpportunity {
	var opportunities []domain.HarvestOpportunity

	for _, pos := range positions {
		var lossPct float64
		if pos.PurchaseValue > 0 {
			lossPct = (pos.CurrentValue - pos.PurchaseValue) / pos.PurchaseValue * 100
		}
		if lossPct < -HarvestLossPct {
			loss := math.Abs(pos.CurrentValue - pos.PurchaseValue)
			opportunities = append(opportunities, domain.HarvestOpportunity{
				Name:             pos.Name,
				LossAmount:       loss,
				LossPct:          math.Abs(lossPct),
				TaxOffsetBenefit: loss * HarvestTaxBracket,
				Suggestion:       "Consider selling to offset gains",
			})
		}
	}

	return opportunities
}

// OpportunityCost computes the future value given up by skipping a monthly
// contribution: the FV of the annuity, the FV of the first payment compounded
// as a lump sum, and the larger of the two as the headline figure.
func (s *PortfolioService) OpportunityCost(
	skippedAmount float64,
	months int,
	annualReturnPct float64,
) domain.OpportunityCost {
	r := (annualReturnPct / 100) / 12
	n := float64(months)

	var futureValue float64
	if r == 0 {
		futureValue = skippedAmount * n
	} else {
		futureValue = skippedAmount * ((math.Pow(1+r, n) - 1) / r)
	}

	compounded := skippedAmount * math.Pow(1+r, n)

	return domain.OpportunityCost{
		SkippedMonthly:       skippedAmount,
		Months:               months,
		AnnualReturn:         annualReturnPct,
		LostFutureValue:      futureValue,
		LostCompoundedValue:  compounded,
		TotalOpportunityCost: math.Max(futureValue, compounded),
	}
}
