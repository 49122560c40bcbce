package service

import (
	"fmt"
	"math"

	"budget-agent/domain"
)

// MarketService adjusts goal targets for inflation and maps market
// conditions onto investment guidance.
type MarketService struct {
	goals *GoalService
}

func NewMarketService(goals *GoalService) *MarketService {
	return &MarketService{goals: goals}
}

// Advise walks the rule table keyed by market status and risk tolerance,
// then overlays the volatility rule, which fires independently of status.
func (s *MarketService) Advise(
	conditions domain.MarketConditions,
	investmentAllocation float64,
	riskTolerance domain.RiskTolerance,
) (domain.MarketAdvice, error) {
	if conditions.Status == "" {
		return domain.MarketAdvice{}, ErrNoMarketData
	}

	advice := domain.MarketAdvice{
		MarketStatus: conditions.Status,
		Volatility:   conditions.Volatility,
	}

	switch conditions.Status {
	case domain.MarketDip, domain.MarketCorrection:
		if riskTolerance == domain.RiskModerate || riskTolerance == domain.RiskAggressive {
			increasePct := 10.0
			if riskTolerance == domain.RiskAggressive {
				increasePct = 15.0
			}
			increaseAmount := investmentAllocation * increasePct / 100

			advice.Recommendations = append(advice.Recommendations, domain.MarketRecommendation{
				Type: "opportunity",
				Action: fmt.Sprintf("Consider increasing investment by %.0f%% (%.0f)",
					increasePct, increaseAmount),
				Reasoning: "Market dip presents buying opportunity for long-term gains",
				RiskLevel: "Medium",
			})
			advice.Adjustment = &domain.InvestmentAdjustment{IncreaseInvestment: increaseAmount}
		} else {
			advice.Recommendations = append(advice.Recommendations, domain.MarketRecommendation{
				Type:      "caution",
				Action:    "Maintain current investment allocation",
				Reasoning: "Conservative profile - stay the course during volatility",
				RiskLevel: "Low",
			})
		}

	case domain.MarketPeak, domain.MarketOvervalued:
		advice.Recommendations = append(advice.Recommendations, domain.MarketRecommendation{
			Type:      "caution",
			Action:    "Maintain or slightly reduce equity exposure",
			Reasoning: "Market appears overvalued - protect gains and build cash reserves",
			RiskLevel: "Low",
		})
		if riskTolerance != domain.RiskAggressive {
			advice.Recommendations = append(advice.Recommendations, domain.MarketRecommendation{
				Type:      "rebalancing",
				Action:    "Shift 10% from stocks to bonds/cash",
				Reasoning: "Lock in profits and increase stability",
				RiskLevel: "Low",
			})
		}

	case domain.MarketNeutral, domain.MarketStable:
		advice.Recommendations = append(advice.Recommendations, domain.MarketRecommendation{
			Type:      "steady",
			Action:    "Continue regular investment schedule",
			Reasoning: "Market conditions normal - maintain disciplined approach",
			RiskLevel: "Low",
		})
	}

	// High volatility always strengthens the buffer, whatever the status.
	if conditions.Volatility == domain.VolatilityHigh {
		advice.Recommendations = append(advice.Recommendations, domain.MarketRecommendation{
			Type:      "volatility_warning",
			Action:    "Increase emergency fund by 1 month expenses",
			Reasoning: "High volatility period - strengthen financial buffer",
			RiskLevel: "Medium",
		})
	}

	return advice, nil
}

// AdjustForInflation grows each goal target to its inflation-adjusted future
// value and recomputes the monthly requirement against the new target with
// the same annuity/linear formula used when the goal was created.
func (s *MarketService) AdjustForInflation(
	goals []domain.Goal,
	inflationRatePct float64,
) ([]domain.AdjustedGoal, error) {
	if len(goals) == 0 || inflationRatePct <= 0 {
		return nil, ErrNothingToAdjust
	}

	adjusted := make([]domain.AdjustedGoal, 0, len(goals))
	for _, goal := range goals {
		timelineYears := float64(goal.TimelineMonths) / 12

		adjustedTarget := goal.TargetAmount * math.Pow(1+inflationRatePct/100, timelineYears)

		var adjustedMonthly float64
		if goal.ExpectedReturn > 0 {
			adjustedMonthly = s.goals.InvestmentRequired(adjustedTarget, goal.TimelineMonths, goal.ExpectedReturn)
		} else {
			adjustedMonthly = s.goals.SavingsRequired(adjustedTarget, goal.TimelineMonths)
		}

		adjusted = append(adjusted, domain.AdjustedGoal{
			Name:            goal.Name,
			OriginalTarget:  goal.TargetAmount,
			AdjustedTarget:  adjustedTarget,
			InflationImpact: adjustedTarget - goal.TargetAmount,
			OriginalMonthly: goal.MonthlyRequired,
			AdjustedMonthly: adjustedMonthly,
			MonthlyIncrease: adjustedMonthly - goal.MonthlyRequired,
			TimelineYears:   timelineYears,
			InflationRate:   inflationRatePct,
		})
	}

	return adjusted, nil
}
