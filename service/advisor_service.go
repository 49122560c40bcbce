package service

import (
	"fmt"

	"budget-agent/domain"
)

// AdvisorService scores allocation health and turns gaps and ratios into
// advisory text. The scoring thresholds are the contract; the wording of the
// advice is not.
type AdvisorService struct {
	narrative *NarrativeService
}

func NewAdvisorService(narrative *NarrativeService) *AdvisorService {
	return &AdvisorService{narrative: narrative}
}

// AllocationHealth scores the three ratios on a 0-100 scale. Savings and
// investment ratios score higher the larger they are; discretionary scores
// higher the smaller it is.
func (s *AdvisorService) AllocationHealth(
	savingsRatio float64,
	investmentRatio float64,
	discretionaryRatio float64,
) domain.HealthReport {
	score := 0

	switch {
	case savingsRatio >= 20:
		score += 35
	case savingsRatio >= 15:
		score += 25
	case savingsRatio >= 10:
		score += 15
	}

	switch {
	case investmentRatio >= 15:
		score += 35
	case investmentRatio >= 10:
		score += 25
	case investmentRatio >= 5:
		score += 15
	}

	switch {
	case discretionaryRatio <= 40:
		score += 30
	case discretionaryRatio <= 50:
		score += 20
	case discretionaryRatio <= 60:
		score += 10
	}

	var rating string
	switch {
	case score >= 85:
		rating = "Excellent"
	case score >= 70:
		rating = "Good"
	case score >= 50:
		rating = "Fair"
	default:
		rating = "Needs Improvement"
	}

	return domain.HealthReport{
		Score:              score,
		Rating:             rating,
		SavingsRatio:       savingsRatio,
		InvestmentRatio:    investmentRatio,
		DiscretionaryRatio: discretionaryRatio,
	}
}

// Analyze inspects the goal gaps (negative = shortfall) and the spending
// ratios and emits recommendations, identified leaks and priority actions.
func (s *AdvisorService) Analyze(
	totalIncome float64,
	allocation domain.Allocation,
	savingsGap float64,
	investmentGap float64,
) domain.AdvisorAnalysis {
	savingsRatio := allocation.Savings / totalIncome * 100
	investmentRatio := allocation.Investments / totalIncome * 100
	discretionaryRatio := allocation.Discretionary() / totalIncome * 100

	analysis := domain.AdvisorAnalysis{
		Health:          s.AllocationHealth(savingsRatio, investmentRatio, discretionaryRatio),
		Recommendations: []string{},
		IdentifiedLeaks: []string{},
		PriorityActions: []string{},
	}

	if savingsGap < 0 {
		analysis.IdentifiedLeaks = append(analysis.IdentifiedLeaks,
			fmt.Sprintf("Savings shortfall of %.0f/month", -savingsGap))
		if discretionaryRatio > 40 {
			analysis.Recommendations = append(analysis.Recommendations,
				fmt.Sprintf("Reduce discretionary spending (currently %.1f%%) by %.0f", discretionaryRatio, -savingsGap))
			analysis.PriorityActions = append(analysis.PriorityActions, "Cut personal/misc expenses")
		}
	}

	if investmentGap < 0 {
		analysis.IdentifiedLeaks = append(analysis.IdentifiedLeaks,
			fmt.Sprintf("Investment shortfall of %.0f/month", -investmentGap))
		if allocation.Misc > totalIncome*0.15 {
			redirect := allocation.Misc - totalIncome*0.15
			analysis.Recommendations = append(analysis.Recommendations,
				fmt.Sprintf("Redirect %.0f from misc to investments", redirect))
			analysis.PriorityActions = append(analysis.PriorityActions, "Optimize misc expenses")
		}
	}

	if savingsRatio < 20 {
		analysis.Recommendations = append(analysis.Recommendations,
			fmt.Sprintf("Increase savings to at least 20%% (currently %.1f%%)", savingsRatio))
		analysis.PriorityActions = append(analysis.PriorityActions, "Boost emergency fund")
	}

	if investmentRatio < 15 {
		analysis.Recommendations = append(analysis.Recommendations,
			fmt.Sprintf("Aim for 15-20%% investment allocation (currently %.1f%%)", investmentRatio))
		analysis.PriorityActions = append(analysis.PriorityActions, "Increase wealth building")
	}

	if discretionaryRatio > 50 {
		analysis.IdentifiedLeaks = append(analysis.IdentifiedLeaks,
			fmt.Sprintf("High discretionary spending: %.1f%% of income", discretionaryRatio))
		analysis.Recommendations = append(analysis.Recommendations,
			"Review personal expenses for optimization opportunities")
	}

	if savingsGap >= 0 && investmentGap >= 0 {
		analysis.Recommendations = append(analysis.Recommendations,
			"Your allocations meet your goals. Consider increasing targets.")
	}
	if savingsRatio >= 20 && investmentRatio >= 15 {
		analysis.Recommendations = append(analysis.Recommendations,
			"Strong financial foundation. Stay consistent.")
	}

	if s.narrative != nil {
		analysis.Narrative = s.narrative.GenerateAnalysisNarrative(totalIncome, allocation, analysis)
	}

	return analysis
}
