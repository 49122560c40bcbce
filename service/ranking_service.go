package service

import (
	"sort"

	"budget-agent/domain"
)

// RankingService resolves competing goals into a single priority order
// using weighted urgency, ROI and feasibility scores.
type RankingService struct{}

func NewRankingService() *RankingService {
	return &RankingService{}
}

// Resolve scores every goal and returns them sorted by total score,
// highest first. The sort is stable, so tied goals keep their input order.
// Fewer than two goals is ErrInsufficientGoals: with a single goal there is
// no conflict to resolve.
func (s *RankingService) Resolve(
	goals []domain.Goal,
	monthlyIncome float64,
	currentAllocation domain.Allocation,
) ([]domain.ScoredGoal, error) {
	if len(goals) < MinGoalsForResolution {
		return nil, ErrInsufficientGoals
	}

	scored := make([]domain.ScoredGoal, 0, len(goals))
	for _, goal := range goals {
		urgency := urgencyScore(goal.TimelineMonths)
		roi := roiScore(goal.ExpectedReturn, goal.TimelineMonths)
		feasibility := feasibilityScore(goal.MonthlyRequired, monthlyIncome, currentAllocation)

		total := urgency*UrgencyWeight + roi*ROIWeight + feasibility*FeasibilityWeight

		scored = append(scored, domain.ScoredGoal{
			Goal:             goal,
			UrgencyScore:     urgency,
			ROIScore:         roi,
			FeasibilityScore: feasibility,
			TotalScore:       total,
			Priority:         priorityLabel(total),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].TotalScore > scored[j].TotalScore
	})

	return scored, nil
}

// urgencyScore buckets the deadline into a 0-10 urgency.
func urgencyScore(deadlineMonths int) float64 {
	switch {
	case deadlineMonths <= 3:
		return 10
	case deadlineMonths <= 6:
		return 8
	case deadlineMonths <= 12:
		return 6
	case deadlineMonths <= 24:
		return 4
	default:
		return 2
	}
}

// roiScore buckets the annualized return into a 0-10 score. A zero timeline
// scores 0 rather than dividing by it.
func roiScore(expectedReturn float64, timelineMonths int) float64 {
	if timelineMonths == 0 {
		return 0
	}
	annualized := expectedReturn / float64(timelineMonths) * 12

	switch {
	case annualized >= 15:
		return 10
	case annualized >= 12:
		return 8
	case annualized >= 8:
		return 6
	case annualized >= 5:
		return 4
	default:
		return 2
	}
}

// feasibilityScore buckets the coverage ratio of uncommitted income over the
// goal's monthly requirement. A goal that requires nothing scores a neutral
// 5.
func feasibilityScore(
	monthlyRequired float64,
	monthlyIncome float64,
	currentAllocation domain.Allocation,
) float64 {
	if monthlyRequired == 0 {
		return 5
	}

	available := monthlyIncome - currentAllocation.Total()
	coverage := available / monthlyRequired

	switch {
	case coverage >= 1.5:
		return 10
	case coverage >= 1.0:
		return 8
	case coverage >= 0.7:
		return 6
	case coverage >= 0.5:
		return 4
	default:
		return 2
	}
}

func priorityLabel(totalScore float64) string {
	switch {
	case totalScore >= 7:
		return "High"
	case totalScore >= 5:
		return "Medium"
	default:
		return "Low"
	}
}
