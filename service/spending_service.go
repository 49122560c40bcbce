package service

import (
	"fmt"
	"sort"
	"strings"

	"budget-agent/domain"
)

// categoryUsage is the per-category comparison of budget against spending.
type categoryUsage struct {
	category  domain.Category
	allocated float64
	spent     float64
	// difference is allocated minus spent: positive = surplus (underspent),
	// negative = deficit (overspent).
	difference float64
	usagePct   float64
}

// SpendingService compares budgets against actual spending and mines
// history for patterns worth acting on.
type SpendingService struct{}

func NewSpendingService() *SpendingService {
	return &SpendingService{}
}

// SuggestReallocation reviews each category's usage and proposes moves:
// deficits covered from surplus donors, leftover surplus redirected to the
// highest-priority category, warnings when nothing can fund a deficit, and
// permanent-cut tips for chronically underused categories. Returns nil when
// fewer than two months were tracked or nothing needs adjusting.
func (s *SpendingService) SuggestReallocation(
	allocation domain.Allocation,
	actualSpending domain.Allocation,
	monthsTracked int,
) []domain.Suggestion {
	if monthsTracked < MinMonthsTracked {
		return nil
	}

	var (
		suggestions  []domain.Suggestion
		totalSurplus float64
		totalDeficit float64
		usages       []categoryUsage
	)

	for _, category := range domain.Categories {
		allocated := allocation.Amount(category)
		spent := actualSpending.Amount(category)
		difference := allocated - spent

		var usagePct float64
		if allocated > 0 {
			usagePct = spent / allocated * 100
		}

		usages = append(usages, categoryUsage{
			category:   category,
			allocated:  allocated,
			spent:      spent,
			difference: difference,
			usagePct:   usagePct,
		})

		if difference > 0 {
			totalSurplus += difference
		} else if difference < 0 {
			totalDeficit += -difference
		}
	}

	if totalSurplus == 0 && totalDeficit == 0 {
		return nil
	}

	var deficits, surpluses []categoryUsage
	for _, u := range usages {
		if u.difference < 0 {
			deficits = append(deficits, u)
		}
		// Only categories consistently underspent act as donors.
		if u.difference > 0 && u.usagePct < SurplusUsagePct {
			surpluses = append(surpluses, u)
		}
	}

	switch {
	case len(surpluses) > 0 && len(deficits) > 0:
		suggestions = append(suggestions, s.coverDeficits(allocation, actualSpending, deficits, surpluses, totalSurplus)...)

	case len(surpluses) > 0:
		// No deficits: redirect the whole surplus to savings first, then
		// investments.
		for _, target := range []domain.Category{domain.CategorySavings, domain.CategoryInvestments} {
			if totalSurplus <= 0 {
				break
			}
			sources := make([]string, 0, len(surpluses))
			for _, donor := range surpluses {
				sources = append(sources, fmt.Sprintf("%.0f from %s", donor.difference, donor.category))
			}
			suggestions = append(suggestions, domain.Suggestion{
				Type:      domain.SuggestionSurplusReallocation,
				Category:  target,
				Allocated: allocation.Amount(target),
				Spent:     actualSpending.Amount(target),
				Action: fmt.Sprintf("Redirect %.0f surplus to boost %s. Sources: %s",
					totalSurplus, target, strings.Join(sources, ", ")),
				Priority: "High",
			})
			break
		}

	case len(deficits) > 0:
		// No donor available: flag each overrun.
		for _, d := range deficits {
			suggestions = append(suggestions, domain.Suggestion{
				Type:      domain.SuggestionDeficitWarning,
				Category:  d.category,
				Allocated: d.allocated,
				Spent:     d.spent,
				Action: fmt.Sprintf("Overspent by %.0f. Reduce next month or increase allocation.",
					-d.difference),
				Priority: "High",
			})
		}
	}

	// Chronic underspending earns a permanent-cut tip regardless of branch.
	for _, donor := range surpluses {
		if donor.usagePct < EfficiencyUsagePct {
			suggestions = append(suggestions, domain.Suggestion{
				Type:      domain.SuggestionEfficiencyTip,
				Category:  donor.category,
				Allocated: donor.allocated,
				Spent:     donor.spent,
				Action: fmt.Sprintf("Using only %.0f%% - consider reducing allocation by %.0f",
					donor.usagePct, donor.difference),
				Priority: "Low",
			})
		}
	}

	if len(suggestions) == 0 {
		return nil
	}
	return suggestions
}

// coverDeficits funds each deficit from surplus donors, least-priority
// donors first, then offers any leftover surplus as a boost to the first
// priority category that was not itself a donor.
func (s *SpendingService) coverDeficits(
	allocation domain.Allocation,
	actualSpending domain.Allocation,
	deficits []categoryUsage,
	surpluses []categoryUsage,
	totalSurplus float64,
) []domain.Suggestion {
	var suggestions []domain.Suggestion

	donors := make([]categoryUsage, len(surpluses))
	copy(donors, surpluses)
	sort.SliceStable(donors, func(i, j int) bool {
		return priorityIndex(donors[i].category) > priorityIndex(donors[j].category)
	})

	remainingSurplus := totalSurplus
	for _, d := range deficits {
		if remainingSurplus <= 0 {
			break
		}

		overspend := -d.difference
		amount := overspend
		if remainingSurplus < amount {
			amount = remainingSurplus
		}

		var sources []string
		available := remainingSurplus
		for _, donor := range donors {
			if available <= 0 {
				break
			}
			contribution := donor.difference
			if amount < contribution {
				contribution = amount
			}
			if contribution > 0 {
				sources = append(sources, fmt.Sprintf("%.0f from %s", contribution, donor.category))
				available -= contribution
			}
		}

		suggestions = append(suggestions, domain.Suggestion{
			Type:      domain.SuggestionDeficitCoverage,
			Category:  d.category,
			Allocated: d.allocated,
			Spent:     d.spent,
			Action: fmt.Sprintf("Cover %.0f overspend using: %s",
				amount, strings.Join(sources, ", ")),
			Priority: "High",
		})

		remainingSurplus -= amount
	}

	if remainingSurplus > 0 {
		donorSet := make(map[domain.Category]bool, len(surpluses))
		for _, donor := range surpluses {
			donorSet[donor.category] = true
		}
		for _, target := range domain.Categories {
			if donorSet[target] {
				continue
			}
			suggestions = append(suggestions, domain.Suggestion{
				Type:      domain.SuggestionSurplusReallocation,
				Category:  target,
				Allocated: allocation.Amount(target),
				Spent:     actualSpending.Amount(target),
				Action: fmt.Sprintf("Boost by %.0f from underspent categories",
					remainingSurplus),
				Priority: "Medium",
			})
			break
		}
	}

	return suggestions
}

func priorityIndex(c domain.Category) int {
	for i, cat := range domain.Categories {
		if cat == c {
			return i
		}
	}
	return len(domain.Categories)
}

// ForecastExpenses mines the spending history for spikes and trends and
// predicts irregular expenses two to three months out. Needs at least three
// history points.
func (s *SpendingService) ForecastExpenses(history []float64) ([]domain.ExpensePrediction, error) {
	if len(history) < MinExpenseHistory {
		return nil, ErrInsufficientHistory
	}

	avg := mean(history)

	var spikes []float64
	for _, expense := range history {
		if expense > avg*SpikeFactor {
			spikes = append(spikes, expense)
		}
	}

	var predictions []domain.ExpensePrediction

	if len(spikes) > 0 {
		avgSpike := mean(spikes)
		frequency := float64(len(spikes)) / float64(len(history))
		predictions = append(predictions, domain.ExpensePrediction{
			Type:        "Irregular Expense Spike",
			Amount:      avgSpike,
			Probability: frequency,
			Timeframe:   "2-3 months",
			Suggestion:  fmt.Sprintf("Pre-save %.0f/month for upcoming spike", avgSpike/3),
		})
	}

	recent := history[len(history)-3:]
	if recent[0] < recent[1] && recent[1] < recent[2] {
		increase := recent[2] - recent[0]
		predictions = append(predictions, domain.ExpensePrediction{
			Type:        "Upward Spending Trend",
			Amount:      recent[2] + increase/2,
			Probability: 0.7,
			Timeframe:   "Next month",
			Suggestion:  fmt.Sprintf("Budget may need %.0f increase", increase/2),
		})
	}

	if len(predictions) == 0 {
		predictions = append(predictions, domain.ExpensePrediction{
			Type:        "Stable Spending Pattern",
			Amount:      avg,
			Probability: 0.8,
			Timeframe:   "Next 2-3 months",
			Suggestion:  fmt.Sprintf("Maintain current budget of %.0f/month", avg),
		})
	}

	return predictions, nil
}

// VolatilityBuffer smooths a volatile income stream into a safe monthly
// budget over the last six months of history. Needs at least two points.
func (s *SpendingService) VolatilityBuffer(history []float64) (*domain.IncomeBuffer, error) {
	if len(history) < MinIncomeHistory {
		return nil, ErrInsufficientHistory
	}

	recent := history
	if len(history) >= IncomeWindowMonths {
		recent = history[len(history)-IncomeWindowMonths:]
	}

	avg := mean(recent)
	lo, hi := recent[0], recent[0]
	for _, income := range recent[1:] {
		if income < lo {
			lo = income
		}
		if income > hi {
			hi = income
		}
	}
	volatility := (hi - lo) / avg * 100

	var safeBudget float64
	recommendation := "Moderate volatility"
	if volatility > HighVolatilityPct {
		safeBudget = avg * 0.7
		recommendation = "High volatility"
	} else {
		safeBudget = avg * 0.85
	}

	return &domain.IncomeBuffer{
		AvgIncome:      avg,
		VolatilityPct:  volatility,
		SafeBudget:     safeBudget,
		BufferNeeded:   avg - safeBudget,
		Recommendation: recommendation,
	}, nil
}

// MicroSavings sweeps budget wins at or above the threshold into an
// auto-transfer total. Returns nil when no win clears the threshold.
func (s *SpendingService) MicroSavings(
	wins []domain.BudgetWin,
	threshold float64,
) *domain.MicroSavingsResult {
	if threshold <= 0 {
		threshold = DefaultSavingsThreshold
	}

	var (
		triggers []domain.MicroSavingsTrigger
		total    float64
	)
	for _, win := range wins {
		if win.Actual >= win.Budgeted {
			continue
		}
		saved := win.Budgeted - win.Actual
		if saved < threshold {
			continue
		}
		triggers = append(triggers, domain.MicroSavingsTrigger{
			Category: win.Category,
			Budgeted: win.Budgeted,
			Actual:   win.Actual,
			Saved:    saved,
			Action:   "Auto-transfer to investments",
		})
		total += saved
	}

	if len(triggers) == 0 {
		return nil
	}
	return &domain.MicroSavingsResult{
		Triggers:          triggers,
		TotalMicroSavings: total,
	}
}

// Streaks reports the current and longest runs of successful months plus a
// milestone label. Needs at least one tracked month.
func (s *SpendingService) Streaks(
	performance []domain.MonthlyPerformance,
	goalType string,
) (*domain.StreakReport, error) {
	if len(performance) == 0 {
		return nil, ErrInsufficientHistory
	}

	var longest, run, successes int
	for _, month := range performance {
		if month.Success {
			run++
			if run > longest {
				longest = run
			}
			successes++
		} else {
			run = 0
		}
	}

	var current int
	for i := len(performance) - 1; i >= 0; i-- {
		if !performance[i].Success {
			break
		}
		current++
	}

	var milestone string
	switch {
	case current >= 12:
		milestone = "1 Year Streak! Financial Master!"
	case current >= 6:
		milestone = "6 Month Streak! Keep going!"
	case current >= 3:
		milestone = "3 Month Streak! Building momentum!"
	case current >= 1:
		milestone = "Starting strong!"
	}

	return &domain.StreakReport{
		CurrentStreak: current,
		LongestStreak: longest,
		SuccessRate:   float64(successes) / float64(len(performance)) * 100,
		TotalMonths:   len(performance),
		Milestone:     milestone,
		GoalType:      goalType,
	}, nil
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
