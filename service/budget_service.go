package service

import (
	"math"

	"github.com/sirupsen/logrus"

	"budget-agent/domain"
	"budget-agent/repository"
)

// roundTo2Decimals rounds a float64 to 2 decimal places.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

func roundTo1Decimal(value float64) float64 {
	return math.Round(value*10) / 10
}

// DefaultPeriods are the projection horizons reported with every budget
// allocation.
var DefaultPeriods = []domain.Period{
	{Name: "1 Month", Months: 1},
	{Name: "3 Months", Months: 3},
	{Name: "6 Months", Months: 6},
	{Name: "12 Months", Months: 12},
	{Name: "24 Months", Months: 24},
}

// BudgetService splits income into the four budget categories and projects
// the split over time.
type BudgetService struct {
	repo repository.AllocationRepository
	log  *logrus.Logger
}

// NewBudgetService creates a new BudgetService with the given repository.
func NewBudgetService(repo repository.AllocationRepository, log *logrus.Logger) *BudgetService {
	return &BudgetService{repo: repo, log: log}
}

// Allocate multiplies each percentage by total/100. It performs no
// validation: the caller guarantees the percentages are non-negative and sum
// to 100 within tolerance.
func (s *BudgetService) Allocate(input domain.BudgetInput) domain.Allocation {
	allocation := domain.Allocation{
		Savings:     input.TotalAmount * (input.SavingsPct / 100),
		Investments: input.TotalAmount * (input.InvestmentPct / 100),
		Personal:    input.TotalAmount * (input.PersonalPct / 100),
		Misc:        input.TotalAmount * (input.MiscPct / 100),
	}

	// Keeping the computed split is not critical.
	if err := s.repo.Save(input, allocation); err != nil {
		s.log.WithError(err).Warn("failed to save budget allocation")
	}

	return allocation
}

// Project scales the allocation out to each period's month count, preserving
// the caller-supplied period order.
func (s *BudgetService) Project(
	allocation domain.Allocation,
	periods []domain.Period,
) []domain.ProjectedAllocation {
	projections := make([]domain.ProjectedAllocation, 0, len(periods))
	for _, p := range periods {
		months := float64(p.Months)
		projections = append(projections, domain.ProjectedAllocation{
			Period: p.Name,
			Months: p.Months,
			Allocation: domain.Allocation{
				Savings:     allocation.Savings * months,
				Investments: allocation.Investments * months,
				Personal:    allocation.Personal * months,
				Misc:        allocation.Misc * months,
			},
		})
	}
	return projections
}
