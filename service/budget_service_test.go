package service

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budget-agent/domain"
	"budget-agent/repository"
)

func newBudgetService(t *testing.T) (*BudgetService, *repository.AllocationRepositoryMemory) {
	t.Helper()
	repo := repository.NewAllocationRepositoryMemory(100)
	return NewBudgetService(repo, logrus.New()), repo
}

func TestAllocate(t *testing.T) {
	svc, repo := newBudgetService(t)

	allocation := svc.Allocate(domain.BudgetInput{
		TotalAmount:   100000,
		SavingsPct:    20,
		InvestmentPct: 20,
		PersonalPct:   45,
		MiscPct:       15,
	})

	assert.Equal(t, 20000.0, allocation.Savings)
	assert.Equal(t, 20000.0, allocation.Investments)
	assert.Equal(t, 45000.0, allocation.Personal)
	assert.Equal(t, 15000.0, allocation.Misc)
	assert.Equal(t, 1, repo.Len())
}

func TestAllocatePreservesTotal(t *testing.T) {
	svc, _ := newBudgetService(t)

	inputs := []domain.BudgetInput{
		{TotalAmount: 100000, SavingsPct: 20, InvestmentPct: 20, PersonalPct: 45, MiscPct: 15},
		{TotalAmount: 3333.33, SavingsPct: 10, InvestmentPct: 30, PersonalPct: 40, MiscPct: 20},
		{TotalAmount: 7500, SavingsPct: 0, InvestmentPct: 0, PersonalPct: 100, MiscPct: 0},
	}
	for _, input := range inputs {
		allocation := svc.Allocate(input)
		assert.InDelta(t, input.TotalAmount, allocation.Total(), 0.01)
	}
}

func TestProject(t *testing.T) {
	svc, _ := newBudgetService(t)

	allocation := domain.Allocation{Savings: 20000, Investments: 20000, Personal: 45000, Misc: 15000}
	projections := svc.Project(allocation, DefaultPeriods)

	require.Len(t, projections, 5)
	assert.Equal(t, "12 Months", projections[3].Period)
	assert.Equal(t, 240000.0, projections[3].Allocation.Savings)
	assert.Equal(t, "1 Month", projections[0].Period)
	assert.Equal(t, allocation, projections[0].Allocation)
}
