package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budget-agent/domain"
)

func TestSimulateTotalsMatchAllocation(t *testing.T) {
	svc := NewBankFeedService(rand.NewSource(42))

	allocation := domain.Allocation{Savings: 20000, Investments: 20000, Personal: 45000, Misc: 15000}
	result := svc.Simulate(allocation, 0.1)

	require.NotEmpty(t, result.Transactions)
	assert.Equal(t, len(result.Transactions), result.TotalTransactions)
	assert.Equal(t, len(result.Transactions), result.AutoCategorizedCount)

	// Rounding to cents may drift the totals by a few cents at most.
	for _, category := range domain.Categories {
		assert.InDelta(t, allocation.Amount(category), result.CategoryTotals.Amount(category), 0.05,
			"category %s", category)
	}
}

func TestSimulateTransactionShape(t *testing.T) {
	svc := NewBankFeedService(rand.NewSource(7))

	allocation := domain.Allocation{Savings: 5000, Investments: 5000, Personal: 5000, Misc: 5000}
	result := svc.Simulate(allocation, 0.2)

	// Two to four transactions per category.
	assert.GreaterOrEqual(t, len(result.Transactions), 8)
	assert.LessOrEqual(t, len(result.Transactions), 16)

	for _, tx := range result.Transactions {
		assert.True(t, tx.AutoCategorized)
		assert.NotEmpty(t, tx.Description)
		assert.Greater(t, tx.Amount, 0.0)
		assert.GreaterOrEqual(t, tx.Confidence, 0.85)
		assert.Less(t, tx.Confidence, 0.99)
	}
	assert.GreaterOrEqual(t, result.AvgConfidence, 0.85)
}

func TestSimulateDeterministicWithFixedSeed(t *testing.T) {
	allocation := domain.Allocation{Savings: 1000, Investments: 1000, Personal: 1000, Misc: 1000}

	first := NewBankFeedService(rand.NewSource(99)).Simulate(allocation, 0.1)
	second := NewBankFeedService(rand.NewSource(99)).Simulate(allocation, 0.1)

	assert.Equal(t, first, second)
}
