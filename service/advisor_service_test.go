package service

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"budget-agent/domain"
)

func TestAllocationHealthScoring(t *testing.T) {
	svc := NewAdvisorService(nil)

	cases := []struct {
		name          string
		savings       float64
		investment    float64
		discretionary float64
		wantScore     int
		wantRating    string
	}{
		{"ideal split", 20, 15, 40, 100, "Excellent"},
		{"decent split", 15, 10, 50, 70, "Good"},
		{"fair split", 10, 10, 40, 70, "Good"},
		{"thin margins", 10, 5, 60, 40, "Needs Improvement"},
		{"mid range", 15, 15, 45, 80, "Good"},
		{"nothing set aside", 0, 0, 80, 0, "Needs Improvement"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			report := svc.AllocationHealth(c.savings, c.investment, c.discretionary)
			assert.Equal(t, c.wantScore, report.Score)
			assert.Equal(t, c.wantRating, report.Rating)
		})
	}
}

func TestAnalyzeShortfalls(t *testing.T) {
	svc := NewAdvisorService(nil)

	// 10% savings, 10% investments, 55% discretionary with both goals short.
	allocation := domain.Allocation{Savings: 1000, Investments: 1000, Personal: 4000, Misc: 1500}
	analysis := svc.Analyze(10000, allocation, -500, -300)

	assert.NotEmpty(t, analysis.IdentifiedLeaks)
	assert.NotEmpty(t, analysis.Recommendations)
	assert.Contains(t, analysis.PriorityActions, "Cut personal/misc expenses")
	assert.Contains(t, analysis.PriorityActions, "Boost emergency fund")
	assert.Contains(t, analysis.PriorityActions, "Increase wealth building")
	assert.Empty(t, analysis.Narrative)
}

func TestAnalyzeFallbackNarrativeWithoutAPIKey(t *testing.T) {
	// A narrative service with no key must still produce the template
	// summary, never an empty narrative.
	svc := NewAdvisorService(NewNarrativeService("", logrus.New()))

	allocation := domain.Allocation{Savings: 1000, Investments: 1000, Personal: 4000, Misc: 1500}
	analysis := svc.Analyze(10000, allocation, -500, -300)

	assert.NotEmpty(t, analysis.Narrative)
	assert.True(t, strings.HasPrefix(analysis.Narrative, "Your allocation health is"),
		"got narrative: %s", analysis.Narrative)
	assert.Contains(t, analysis.Narrative, "Main issue:")
}

func TestAnalyzeHealthyBudget(t *testing.T) {
	svc := NewAdvisorService(nil)

	allocation := domain.Allocation{Savings: 2500, Investments: 2000, Personal: 3000, Misc: 1500}
	analysis := svc.Analyze(10000, allocation, 500, 200)

	assert.Empty(t, analysis.IdentifiedLeaks)
	assert.Empty(t, analysis.PriorityActions)
	assert.Contains(t, analysis.Recommendations,
		"Your allocations meet your goals. Consider increasing targets.")
	assert.Contains(t, analysis.Recommendations,
		"Strong financial foundation. Stay consistent.")
	assert.Equal(t, "Excellent", analysis.Health.Rating)
}
