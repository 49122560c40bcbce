package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"

	"budget-agent/repository"
	"budget-agent/service"
)

func newTestGoalHandler() *GoalHandler {
	cache := repository.NewMemoryCache()
	advisor := service.NewAdvisorService(nil)
	goals := service.NewGoalService(advisor, cache, logrus.New())
	return NewGoalHandler(goals, service.NewRankingService())
}

func TestSavingsGoalHandler_OK(t *testing.T) {
	handler := newTestGoalHandler()

	body := []byte(`{"target_amount": 120000, "months": 12}`)
	w := httptest.NewRecorder()
	handler.SavingsGoal(w, postJSON("/api/savings-goal", body))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp savingsGoalResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.MonthlyRequired != 10000 {
		t.Errorf("expected 10000, got %f", resp.MonthlyRequired)
	}
}

func TestSavingsGoalHandler_BadRequest(t *testing.T) {
	handler := newTestGoalHandler()

	body := []byte(`{"target_amount": -5, "months": 12}`)
	w := httptest.NewRecorder()
	handler.SavingsGoal(w, postJSON("/api/savings-goal", body))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestInvestmentGoalHandler_OK(t *testing.T) {
	handler := newTestGoalHandler()

	body := []byte(`{"target_amount": 120000, "months": 12, "annual_return_pct": 12}`)
	w := httptest.NewRecorder()
	handler.InvestmentGoal(w, postJSON("/api/investment-goal", body))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp investmentGoalResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.MonthlyRequired >= 10000 {
		t.Errorf("expected compounding below linear 10000, got %f", resp.MonthlyRequired)
	}
}

func TestCombinedGoalsHandler_OK(t *testing.T) {
	handler := newTestGoalHandler()

	body := []byte(`{
		"total_income": 100000,
		"allocation": {"savings": 20000, "investments": 20000, "personal": 45000, "misc": 15000},
		"savings_target": 120000,
		"savings_months": 12,
		"investment_target": 120000,
		"investment_months": 12,
		"annual_return": 12
	}`)

	w := httptest.NewRecorder()
	handler.CombinedGoals(w, postJSON("/api/combined-goals", body))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestResolveConflictsHandler_OK(t *testing.T) {
	handler := newTestGoalHandler()

	body := []byte(`{
		"goals": [
			{"name": "emergency fund", "target_amount": 12000, "timeline_months": 6},
			{"name": "house", "target_amount": 240000, "timeline_months": 24, "expected_return": 12}
		],
		"monthly_income": 10000,
		"current_allocation": {"savings": 2000, "investments": 2000, "personal": 3000, "misc": 1000}
	}`)

	w := httptest.NewRecorder()
	handler.ResolveConflicts(w, postJSON("/api/goal-conflict-resolver", body))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp goalConflictResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.TotalGoals != 2 {
		t.Errorf("expected 2 goals, got %d", resp.TotalGoals)
	}
	if resp.TopPriority.TotalScore != resp.ScoredGoals[0].TotalScore {
		t.Errorf("top priority must be the first scored goal")
	}
}

func TestResolveConflictsHandler_TooFewGoals(t *testing.T) {
	handler := newTestGoalHandler()

	body := []byte(`{
		"goals": [{"name": "only", "target_amount": 1000, "timeline_months": 6}],
		"monthly_income": 10000,
		"current_allocation": {}
	}`)

	w := httptest.NewRecorder()
	handler.ResolveConflicts(w, postJSON("/api/goal-conflict-resolver", body))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
