package http

import (
	"net/http"

	"budget-agent/domain"
	"budget-agent/service"
)

// GoalHandler serves the goal planning and conflict resolution endpoints.
type GoalHandler struct {
	goals   *service.GoalService
	ranking *service.RankingService
}

func NewGoalHandler(goals *service.GoalService, ranking *service.RankingService) *GoalHandler {
	return &GoalHandler{goals: goals, ranking: ranking}
}

type savingsGoalResponse struct {
	TargetAmount    float64 `json:"target_amount"`
	Months          int     `json:"months"`
	MonthlyRequired float64 `json:"monthly_required"`
}

// SavingsGoal computes the linear monthly contribution toward a target.
func (h *GoalHandler) SavingsGoal(w http.ResponseWriter, r *http.Request) {
	var req SavingsGoalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(w, err)
		return
	}

	respondJSON(w, http.StatusOK, savingsGoalResponse{
		TargetAmount:    req.TargetAmount,
		Months:          req.Months,
		MonthlyRequired: h.goals.SavingsRequired(req.TargetAmount, req.Months),
	})
}

type investmentGoalResponse struct {
	TargetAmount    float64 `json:"target_amount"`
	Months          int     `json:"months"`
	AnnualReturnPct float64 `json:"annual_return_pct"`
	MonthlyRequired float64 `json:"monthly_required"`
}

// InvestmentGoal computes the compounding-aware monthly contribution.
func (h *GoalHandler) InvestmentGoal(w http.ResponseWriter, r *http.Request) {
	var req InvestmentGoalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(w, err)
		return
	}

	respondJSON(w, http.StatusOK, investmentGoalResponse{
		TargetAmount:    req.TargetAmount,
		Months:          req.Months,
		AnnualReturnPct: req.AnnualReturnPct,
		MonthlyRequired: h.goals.InvestmentRequired(req.TargetAmount, req.Months, req.AnnualReturnPct),
	})
}

// CombinedGoals reconciles a savings and an investment goal against the
// current budget in one pass.
func (h *GoalHandler) CombinedGoals(w http.ResponseWriter, r *http.Request) {
	var req CombinedGoalsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(w, err)
		return
	}

	result := h.goals.AnalyzeCombinedGoals(domain.CombinedGoalsInput{
		TotalIncome:      req.TotalIncome,
		Allocation:       req.Allocation,
		SavingsTarget:    req.SavingsTarget,
		SavingsMonths:    req.SavingsMonths,
		InvestmentTarget: req.InvestmentTarget,
		InvestmentMonths: req.InvestmentMonths,
		AnnualReturn:     req.AnnualReturn,
	})

	respondJSON(w, http.StatusOK, result)
}

type goalConflictResponse struct {
	ScoredGoals []domain.ScoredGoal `json:"scored_goals"`
	TopPriority domain.ScoredGoal   `json:"top_priority"`
	TotalGoals  int                 `json:"total_goals"`
}

// ResolveConflicts scores and ranks competing goals. The monthly
// requirement is derived once here and carried into scoring.
func (h *GoalHandler) ResolveConflicts(w http.ResponseWriter, r *http.Request) {
	var req GoalConflictRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(w, err)
		return
	}

	goals := make([]domain.Goal, 0, len(req.Goals))
	for _, g := range req.Goals {
		goal := domain.Goal{
			Name:           g.Name,
			TargetAmount:   g.TargetAmount,
			TimelineMonths: g.TimelineMonths,
			ExpectedReturn: g.ExpectedReturn,
		}
		goal.MonthlyRequired = h.goals.MonthlyRequired(goal)
		goals = append(goals, goal)
	}

	scored, err := h.ranking.Resolve(goals, req.MonthlyIncome, req.CurrentAllocation)
	if err != nil {
		badRequest(w, err)
		return
	}

	respondJSON(w, http.StatusOK, goalConflictResponse{
		ScoredGoals: scored,
		TopPriority: scored[0],
		TotalGoals:  len(scored),
	})
}
