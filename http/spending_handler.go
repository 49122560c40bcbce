package http

import (
	"net/http"

	"budget-agent/domain"
	"budget-agent/service"
)

// SpendingHandler serves the spending analysis endpoints: dynamic
// reallocation, expense forecasting, income smoothing, micro savings and
// streak tracking.
type SpendingHandler struct {
	spending *service.SpendingService
}

func NewSpendingHandler(spending *service.SpendingService) *SpendingHandler {
	return &SpendingHandler{spending: spending}
}

type dynamicReallocationResponse struct {
	Suggestions    []domain.Suggestion `json:"suggestions"`
	HasSuggestions bool                `json:"has_suggestions"`
}

// DynamicReallocation compares the plan against actual spending and suggests
// budget moves. An empty suggestion list is a valid outcome.
func (h *SpendingHandler) DynamicReallocation(w http.ResponseWriter, r *http.Request) {
	var req DynamicReallocationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(w, err)
		return
	}

	suggestions := h.spending.SuggestReallocation(req.Allocation, req.ActualSpending, req.MonthsTracked)

	resp := dynamicReallocationResponse{
		Suggestions:    suggestions,
		HasSuggestions: len(suggestions) > 0,
	}
	if resp.Suggestions == nil {
		resp.Suggestions = []domain.Suggestion{}
	}
	respondJSON(w, http.StatusOK, resp)
}

type expenseForecastResponse struct {
	Predictions []domain.ExpensePrediction `json:"predictions"`
}

// ExpenseForecast detects spikes and trends in the expense history.
func (h *SpendingHandler) ExpenseForecast(w http.ResponseWriter, r *http.Request) {
	var req ExpenseForecastRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(w, err)
		return
	}

	predictions, err := h.spending.ForecastExpenses(req.MonthlyExpensesHistory)
	if err != nil {
		badRequest(w, err)
		return
	}

	respondJSON(w, http.StatusOK, expenseForecastResponse{Predictions: predictions})
}

// IncomeVolatility derives a safe budgeting baseline from variable income.
func (h *SpendingHandler) IncomeVolatility(w http.ResponseWriter, r *http.Request) {
	var req IncomeVolatilityRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(w, err)
		return
	}

	buffer, err := h.spending.VolatilityBuffer(req.IncomeHistory)
	if err != nil {
		badRequest(w, err)
		return
	}

	respondJSON(w, http.StatusOK, buffer)
}

type microSavingsResponse struct {
	Data       *domain.MicroSavingsResult `json:"data"`
	HasSavings bool                       `json:"has_savings"`
}

// MicroSavings sweeps budget wins above the threshold into a transfer total.
func (h *SpendingHandler) MicroSavings(w http.ResponseWriter, r *http.Request) {
	var req MicroSavingsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(w, err)
		return
	}

	result := h.spending.MicroSavings(req.Transactions, *req.SavingsThreshold)

	respondJSON(w, http.StatusOK, microSavingsResponse{
		Data:       result,
		HasSavings: result != nil,
	})
}

// StreakTracking reports budget-discipline streaks and milestones.
func (h *SpendingHandler) StreakTracking(w http.ResponseWriter, r *http.Request) {
	var req StreakTrackingRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(w, err)
		return
	}

	report, err := h.spending.Streaks(req.MonthlyPerformance, req.GoalType)
	if err != nil {
		badRequest(w, err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}
