package http

import (
	"net/http"

	"budget-agent/domain"
	"budget-agent/service"
)

// BudgetHandler serves the budget allocation endpoint.
type BudgetHandler struct {
	budgets *service.BudgetService
}

func NewBudgetHandler(budgets *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgets: budgets}
}

type budgetAllocationResponse struct {
	Allocation     domain.Allocation            `json:"allocation"`
	Projections    []domain.ProjectedAllocation `json:"projections"`
	TotalAllocated float64                      `json:"total_allocated"`
}

// AllocateBudget splits the income by the requested percentages and projects
// the split over the default horizons.
func (h *BudgetHandler) AllocateBudget(w http.ResponseWriter, r *http.Request) {
	var req BudgetAllocationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(w, err)
		return
	}

	allocation := h.budgets.Allocate(req.Input())
	projections := h.budgets.Project(allocation, service.DefaultPeriods)

	respondJSON(w, http.StatusOK, budgetAllocationResponse{
		Allocation:     allocation,
		Projections:    projections,
		TotalAllocated: allocation.Total(),
	})
}
