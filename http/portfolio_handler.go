package http

import (
	"net/http"

	"budget-agent/domain"
	"budget-agent/service"
)

// PortfolioHandler serves the asset allocation and investment analysis
// endpoints.
type PortfolioHandler struct {
	portfolio *service.PortfolioService
}

func NewPortfolioHandler(portfolio *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolio: portfolio}
}

// OptimizeAllocation recommends a stock/bond/cash split for the profile.
func (h *PortfolioHandler) OptimizeAllocation(w http.ResponseWriter, r *http.Request) {
	var req AssetAllocationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(w, err)
		return
	}

	result := h.portfolio.OptimizeAllocation(domain.AssetAllocationInput{
		Age:               req.Age,
		RiskTolerance:     domain.RiskTolerance(req.RiskTolerance),
		TimelineYears:     req.TimelineYears,
		MonthlyInvestment: req.MonthlyInvestment,
	})

	respondJSON(w, http.StatusOK, result)
}

type taxHarvestingResponse struct {
	Opportunities    []domain.HarvestOpportunity `json:"opportunities"`
	HasOpportunities bool                        `json:"has_opportunities"`
}

// TaxHarvesting flags underperforming positions. No opportunity is a valid
// outcome, not an error.
func (h *PortfolioHandler) TaxHarvesting(w http.ResponseWriter, r *http.Request) {
	var req TaxHarvestingRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(w, err)
		return
	}

	opportunities := h.portfolio.HarvestOpportunities(req.Investments)

	resp := taxHarvestingResponse{
		Opportunities:    opportunities,
		HasOpportunities: opportunities != nil,
	}
	if resp.Opportunities == nil {
		resp.Opportunities = []domain.HarvestOpportunity{}
	}
	respondJSON(w, http.StatusOK, resp)
}

// OpportunityCost quantifies what skipping a contribution costs.
func (h *PortfolioHandler) OpportunityCost(w http.ResponseWriter, r *http.Request) {
	var req OpportunityCostRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(w, err)
		return
	}

	result := h.portfolio.OpportunityCost(req.SkippedAmount, req.Months, req.AnnualReturnPct)
	respondJSON(w, http.StatusOK, result)
}
