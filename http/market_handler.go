package http

import (
	"net/http"

	"budget-agent/domain"
	"budget-agent/service"
)

// MarketHandler serves the market timing and inflation adjustment endpoints.
type MarketHandler struct {
	market *service.MarketService
	goals  *service.GoalService
}

func NewMarketHandler(market *service.MarketService, goals *service.GoalService) *MarketHandler {
	return &MarketHandler{market: market, goals: goals}
}

// MarketAdvisor maps current market conditions and risk tolerance to
// investment recommendations.
func (h *MarketHandler) MarketAdvisor(w http.ResponseWriter, r *http.Request) {
	var req MarketAdvisorRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(w, err)
		return
	}

	advice, err := h.market.Advise(
		domain.MarketConditions{
			Status:     domain.MarketStatus(req.CurrentMarketConditions.Status),
			Volatility: domain.Volatility(req.CurrentMarketConditions.Volatility),
		},
		req.InvestmentAllocation,
		domain.RiskTolerance(req.RiskTolerance),
	)
	if err != nil {
		badRequest(w, err)
		return
	}

	respondJSON(w, http.StatusOK, advice)
}

type inflationAdjusterResponse struct {
	AdjustedGoals        []domain.AdjustedGoal `json:"adjusted_goals"`
	TotalImpact          float64               `json:"total_impact"`
	TotalMonthlyIncrease float64               `json:"total_monthly_increase"`
	InflationRate        float64               `json:"inflation_rate"`
}

// InflationAdjuster grows each goal target to its inflation-adjusted future
// value and reports the aggregate impact.
func (h *MarketHandler) InflationAdjuster(w http.ResponseWriter, r *http.Request) {
	var req InflationAdjusterRequest
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

	adjusted, err := h.market.AdjustForInflation(goals, req.CurrentInflationRate)
	if err != nil {
		badRequest(w, err)
		return
	}

	var totalImpact, totalMonthlyIncrease float64
	for _, goal := range adjusted {
		totalImpact += goal.InflationImpact
		totalMonthlyIncrease += goal.MonthlyIncrease
	}

	respondJSON(w, http.StatusOK, inflationAdjusterResponse{
		AdjustedGoals:        adjusted,
		TotalImpact:          totalImpact,
		TotalMonthlyIncrease: totalMonthlyIncrease,
		InflationRate:        req.CurrentInflationRate,
	})
}
