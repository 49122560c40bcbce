package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health    *HealthHandler
	Budget    *BudgetHandler
	Goal      *GoalHandler
	Portfolio *PortfolioHandler
	Spending  *SpendingHandler
	Market    *MarketHandler
	BankFeed  *BankFeedHandler
}

// NewRouter mounts all endpoints and wraps them with the request ID, logging
// and rate limiting middleware.
func NewRouter(h Handlers, limiter *RateLimiter, log *logrus.Logger) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", h.Health.Root).Methods(http.MethodGet)
	r.HandleFunc("/api/health", h.Health.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/allocate-budget", h.Budget.AllocateBudget).Methods(http.MethodPost)
	api.HandleFunc("/savings-goal", h.Goal.SavingsGoal).Methods(http.MethodPost)
	api.HandleFunc("/investment-goal", h.Goal.InvestmentGoal).Methods(http.MethodPost)
	api.HandleFunc("/combined-goals", h.Goal.CombinedGoals).Methods(http.MethodPost)
	api.HandleFunc("/goal-conflict-resolver", h.Goal.ResolveConflicts).Methods(http.MethodPost)
	api.HandleFunc("/asset-allocation", h.Portfolio.OptimizeAllocation).Methods(http.MethodPost)
	api.HandleFunc("/tax-harvesting", h.Portfolio.TaxHarvesting).Methods(http.MethodPost)
	api.HandleFunc("/opportunity-cost", h.Portfolio.OpportunityCost).Methods(http.MethodPost)
	api.HandleFunc("/dynamic-reallocation", h.Spending.DynamicReallocation).Methods(http.MethodPost)
	api.HandleFunc("/expense-forecast", h.Spending.ExpenseForecast).Methods(http.MethodPost)
	api.HandleFunc("/income-volatility", h.Spending.IncomeVolatility).Methods(http.MethodPost)
	api.HandleFunc("/micro-savings", h.Spending.MicroSavings).Methods(http.MethodPost)
	api.HandleFunc("/streak-tracking", h.Spending.StreakTracking).Methods(http.MethodPost)
	api.HandleFunc("/market-advisor", h.Market.MarketAdvisor).Methods(http.MethodPost)
	api.HandleFunc("/inflation-adjuster", h.Market.InflationAdjuster).Methods(http.MethodPost)
	api.HandleFunc("/bank-feed-simulator", h.BankFeed.SimulateFeed).Methods(http.MethodPost)

	var handler http.Handler = r
	handler = RateLimitMiddleware(limiter, handler)
	handler = LoggingMiddleware(log, handler)
	handler = RequestIDMiddleware(handler)
	return handler
}
