package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"budget-agent/config"
	httpLayer "budget-agent/http"
	"budget-agent/repository"
	"budget-agent/service"
)

const (
	serviceName    = "budget-agent"
	serviceVersion = "1.0.0"

	allocationHistoryLimit = 1000
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
		log.WithField("addr", cfg.RedisAddr).Info("using redis result cache")
	} else {
		cache = repository.NewMemoryCache()
		log.Info("using in-memory result cache")
	}

	allocationRepo := repository.NewAllocationRepositoryMemory(allocationHistoryLimit)

	// An empty key disables the LLM path; the template fallback still runs.
	narrative := service.NewNarrativeService(cfg.OpenAIKey, log)

	advisorService := service.NewAdvisorService(narrative)
	budgetService := service.NewBudgetService(allocationRepo, log)
	goalService := service.NewGoalService(advisorService, cache, log)
	rankingService := service.NewRankingService()
	portfolioService := service.NewPortfolioService(cache, log)
	spendingService := service.NewSpendingService()
	marketService := service.NewMarketService(goalService)
	bankFeedService := service.NewBankFeedService(rand.NewSource(time.Now().UnixNano()))

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(httpLayer.Handlers{
		Health:    httpLayer.NewHealthHandler(serviceName, serviceVersion),
		Budget:    httpLayer.NewBudgetHandler(budgetService),
		Goal:      httpLayer.NewGoalHandler(goalService, rankingService),
		Portfolio: httpLayer.NewPortfolioHandler(portfolioService),
		Spending:  httpLayer.NewSpendingHandler(spendingService),
		Market:    httpLayer.NewMarketHandler(marketService, goalService),
		BankFeed:  httpLayer.NewBankFeedHandler(bankFeedService),
	}, rateLimiter, log)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.HTTPAddr).Info("server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.WithError(err).Error("server failed to start")
		return
	case <-quit:
		log.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("error during server shutdown")
	}

	log.Info("server exited")
}
