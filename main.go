package main

import (
	"encoding/json"
	stdlog "log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/0pain01/Financial-Foresight/src/config"
	"github.com/0pain01/Financial-Foresight/src/database"
	"github.com/0pain01/Financial-Foresight/src/handlers"
	"github.com/0pain01/Financial-Foresight/src/logger"
	"github.com/0pain01/Financial-Foresight/src/parsers"
	"github.com/0pain01/Financial-Foresight/src/processors"
	"github.com/0pain01/Financial-Foresight/src/security"
	"github.com/0pain01/Financial-Foresight/src/services"
)

var limiter = rate.NewLimiter(rate.Every(100*time.Millisecond), 30)

func rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			logger.L.Warn("Rate limit exceeded", "path", r.URL.Path)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		allowedOrigins := map[string]bool{
			"http://localhost:3000":     true,
			config.Cfg.FrontendBaseURL: true,
		}

		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, PATCH")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, X-Requested-With")
		} else if origin == "" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)

	logger.L.Info("Financial Foresight backend server starting...")

	if config.Cfg.JWTSecret == "" || len(config.Cfg.JWTSecret) < 32 {
		logger.L.Error("JWT_SECRET configuration invalid.")
		os.Exit(1)
	}

	logger.L.Info("Initializing database...", "path", config.Cfg.DatabasePath)
	database.InitDB(config.Cfg.DatabasePath)
	database.RunMigrations(config.Cfg.DatabasePath)

	reportCache := cache.New(services.DefaultCacheExpiration, services.CacheCleanupInterval)

	authService := security.NewAuthService(config.Cfg.JWTSecret)

	txRepo := database.NewTransactionRepository(database.DB)
	billRepo := database.NewBillRepository(database.DB)
	incomeRepo := database.NewIncomeRepository(database.DB)
	investmentRepo := database.NewInvestmentRepository(database.DB)
	budgetRepo := database.NewBudgetRepository(database.DB)

	enricher := processors.NewEnricher()
	expander := processors.NewExpander(config.Cfg.RecurrenceHorizon)

	billRoller := services.NewRecurringBillService(billRepo)
	insightService := services.NewInsightService(txRepo, billRepo, incomeRepo, investmentRepo, billRoller, reportCache)
	transactionService := services.NewTransactionService(txRepo, enricher, expander, insightService)

	userHandler := handlers.NewUserHandler(authService)
	txHandler := handlers.NewTransactionHandler(transactionService)
	billHandler := handlers.NewBillHandler(billRepo, insightService)
	incomeHandler := handlers.NewIncomeHandler(incomeRepo, insightService)
	investmentHandler := handlers.NewInvestmentHandler(investmentRepo, insightService)
	budgetHandler := handlers.NewBudgetHandler(budgetRepo)
	insightsHandler := handlers.NewInsightsHandler(insightService)
	importHandler := handlers.NewImportHandler(parsers.NewStatementParser(), transactionService)

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(handlers.ContextualLoggerMiddleware)
	r.Use(enableCORS)
	r.Use(rateLimitMiddleware)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Financial Foresight Backend is running"})
	})

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Group(func(r chi.Router) {
			r.Post("/auth/register", userHandler.RegisterUserHandler)
			r.Post("/auth/login", userHandler.LoginUserHandler)
			r.Post("/auth/refresh", userHandler.RefreshTokenHandler)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(userHandler.AuthMiddleware)

			r.Get("/transactions", txHandler.HandleGetTransactions)
			r.Post("/transactions", txHandler.HandleCreateTransaction)
			r.Put("/transactions/{id}", txHandler.HandleUpdateTransaction)
			r.Delete("/transactions/{id}", txHandler.HandleDeleteTransaction)

			r.Get("/bills", billHandler.HandleGetBills)
			r.Post("/bills", billHandler.HandleCreateBill)
			r.Put("/bills/{id}", billHandler.HandleUpdateBill)
			r.Delete("/bills/{id}", billHandler.HandleDeleteBill)

			r.Get("/incomes", incomeHandler.HandleGetIncomes)
			r.Post("/incomes", incomeHandler.HandleCreateIncome)
			r.Put("/incomes/{id}", incomeHandler.HandleUpdateIncome)
			r.Delete("/incomes/{id}", incomeHandler.HandleDeleteIncome)

			r.Get("/investments", investmentHandler.HandleGetInvestments)
			r.Post("/investments", investmentHandler.HandleCreateInvestment)
			r.Put("/investments/{id}", investmentHandler.HandleUpdateInvestment)
			r.Delete("/investments/{id}", investmentHandler.HandleDeleteInvestment)

			r.Get("/budgets", budgetHandler.HandleGetBudgets)
			r.Post("/budgets", budgetHandler.HandleCreateBudget)
			r.Put("/budgets/{id}", budgetHandler.HandleUpdateBudget)
			r.Delete("/budgets/{id}", budgetHandler.HandleDeleteBudget)

			r.Get("/dashboard", insightsHandler.HandleGetDashboard)
			r.Get("/insights", insightsHandler.HandleGetInsights)
			r.Get("/savings-projection", insightsHandler.HandleGetSavingsProjection)
			r.Get("/net-worth-projection", insightsHandler.HandleGetNetWorthProjection)

			r.Post("/import/statement", importHandler.HandleImportStatement)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/api/") {
			http.NotFound(w, r)
		}
	})

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		stdlog.Fatalf("Failed to start server: %v", err)
	}
}
