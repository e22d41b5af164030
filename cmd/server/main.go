package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flipdar-api/internal/config"
	"flipdar-api/internal/database"
	"flipdar-api/internal/handlers"
	custommw "flipdar-api/internal/middleware"
	"flipdar-api/internal/repositories"
	"flipdar-api/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional; real deployments set environment variables directly
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	cfg := config.Load()

	setupLogger(cfg)

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	transactionRepo := repositories.NewTransactionRepository(db)
	searchHistoryRepo := repositories.NewSearchHistoryRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	tokenService := services.NewTokenService(&cfg.JWT)
	transactionService := services.NewTransactionService(transactionRepo, metrics, slog.Default())
	analyticsService := services.NewLedgerAnalyticsService(transactionRepo, metrics, cfg.Analytics.TopItemsLimit)
	historyService := services.NewSearchHistoryService(searchHistoryRepo, metrics, slog.Default())
	suggestionService := services.NewSuggestionService(transactionRepo, searchHistoryRepo, slog.Default())

	// Handlers
	healthHandler := handlers.NewHealthCheckHandler(db)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	historyHandler := handlers.NewHistoryHandler(historyService, suggestionService)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = custommw.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	// Middleware chain: order matters, trace IDs must exist before anything logs
	e.Use(custommw.RequestID())
	e.Use(custommw.PanicRecovery())
	e.Use(custommw.SecurityHeaders())
	e.Use(custommw.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	// Public endpoints
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Authenticated API
	requireAuth := custommw.RequireAuth(tokenService)

	api := e.Group("/api/v1", requireAuth)

	api.POST("/transactions", transactionHandler.CreateTransaction)
	api.GET("/transactions", transactionHandler.ListTransactions)
	api.POST("/transactions/import", transactionHandler.ImportTransactions)
	api.GET("/transactions/:id", transactionHandler.GetTransaction)
	api.PATCH("/transactions/:id", transactionHandler.UpdateTransaction)
	api.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

	api.GET("/analytics/summary", analyticsHandler.GetSummary)
	api.GET("/analytics/best-flip", analyticsHandler.GetBestFlip)
	api.GET("/analytics/top-items", analyticsHandler.GetTopItems)
	api.GET("/analytics/trend", analyticsHandler.GetTrend)

	api.POST("/history", historyHandler.RecordSearch)
	api.GET("/history", historyHandler.GetRecentSearches)
	api.GET("/history/analytics", historyHandler.GetSearchAnalytics)
	api.DELETE("/history/:id", historyHandler.DeleteSearch)

	api.GET("/suggestions", historyHandler.GetSuggestions)

	// Development-only endpoints for seeding and token minting
	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(transactionRepo, tokenService, metrics)

		dev := e.Group("/api/v1/dev")
		dev.POST("/token", devHandler.MintToken)
		dev.POST("/generate-test-data", devHandler.GenerateTestData, requireAuth)
		dev.DELETE("/test-data", devHandler.ClearTestData, requireAuth)

		slog.Warn("Development endpoints enabled", "environment", cfg.Server.Environment)
	}

	// Start server with graceful shutdown
	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("Starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("Server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped")
}

// setupLogger configures slog output for the environment: JSON in
// production, human-readable text everywhere else
func setupLogger(cfg *config.Config) {
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))
}
