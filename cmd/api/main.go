package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"financeiro/internal/config"
	"financeiro/internal/database"
	"financeiro/internal/handlers"
	"financeiro/internal/logger"
	"financeiro/internal/middleware"
	"financeiro/internal/services"
	"financeiro/internal/validator"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Open the store with an explicit lifecycle; the handle is passed by
	// reference to the services below
	dbManager, err := database.NewManager(appConfig.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	// Ensure the schema and default rows exist; failures here are fatal
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	if err := dbManager.Seed(); err != nil {
		return fmt.Errorf("failed to seed defaults: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	categoryService := services.NewCategoryService(db)
	accountService := services.NewAccountService(db)
	entryService := services.NewEntryService(db)
	summaryService := services.NewSummaryService(accountService, entryService)

	// Initialize handlers
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	accountHandler := handlers.NewAccountHandler(accountService, entryService)
	entryHandler := handlers.NewEntryHandler(entryService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)

	// Register custom binding validators
	validator.Register()

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Category routes
	categories := v1.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetCategories)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Account routes
	accounts := v1.Group("/accounts")
	accounts.POST("", accountHandler.CreateAccount)
	accounts.GET("", accountHandler.GetAccounts)
	accounts.GET("/:id", accountHandler.GetAccountByID)
	accounts.PUT("/:id", accountHandler.UpdateAccount)
	accounts.DELETE("/:id", accountHandler.DeleteAccount)
	accounts.GET("/:id/entries", accountHandler.GetAccountEntries)

	// Entry routes
	entries := v1.Group("/entries")
	entries.POST("", entryHandler.CreateEntry)
	entries.GET("", entryHandler.GetEntries)
	entries.GET("/:id", entryHandler.GetEntryByID)
	entries.PUT("/:id", entryHandler.UpdateEntry)
	entries.DELETE("/:id", entryHandler.DeleteEntry)

	// Summary routes
	summary := v1.Group("/summary")
	summary.GET("/balance", summaryHandler.GetOverallBalance)
	summary.GET("/accounts", summaryHandler.GetAccountBalances)
	summary.GET("/categories", summaryHandler.GetCategoryBreakdown)

	log.Infof("Starting financeiro server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
