package main

import (
	"fmt"
	"net/http"
	"os"

	"aurum/internal/ai"
	"aurum/internal/config"
	"aurum/internal/database"
	_ "aurum/internal/docs" // Import swagger docs
	"aurum/internal/handlers"
	"aurum/internal/logger"
	"aurum/internal/middleware"
	"aurum/internal/pricing"
	"aurum/internal/services"
	"aurum/internal/storage"
	"aurum/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Aurum API
// @version         1.0
// @description     Aurum is a digital gold investment demo: a chat assistant that detects investment intent, simulated gold pricing, and an append-only ledger of purchases and conversations.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api

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

	// Register custom binding rules
	validator.Register()

	// Build the ledger on the configured backend
	var ledger storage.Ledger
	if appConfig.DBDriver == "memory" {
		ledger = storage.NewMemoryLedger()
	} else {
		dbManager, err := database.NewManager(appConfig)
		if err != nil {
			return fmt.Errorf("failed to create database manager: %w", err)
		}
		if err := dbManager.Migrate(); err != nil {
			return fmt.Errorf("failed to run database migrations: %w", err)
		}
		ledger = storage.NewGormLedger(dbManager.DB())
	}

	// Build the completion provider and assistant
	completer, err := ai.NewCompleter(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create completion provider: %w", err)
	}
	assistant := ai.NewAssistant(completer)
	log.Infof("Assistant initialized with %s", completer.Name())

	// Initialize services
	simulator := pricing.NewSimulator()
	userService := services.NewUserService(ledger)
	purchaseService := services.NewPurchaseService(ledger, simulator)
	chatService := services.NewChatService(ledger, assistant, simulator)

	// Seed the demo user
	if _, err := userService.EnsureSeedUser(appConfig.SeedUserName); err != nil {
		return fmt.Errorf("failed to seed demo user: %w", err)
	}

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	chatHandler := handlers.NewChatHandler(chatService)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService)
	priceHandler := handlers.NewPriceHandler(simulator)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API group
	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api.POST("/users", userHandler.CreateUser)
	api.POST("/chat", chatHandler.Chat)
	api.GET("/chat-history/:userId", chatHandler.GetChatHistory)
	api.POST("/purchase", purchaseHandler.CreatePurchase)
	api.GET("/portfolio/:userId", purchaseHandler.GetPortfolio)
	api.GET("/gold-price", priceHandler.GetGoldPrice)

	log.Infof("Starting Aurum backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
