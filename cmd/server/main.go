package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/yukikurage/field-service-api/internal/config"
	"github.com/yukikurage/field-service-api/internal/constants"
	"github.com/yukikurage/field-service-api/internal/database"
	"github.com/yukikurage/field-service-api/internal/handlers"
	"github.com/yukikurage/field-service-api/internal/middleware"
	"github.com/yukikurage/field-service-api/internal/repository"
	"github.com/yukikurage/field-service-api/internal/services"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	logger, err := initLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg, logger); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := database.Migrate(logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	db := database.GetDB()

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,                        // Redis pool size
		"tcp",                     // network type
		redisAddr,                 // Redis address from config
		"",                        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		logger.Fatal("Failed to create Redis store", zap.Error(err))
	}
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.TokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Repositories and services
	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)

	authService := services.NewAuthService(userRepo)
	companyService := services.NewCompanyService(companyRepo)
	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	jobOrderService := services.NewJobOrderService(repository.NewTxManager(db), logger.Named("job_orders"))
	taskService := services.NewTaskService(repository.NewTaskRepository(db), logger.Named("tasks"))
	orderService := services.NewWorkingOrderService(repository.NewWorkingOrderRepository(db))
	aiService := services.NewAIService(cfg.OpenAIAPIKey)
	if !aiService.Enabled() {
		logger.Info("OPENAI_API_KEY not set, instruction suggestions disabled")
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, companyService, tokenService)
	companyHandler := handlers.NewCompanyHandler(companyService)
	jobOrderHandler := handlers.NewJobOrderHandler(jobOrderService)
	taskHandler := handlers.NewTaskHandler(taskService, aiService)
	orderHandler := handlers.NewWorkingOrderHandler(orderService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Field Service API is running",
		})
	})

	requireAuth := middleware.RequireAuth(tokenService)

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", requireAuth, authHandler.GetCurrentUser)
		}

		// Company routes (protected)
		company := api.Group("/companies/:companyId")
		company.Use(requireAuth, middleware.RequireCompanyAccess(companyService))
		{
			company.GET("", companyHandler.GetCompany)
			company.GET("/users", companyHandler.ListUsers)

			company.POST("/job-orders", jobOrderHandler.CreateJobOrder)

			company.GET("/tasks", taskHandler.ListTasks)
			company.GET("/tasks/:taskId", taskHandler.GetTask)
			company.PATCH("/tasks/:taskId/status", taskHandler.UpdateTaskStatus)
			company.PATCH("/tasks/:taskId/instructions", taskHandler.UpdateTaskInstructions)
			company.POST("/task-details/suggest-instructions", taskHandler.SuggestInstructions)

			company.GET("/projects/:projectId/orders", orderHandler.ListProjectOrders)
			company.POST("/projects/:projectId/orders", orderHandler.CreateProjectOrder)
			company.GET("/orders/:orderId", orderHandler.GetOrder)
			company.PATCH("/orders/:orderId", orderHandler.UpdateOrder)
			company.DELETE("/orders/:orderId", orderHandler.DeleteOrder)
		}
	}

	// Start server
	addr := ":" + cfg.Port
	logger.Info("Server starting", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

func initLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.LogFormat == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.LogLevel {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}
