package main

import (
	stdlog "log"
	"time"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"

	"github.com/fgillet-lagoon/hour-track/internal/config"
	"github.com/fgillet-lagoon/hour-track/internal/constants"
	"github.com/fgillet-lagoon/hour-track/internal/database"
	"github.com/fgillet-lagoon/hour-track/internal/handlers"
	"github.com/fgillet-lagoon/hour-track/internal/log"
	"github.com/fgillet-lagoon/hour-track/internal/middleware"
	"github.com/fgillet-lagoon/hour-track/internal/report"
	"github.com/fgillet-lagoon/hour-track/internal/repository"
	"github.com/fgillet-lagoon/hour-track/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger := log.New(log.ComponentApp, log.Config{})

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		stdlog.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		stdlog.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default admin and sample projects on an empty database
	if err := database.Seed(cfg, logger.WithComponent(log.ComponentSeed)); err != nil {
		stdlog.Fatalf("Failed to seed database: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		stdlog.Fatalf("Failed to create Redis store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	entryRepo := repository.NewEntryRepository(db)

	// Services
	palette := report.DefaultPalette
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	projectService := services.NewProjectService(projectRepo, palette)
	entryService := services.NewEntryService(entryRepo, projectRepo)
	reportService := services.NewReportService(entryRepo, projectRepo, palette,
		logger.WithComponent(log.ComponentReports))

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	entryHandler := handlers.NewEntryHandler(entryService)
	reportHandler := handlers.NewReportHandler(reportService, time.Now)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "hour-track API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// User management (admin only)
		users := api.Group("/users")
		users.Use(middleware.RequireAuth(), middleware.RequireAdmin())
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		// Projects (listing for all users, mutations admin only)
		projects := api.Group("/projects")
		projects.Use(middleware.RequireAuth())
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", middleware.RequireAdmin(), projectHandler.CreateProject)
			projects.PUT("/:id", middleware.RequireAdmin(), projectHandler.UpdateProject)
			projects.DELETE("/:id", middleware.RequireAdmin(), projectHandler.DeleteProject)
		}

		// Time entries
		entries := api.Group("/entries")
		entries.Use(middleware.RequireAuth())
		{
			entries.GET("", entryHandler.ListEntries)
			entries.POST("", entryHandler.CreateEntry)
			entries.DELETE("/:id", middleware.RequireEntryAccess(), entryHandler.DeleteEntry)
		}

		// Reports and export
		reports := api.Group("/reports")
		reports.Use(middleware.RequireAuth())
		{
			reports.GET("/projects", reportHandler.ProjectReport)
			reports.GET("/months", reportHandler.MonthReport)
			reports.GET("/users", middleware.RequireAdmin(), reportHandler.UserReport)
			reports.GET("/chart", reportHandler.Chart)
			reports.GET("/export", reportHandler.Export)
		}

		api.GET("/dashboard", middleware.RequireAuth(), reportHandler.Dashboard)
	}

	// Start server
	logger.Info("server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		stdlog.Fatalf("Failed to start server: %v", err)
	}
}
