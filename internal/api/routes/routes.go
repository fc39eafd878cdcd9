package routes

import (
	"time"

	"training-portal-backend/internal/api/handlers"
	"training-portal-backend/internal/api/middleware"
	"training-portal-backend/internal/auth"
	"training-portal-backend/internal/config"
	"training-portal-backend/internal/repository"
	"training-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	organizationRepo := repository.NewOrganizationRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	levelRepo := repository.NewLevelRepository(db)
	exerciseRepo := repository.NewExerciseRepository(db)

	// Initialize services
	authorizationService := service.NewAuthorizationService(membershipRepo)
	organizationService := service.NewOrganizationService(organizationRepo, membershipRepo, userRepo, authorizationService, validator)
	levelService := service.NewLevelService(levelRepo, authorizationService, validator)
	exerciseService := service.NewExerciseService(exerciseRepo, authorizationService, validator)
	userService := service.NewUserService(userRepo)

	// Initialize auth
	authService := auth.NewAuthService(cfg.JWTSecret, time.Hour)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	levelHandler := handlers.NewLevelHandler(levelService)
	exerciseHandler := handlers.NewExerciseHandler(exerciseService)
	userHandler := handlers.NewUserHandler(userService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes; everything below requires a verified identity
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		v1.GET("/me", userHandler.GetMe)

		orgs := v1.Group("/organizations")
		{
			orgs.GET("", organizationHandler.ListOrganizations)
			orgs.POST("", organizationHandler.CreateOrganization)
			orgs.GET("/:id", organizationHandler.GetOrganization)
			orgs.POST("/:id/members", organizationHandler.AddMember)
			orgs.GET("/:id/levels", levelHandler.ListLevels)
			orgs.GET("/:id/levels/roots", levelHandler.ListRootLevels)
			orgs.GET("/:id/exercises", exerciseHandler.ListExercises)
			orgs.POST("/:id/exercises", exerciseHandler.CreateExercise)
		}

		levels := v1.Group("/levels")
		{
			levels.POST("", levelHandler.CreateLevel)
			levels.GET("/:id", levelHandler.GetLevel)
			levels.PATCH("/:id/parent", levelHandler.UpdateLevelParent)
		}

		exercises := v1.Group("/exercises")
		{
			exercises.PATCH("/:id/status", exerciseHandler.UpdateExerciseStatus)
		}
	}

	return router
}
