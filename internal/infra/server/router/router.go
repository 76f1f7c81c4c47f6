// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/profit-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/profit-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	dashboardController *controller.DashboardController
	settingsController  *controller.SettingsController
	entryController     *controller.EntryController
	goalController      *controller.GoalController
	trackerController   *controller.TrackerController
	authRateLimiter     *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	dashboardController *controller.DashboardController,
	settingsController *controller.SettingsController,
	entryController *controller.EntryController,
	goalController *controller.GoalController,
	trackerController *controller.TrackerController,
	authRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		dashboardController: dashboardController,
		settingsController:  settingsController,
		entryController:     entryController,
		goalController:      goalController,
		trackerController:   trackerController,
		authRateLimiter:     authRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery(), middleware.RequestLogger())

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.GET("/health", r.healthController.Check)

	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.authRateLimiter.Middleware(), r.authController.Register)
		auth.POST("/login", r.authRateLimiter.Middleware(), r.authController.Login)
		auth.POST("/refresh", r.authController.RefreshToken)
		auth.POST("/logout", r.authController.Logout)
	}

	dashboards := v1.Group("/dashboards")
	dashboards.Use(r.authMiddleware.Authenticate())
	{
		dashboards.GET("", r.dashboardController.List)
		dashboards.POST("", r.dashboardController.Create)
		dashboards.GET("/:id", r.dashboardController.Get)
		dashboards.PATCH("/:id", r.dashboardController.Rename)
		dashboards.DELETE("/:id", r.dashboardController.Delete)

		dashboards.GET("/:id/settings", r.settingsController.GetSettings)
		dashboards.PUT("/:id/settings", r.settingsController.UpdateSettings)
		dashboards.GET("/:id/initial-balance", r.settingsController.GetInitialBalance)
		dashboards.PUT("/:id/initial-balance", r.settingsController.SetInitialBalance)

		dashboards.GET("/:id/entries", r.entryController.List)
		dashboards.POST("/:id/entries", r.entryController.Upsert)
		dashboards.GET("/:id/tags", r.entryController.Tags)

		dashboards.GET("/:id/goals", r.goalController.List)
		dashboards.POST("/:id/goals", r.goalController.Create)
		dashboards.PUT("/:id/goals/:goal_id", r.goalController.Update)
		dashboards.DELETE("/:id/goals/:goal_id", r.goalController.Delete)

		dashboards.GET("/:id/calendar", r.trackerController.Calendar)
		dashboards.GET("/:id/days/:date", r.trackerController.Day)
		dashboards.GET("/:id/summary", r.trackerController.Summary)
		dashboards.GET("/:id/reports", r.trackerController.Report)
		dashboards.GET("/:id/export", r.trackerController.Export)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
