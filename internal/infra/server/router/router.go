// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/fintrack/backend/internal/integration/entrypoint/controller"
	"github.com/fintrack/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	dashboardController   *controller.DashboardController
	writeRateLimiter      *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	dashboardController *controller.DashboardController,
	writeRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		categoryController:    categoryController,
		transactionController: transactionController,
		dashboardController:   dashboardController,
		writeRateLimiter:      writeRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	if environment == "test" {
		r.engine = gin.New()
		r.engine.Use(gin.Recovery())
	} else {
		r.engine = gin.Default()
	}

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.categoryController != nil {
			v1.GET("/categories", r.categoryController.List)
		}

		if r.transactionController != nil {
			limit := r.writeLimit()

			transactions := v1.Group("/transactions")
			{
				transactions.GET("", r.transactionController.List)
				transactions.GET("/recent", r.transactionController.Recent)
				transactions.GET("/export", r.transactionController.Export)
				transactions.GET("/:id", r.transactionController.Get)
				transactions.POST("", limit, r.transactionController.Create)
				transactions.POST("/import", limit, r.transactionController.Import)
				transactions.PATCH("/:id", limit, r.transactionController.Update)
				transactions.DELETE("/:id", limit, r.transactionController.Delete)
				transactions.DELETE("", limit, r.transactionController.Clear)
			}
		}

		if r.dashboardController != nil {
			dashboard := v1.Group("/dashboard")
			{
				dashboard.GET("/summary", r.dashboardController.GetSummary)
				dashboard.GET("/categories", r.dashboardController.GetCategoryBreakdown)
			}
		}
	}
}

// writeLimit returns the rate limiting middleware for mutating routes, or a pass-through.
func (r *Router) writeLimit() gin.HandlerFunc {
	if r.writeRateLimiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return r.writeRateLimiter.Middleware()
}
