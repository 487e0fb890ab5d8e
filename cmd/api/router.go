package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshelf-backend/internal/shared/middleware"
	"bookshelf-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.Logger(),
		middleware.ResolveSession(c.SessionStore),
	)

	// Health check
	router.GET("/health", healthCheckHandler(c))

	setupUserRoutes(router, c)
	setupBookRoutes(router, c)

	return router
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(router *gin.Engine, c *container.Container) {
	users := router.Group("/users")
	{
		users.POST("/register", c.AccountHandler.Register)
		users.POST("/login", c.AccountHandler.Login)
		users.POST("/logout", c.AccountHandler.Logout)

		// Profile routes - service tự trả AuthRequiredError khi anonymous,
		// RequireAuth chặn sớm với redirect mang next=<path>
		users.GET("/profile", c.AccountHandler.GetProfile)
		users.POST("/profile/edit", middleware.RequireAuth(), c.AccountHandler.UpdateProfile)
	}
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(router *gin.Engine, c *container.Container) {
	books := router.Group("/books")
	{
		books.GET("", c.CatalogHandler.ListBooks)
		books.GET("/:id", c.CatalogHandler.GetBook)
		books.POST("/:id/review", c.CatalogHandler.AddReview)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		checks := gin.H{"database": "ok", "redis": "ok"}

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			checks["database"] = err.Error()
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			checks["redis"] = err.Error()
		}

		ctx.JSON(status, gin.H{
			"status": http.StatusText(status),
			"checks": checks,
		})
	}
}
