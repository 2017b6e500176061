package http

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// Pinger reports store liveness for the health endpoint
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterConfig holds all dependencies for routing
type RouterConfig struct {
	AuthHandler      *AuthHandler
	TradeHandler     *TradeHandler
	UploadHandler    *UploadHandler
	DashboardHandler *DashboardHandler

	// AuthMiddleware guards every owner-scoped route
	AuthMiddleware echo.MiddlewareFunc

	// UploadDir is served statically under /uploads
	UploadDir string

	DB Pinger
}

// SetupRoutes configures middleware and all HTTP routes
func SetupRoutes(e *echo.Echo, config *RouterConfig) {
	e.Validator = NewValidator()

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/health"
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())

	// Health check
	e.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		dbStatus := "healthy"
		if err := config.DB.Ping(ctx); err != nil {
			dbStatus = "unhealthy"
		}

		return SuccessResponse(c, map[string]interface{}{
			"status":    "healthy",
			"service":   "tradejournal-api",
			"database":  dbStatus,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Uploaded chart images
	e.Static("/uploads", config.UploadDir)

	// API group
	api := e.Group("/api")

	// Auth routes (public, rate limited against credential stuffing)
	auth := api.Group("/auth", middleware.RateLimiter(
		middleware.NewRateLimiterMemoryStore(rate.Limit(10)),
	))
	{
		auth.POST("/register", config.AuthHandler.Register)
		auth.POST("/login", config.AuthHandler.Login)
	}

	// Authenticated routes
	api.GET("/auth/me", config.AuthHandler.Me, config.AuthMiddleware)

	protected := api.Group("", config.AuthMiddleware)
	{
		protected.POST("/upload", config.UploadHandler.Upload)
		protected.POST("/trades", config.TradeHandler.Create)
		protected.GET("/trades", config.TradeHandler.List)
		protected.GET("/trades/:id", config.TradeHandler.Get)
		protected.PUT("/trades/:id", config.TradeHandler.Update)
		protected.DELETE("/trades/:id", config.TradeHandler.Delete)
		protected.GET("/dashboard/stats", config.DashboardHandler.Stats)
	}
}
