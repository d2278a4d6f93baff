package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/weekend-explore/explore/internal/auth"
	"github.com/weekend-explore/explore/internal/handlers"
	"github.com/weekend-explore/explore/internal/middleware"
	"github.com/weekend-explore/explore/internal/types"
)

func NewRouter(authHandler *handlers.AuthHandler, tripHandler *handlers.TripHandler, tokens *auth.TokenManager) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	requireAuth := middleware.AuthMiddleware(tokens)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/forgot-password", authHandler.ForgotPassword)
			authRoutes.GET("/me", requireAuth, authHandler.Me)
		}

		trips := api.Group("/trips")
		{
			trips.GET("", tripHandler.List)
			trips.GET("/:id", tripHandler.Get)
			trips.POST("", requireAuth, tripHandler.Create)
			trips.POST("/:id/join", requireAuth, tripHandler.Join)
		}
	}

	return r
}
