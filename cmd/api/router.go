package api

import (
	"net/http"

	"meetnotes-backend/internal/auth/delivery"
	authUsecase "meetnotes-backend/internal/auth/usecase"
	summaryDelivery "meetnotes-backend/internal/summary/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUsecase authUsecase.AuthUsecase, summaryHandler *summaryDelivery.SummaryHandler) {
	authHandler := delivery.NewAuthHandler(authUsecase)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/register", authHandler.Register)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", delivery.AuthMiddleware(authUsecase), authHandler.Me)
			auth.POST("/logout", authHandler.Logout)
		}

		// Summary routes (protected)
		protected := api.Group("")
		protected.Use(delivery.AuthMiddleware(authUsecase))
		{
			protected.GET("/prompts", summaryHandler.GetPrompts)
			protected.POST("/summarize", summaryHandler.Summarize)
			protected.POST("/save-summary", summaryHandler.SaveSummary)
			protected.GET("/summaries", summaryHandler.ListSummaries)
			protected.DELETE("/summaries/:id", summaryHandler.DeleteSummary)
			protected.POST("/summaries/search", summaryHandler.Search)
			protected.POST("/share", summaryHandler.Share)
			protected.POST("/upload", summaryHandler.Upload)
		}

		// Settings routes (public) - Runtime configuration
		settings := api.Group("/settings")
		{
			settings.GET("/ollama", GetOllamaSettings)
			settings.PUT("/ollama", UpdateOllamaSettings)
			settings.POST("/ollama/test", TestOllamaConnection)
		}
	}
}
