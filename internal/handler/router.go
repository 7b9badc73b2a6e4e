package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Register mounts every route on router. requireAuth guards the mutating
// routes.
func Register(router *gin.Engine, h *Handler, requireAuth gin.HandlerFunc) {
	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/auth/login", h.LoginUser)
		apiV1.GET("/events", h.StreamEvents)

		studioRoutes := apiV1.Group("/studios")
		{
			studioRoutes.GET("", h.GetStudios)
			studioRoutes.GET("/:id", h.GetStudioByID)
			studioRoutes.GET("/:id/games", h.GetStudioGames)
			studioRoutes.POST("", requireAuth, h.CreateStudio)
			studioRoutes.PUT("/:id", requireAuth, h.UpdateStudio)
			studioRoutes.DELETE("/:id", requireAuth, h.DeleteStudio)
		}

		gameRoutes := apiV1.Group("/games")
		{
			gameRoutes.GET("", h.GetGames)
			gameRoutes.GET("/:id", h.GetGameByID)
			gameRoutes.POST("", requireAuth, h.CreateGame)
			gameRoutes.PUT("/:id", requireAuth, h.UpdateGame)
			gameRoutes.DELETE("/:id", requireAuth, h.DeleteGame)
		}

		preferenceRoutes := apiV1.Group("/preferences")
		{
			preferenceRoutes.GET("", h.GetPreferences)
			preferenceRoutes.PUT("", requireAuth, h.UpdatePreferences)
			preferenceRoutes.POST("/theme/toggle", requireAuth, h.ToggleTheme)
			preferenceRoutes.POST("/language/toggle", requireAuth, h.ToggleLanguage)
		}
	}
}
