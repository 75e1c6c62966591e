package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter configures the API routes
func SetupRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		search := v1.Group("/search")
		{
			search.GET("/repositories", h.SearchRepositories)
			search.GET("/users", h.SearchUsers)
		}

		users := v1.Group("/users/:username")
		{
			users.GET("", h.GetUser)
			users.GET("/repos", h.GetUserRepositories)
			users.GET("/calendar", h.GetContributionCalendar)
		}

		v1.GET("/repos/:owner/:repo", h.GetRepository)
		v1.GET("/trending", h.GetTrending)
		v1.GET("/stats/languages", h.GetLanguageStats)

		favorites := v1.Group("/favorites")
		{
			favorites.GET("/repositories", h.ListFavoriteRepositories)
			favorites.POST("/repositories/toggle", h.ToggleFavoriteRepository)
			favorites.GET("/users", h.ListFavoriteUsers)
			favorites.POST("/users/toggle", h.ToggleFavoriteUser)
		}

		v1.GET("/chat", h.GetTranscript)
		v1.POST("/chat", h.Chat)
	}

	return r
}
