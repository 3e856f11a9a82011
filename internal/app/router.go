package app

import (
	"uni_archive_backend/docs"
	"uni_archive_backend/internal/config"
	"uni_archive_backend/internal/middleware"
	"uni_archive_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		api.POST("/auth/otp", c.auth.RequestOtp)
		api.POST("/auth/verify", c.auth.VerifyOtp)

		// Catalog routes are open to guests. A token, when present, only
		// attributes uploads to the signed-in student.
		resources := api.Group("/resources")
		resources.Use(middleware.TryAuthMiddleware(cfg))
		{
			resources.GET("", c.resource.ListResources)
			resources.POST("", c.resource.CreateResource)
			resources.GET("/:id", c.resource.GetResource)
			resources.POST("/:id/comments", c.resource.CreateComment)
			resources.POST("/:id/:action", c.resource.Interact)
		}

		api.GET("/stats", c.stats.GetStats)
		api.POST("/ai/ask", c.ai.Ask)

		library := api.Group("/library")
		library.Use(middleware.AuthMiddleware(cfg))
		{
			library.GET("/pins", c.library.ListPins)
			library.POST("/pins", c.library.PinSubject)
			library.DELETE("/pins/:code", c.library.UnpinSubject)
			library.GET("/saved", c.library.ListSaved)
			library.POST("/saved/:resourceId", c.library.SaveResource)
			library.DELETE("/saved/:resourceId", c.library.UnsaveResource)
		}
	}
}
