package routes

import (
	"kitchenswipe/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterHealthRoutes(router *gin.Engine, healthController *controllers.HealthController) {
	router.GET("/api", healthController.Health)

	debugRoutes := router.Group("/debug")
	{
		debugRoutes.GET("/cache", healthController.CacheStatus)
		debugRoutes.GET("/jobs", healthController.JobStatus)
	}
}
