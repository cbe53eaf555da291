package routes

import (
	"kitchenswipe/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterSwipeRoutes(router *gin.Engine, swipeController *controllers.SwipeController, sessionLimit gin.HandlerFunc) {
	swipeRoutes := router.Group("/api/swipe")
	{
		swipeRoutes.POST("/session", sessionLimit, swipeController.InitSession)
		swipeRoutes.GET("/next", swipeController.Next)
		swipeRoutes.POST("/action", swipeController.RecordAction)
		swipeRoutes.POST("/undo", swipeController.Undo)
	}
}
