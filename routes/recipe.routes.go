package routes

import (
	"kitchenswipe/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRecipeRoutes(router *gin.Engine, recipeController *controllers.RecipeController) {
	recipeRoutes := router.Group("/api/recipes")
	{
		recipeRoutes.GET("", recipeController.GetRecipes)
		recipeRoutes.GET("/:id", recipeController.GetRecipeByID)
	}
}
