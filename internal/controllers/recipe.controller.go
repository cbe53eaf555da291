package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"kitchenswipe/internal/repository"
	"kitchenswipe/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RecipeController struct {
	repo repository.RecipeRepository
}

func NewRecipeController(repo repository.RecipeRepository) *RecipeController {
	return &RecipeController{repo: repo}
}

// GetRecipes godoc
// @Summary List saved recipes
// @Description Recipes saved from liked swipe cards, newest first
// @Tags recipes
// @Produce json
// @Success 200 {object} utils.Response{data=[]models.Recipe}
// @Failure 500 {object} utils.Response "Failed to retrieve recipes"
// @Router /api/recipes [get]
func (rc *RecipeController) GetRecipes(c *gin.Context) {
	recipes, err := rc.repo.FindAll(c.Request.Context())
	if err != nil {
		log.Printf("Error listing recipes: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Failed to retrieve recipes")
		return
	}

	utils.Success(c, http.StatusOK, recipes)
}

// GetRecipeByID godoc
// @Summary Get a saved recipe
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} utils.Response{data=models.Recipe}
// @Failure 400 {object} utils.Response "Invalid recipe ID"
// @Failure 404 {object} utils.Response "Recipe not found"
// @Router /api/recipes/{id} [get]
func (rc *RecipeController) GetRecipeByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.Error(c, http.StatusBadRequest, "Invalid recipe ID")
		return
	}

	recipe, err := rc.repo.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Recipe not found")
			return
		}
		log.Printf("Error fetching recipe %d: %v", id, err)
		utils.Error(c, http.StatusInternalServerError, "Failed to retrieve recipe")
		return
	}

	utils.Success(c, http.StatusOK, recipe)
}
