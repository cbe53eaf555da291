package repository

import (
	"context"
	"fmt"
	"log"

	"kitchenswipe/internal/models"

	"gorm.io/gorm"
)

type RecipeRepository interface {
	Create(ctx context.Context, req *models.CreateRecipeRequest) (*models.Recipe, error)
	FindAll(ctx context.Context) ([]models.Recipe, error)
	FindByID(ctx context.Context, id uint) (*models.Recipe, error)
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db}
}

// Create inserts the recipe and its ingredients in one transaction.
func (r *recipeRepository) Create(ctx context.Context, req *models.CreateRecipeRequest) (*models.Recipe, error) {
	recipe := req.ToRecipe()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(recipe).Error
	})
	if err != nil {
		log.Printf("Error creating recipe %q: %v", req.Name, err)
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	return recipe, nil
}

func (r *recipeRepository) FindAll(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Order("created_at DESC").
		Find(&recipes).Error
	return recipes, err
}

func (r *recipeRepository) FindByID(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.WithContext(ctx).Preload("Ingredients").First(&recipe, id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}
