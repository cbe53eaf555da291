package models

import "time"

type Recipe struct {
	ID           uint               `gorm:"primaryKey" json:"id" example:"1"`
	Name         string             `gorm:"not null" json:"name" example:"Vegan Chili"`
	Instructions string             `gorm:"type:text" json:"instructions"`
	CookingTime  *int               `json:"cooking_time,omitempty" example:"30"`
	Difficulty   *string            `json:"difficulty,omitempty"`
	URL          *string            `gorm:"type:text" json:"url,omitempty"`
	Ingredients  []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients"`
	CreatedAt    time.Time          `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

type RecipeIngredient struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	RecipeID       uint    `gorm:"not null;index" json:"recipe_id"`
	IngredientName string  `gorm:"not null" json:"ingredient_name"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	IsProtein      bool    `json:"is_protein"`
}

// CreateRecipeRequest is the shape accepted by the recipe repository.
type CreateRecipeRequest struct {
	Name         string                    `json:"name" binding:"required"`
	Instructions string                    `json:"instructions"`
	CookingTime  *int                      `json:"cooking_time,omitempty"`
	Difficulty   *string                   `json:"difficulty,omitempty"`
	URL          *string                   `json:"url,omitempty"`
	Ingredients  []CreateIngredientRequest `json:"ingredients"`
}

type CreateIngredientRequest struct {
	IngredientName string  `json:"ingredient_name"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	IsProtein      bool    `json:"is_protein"`
}

func (r *CreateRecipeRequest) ToRecipe() *Recipe {
	recipe := &Recipe{
		Name:         r.Name,
		Instructions: r.Instructions,
		CookingTime:  r.CookingTime,
		Difficulty:   r.Difficulty,
		URL:          r.URL,
	}
	for _, ing := range r.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, RecipeIngredient{
			IngredientName: ing.IngredientName,
			Quantity:       ing.Quantity,
			Unit:           ing.Unit,
			IsProtein:      ing.IsProtein,
		})
	}
	return recipe
}
