package search

import (
	"strings"

	"kitchenswipe/internal/models"

	"github.com/tidwall/gjson"
)

// nativeCard maps the provider's inline recipe object onto a swipe card.
func nativeCard(r gjson.Result, pageURL string) models.RecipeCard {
	card := models.RecipeCard{
		RecipeID:     pageURL,
		Name:         text(r.Get("title")),
		Description:  text(r.Get("description")),
		Image:        text(r.Get("thumbnail.original")),
		PrepTime:     text(r.Get("prep_time")),
		CookTime:     text(r.Get("cook_time")),
		TotalTime:    text(r.Get("time")),
		ServingSize:  text(r.Get("servings")),
		Ingredients:  nativeIngredients(r.Get("ingredients")),
		Instructions: nativeInstructions(r.Get("instructions")),
		Nutrition:    map[string]string{},
		ExternalURL:  pageURL,
		Category:     text(r.Get("recipeCategory")),
		Cuisine:      text(r.Get("recipeCuisine")),
		Domain:       text(r.Get("domain")),
		Favicon:      text(r.Get("favicon")),
	}
	if u := text(r.Get("url")); u != "" {
		card.ExternalURL = u
	}
	if calories := r.Get("calories"); calories.Exists() && text(calories) != "" {
		card.Nutrition["calories"] = text(calories)
	}
	if rating := r.Get("rating"); rating.IsObject() {
		card.Rating = &models.Rating{
			Value:       rating.Get("ratingValue").Float(),
			Best:        rating.Get("bestRating").Float(),
			ReviewCount: int(rating.Get("reviewCount").Int()),
		}
	}
	return card
}

func nativeIngredients(r gjson.Result) models.Ingredients {
	if r.Type == gjson.String {
		return models.ParseIngredientText(text(r))
	}
	var list []string
	for _, item := range r.Array() {
		if item.Type == gjson.String {
			list = append(list, text(item))
		}
	}
	return models.NormalizeIngredients(list)
}

func nativeInstructions(r gjson.Result) []models.InstructionStep {
	steps := []models.InstructionStep{}
	for _, item := range r.Array() {
		if item.Type == gjson.String {
			steps = append(steps, models.InstructionStep{Text: text(item)})
			continue
		}
		step := models.InstructionStep{
			Text: text(item.Get("text")),
			Name: text(item.Get("name")),
			URL:  text(item.Get("url")),
		}
		if img := item.Get("image"); img.IsArray() {
			if imgs := img.Array(); len(imgs) > 0 {
				step.Image = text(imgs[0])
			}
		} else {
			step.Image = text(img)
		}
		if step.Text == "" {
			step.Text = step.Name
		}
		if step.Text != "" {
			steps = append(steps, step)
		}
	}
	return steps
}

func text(r gjson.Result) string {
	return strings.ToValidUTF8(r.String(), "\uFFFD")
}
