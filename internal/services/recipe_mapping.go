package services

import (
	"regexp"
	"strconv"
	"strings"

	"kitchenswipe/internal/models"
)

var (
	leadingDigits = regexp.MustCompile(`^\d+`)
	isoDuration   = regexp.MustCompile(`(?i)^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:\d+(?:\.\d+)?S)?)?$`)
)

// CreateRecipeFromCard maps a liked card onto the recipe repository's input.
func CreateRecipeFromCard(card models.RecipeCard) models.CreateRecipeRequest {
	steps := make([]string, 0, len(card.Instructions))
	for _, step := range card.Instructions {
		steps = append(steps, step.Text)
	}

	req := models.CreateRecipeRequest{
		Name:         card.Name,
		Instructions: strings.Join(steps, "\n"),
		CookingTime:  ParseCookingMinutes(card.CookTime),
		Ingredients:  make([]models.CreateIngredientRequest, 0, len(card.Ingredients)),
	}
	if card.Difficulty != "" {
		difficulty := card.Difficulty
		req.Difficulty = &difficulty
	}
	if card.ExternalURL != "" {
		url := card.ExternalURL
		req.URL = &url
	}
	for _, name := range card.Ingredients {
		req.Ingredients = append(req.Ingredients, models.CreateIngredientRequest{
			IngredientName: name,
			Quantity:       1,
			Unit:           "",
			IsProtein:      false,
		})
	}
	return req
}

// ParseCookingMinutes reads a free-text cook time. "30 mins" gives 30 and
// "PT1H15M" gives 75; anything else gives nil.
func ParseCookingMinutes(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if digits := leadingDigits.FindString(s); digits != "" {
		n, err := strconv.Atoi(digits)
		if err != nil {
			return nil
		}
		return &n
	}

	m := isoDuration.FindStringSubmatch(s)
	if m == nil || (m[1] == "" && m[2] == "" && m[3] == "") {
		return nil
	}
	days, _ := strconv.Atoi(m[1])
	hours, _ := strconv.Atoi(m[2])
	minutes, _ := strconv.Atoi(m[3])
	total := days*24*60 + hours*60 + minutes
	return &total
}
