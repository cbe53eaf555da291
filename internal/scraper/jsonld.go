package scraper

import (
	"strings"

	"kitchenswipe/internal/models"

	"github.com/tidwall/gjson"
)

// ExtractRecipe scans JSON-LD blocks and maps the first Recipe node it finds.
// It returns nil when no block holds a Recipe.
func ExtractRecipe(blocks []string) *models.RecipeDraft {
	for _, block := range blocks {
		if !gjson.Valid(block) {
			continue
		}
		for _, node := range collectNodes(gjson.Parse(block)) {
			if isRecipe(node) {
				return mapRecipeNode(node)
			}
		}
	}
	return nil
}

// collectNodes flattens top-level arrays and @graph containers.
func collectNodes(r gjson.Result) []gjson.Result {
	if r.IsArray() {
		var out []gjson.Result
		for _, item := range r.Array() {
			out = append(out, collectNodes(item)...)
		}
		return out
	}
	if graph := r.Get(`\@graph`); graph.Exists() {
		return collectNodes(graph)
	}
	if r.IsObject() {
		return []gjson.Result{r}
	}
	return nil
}

func isRecipe(node gjson.Result) bool {
	t := node.Get(`\@type`)
	if t.IsArray() {
		for _, v := range t.Array() {
			if text(v) == "Recipe" {
				return true
			}
		}
		return false
	}
	return text(t) == "Recipe"
}

func mapRecipeNode(node gjson.Result) *models.RecipeDraft {
	return &models.RecipeDraft{
		Title:        strings.TrimSpace(text(node.Get("name"))),
		Images:       extractImages(node.Get("image")),
		Ingredients:  extractIngredients(node.Get("recipeIngredient")),
		Instructions: extractInstructions(node.Get("recipeInstructions")),
		PrepTime:     text(node.Get("prepTime")),
		CookTime:     text(node.Get("cookTime")),
		TotalTime:    text(node.Get("totalTime")),
		ServingSize:  extractYield(node.Get("recipeYield")),
		Nutrition:    extractNutrition(node.Get("nutrition")),
	}
}

func extractImages(img gjson.Result) []string {
	images := []string{}
	switch {
	case img.Type == gjson.String:
		images = append(images, text(img))
	case img.IsArray():
		for _, item := range img.Array() {
			if item.Type == gjson.String {
				images = append(images, text(item))
			} else if u := item.Get("url"); u.Exists() {
				images = append(images, text(u))
			}
		}
	case img.IsObject():
		if u := img.Get("url"); u.Exists() {
			images = append(images, text(u))
		}
	}
	return images
}

func extractIngredients(ing gjson.Result) []string {
	if ing.Type == gjson.String {
		return models.ParseIngredientText(text(ing))
	}
	out := []string{}
	for _, item := range ing.Array() {
		if item.Type == gjson.String {
			out = append(out, text(item))
		}
	}
	return models.NormalizeIngredients(out)
}

// extractInstructions accepts plain strings, HowToStep objects ({text} or
// {name}) and HowToSection objects whose steps sit in itemListElement.
func extractInstructions(inst gjson.Result) []string {
	if inst.Type == gjson.String {
		if s := strings.TrimSpace(text(inst)); s != "" {
			return []string{s}
		}
		return []string{}
	}

	out := []string{}
	for _, step := range inst.Array() {
		var line string
		switch {
		case step.Type == gjson.String:
			line = text(step)
		case step.Get("text").Type == gjson.String:
			line = text(step.Get("text"))
		case step.Get("itemListElement").IsArray():
			out = append(out, extractInstructions(step.Get("itemListElement"))...)
			continue
		case step.Get("name").Type == gjson.String:
			line = text(step.Get("name"))
		}
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func extractYield(y gjson.Result) string {
	if y.IsArray() {
		items := y.Array()
		if len(items) == 0 {
			return ""
		}
		return text(items[0])
	}
	return text(y)
}

func extractNutrition(n gjson.Result) map[string]string {
	nutrition := map[string]string{}
	if !n.IsObject() {
		return nutrition
	}
	n.ForEach(func(key, value gjson.Result) bool {
		name := text(key)
		if strings.HasPrefix(name, "@") {
			return true
		}
		switch {
		case value.Type == gjson.String:
			nutrition[name] = text(value)
		case value.Type == gjson.Number:
			nutrition[name] = value.Raw
		case value.Get("value").Exists() && value.Get("unitText").Exists():
			nutrition[name] = text(value.Get("value")) + " " + text(value.Get("unitText"))
		}
		return true
	})
	return nutrition
}

// text reads a string value, replacing invalid UTF-8 so that a card encodes
// to the same JSON before and after a cache round trip.
func text(r gjson.Result) string {
	return strings.ToValidUTF8(r.String(), "\uFFFD")
}
