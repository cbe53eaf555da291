package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// RecipeCard is the unit shown in the swipe deck. RecipeID is the source URL.
type RecipeCard struct {
	RecipeID     string            `json:"recipeId"`
	Name         string            `json:"name"`
	Description  string            `json:"description,omitempty"`
	Image        string            `json:"image"`
	PrepTime     string            `json:"prepTime,omitempty"`
	CookTime     string            `json:"cookTime,omitempty"`
	TotalTime    string            `json:"totalTime,omitempty"`
	ServingSize  string            `json:"servingSize,omitempty"`
	Difficulty   string            `json:"difficulty,omitempty"`
	Ingredients  Ingredients       `json:"ingredients"`
	Instructions []InstructionStep `json:"instructions"`
	Nutrition    map[string]string `json:"nutrition"`
	ExternalURL  string            `json:"externalUrl"`
	Rating       *Rating           `json:"rating,omitempty"`
	Category     string            `json:"category,omitempty"`
	Cuisine      string            `json:"cuisine,omitempty"`
	Domain       string            `json:"domain,omitempty"`
	Favicon      string            `json:"favicon,omitempty"`
}

type InstructionStep struct {
	Text  string `json:"text"`
	Name  string `json:"name,omitempty"`
	URL   string `json:"url,omitempty"`
	Image string `json:"image,omitempty"`
}

type Rating struct {
	Value       float64 `json:"ratingValue"`
	Best        float64 `json:"bestRating,omitempty"`
	ReviewCount int     `json:"reviewCount,omitempty"`
}

// Ingredients is always stored as an ordered list. Decoding also accepts a
// single string, split on line breaks.
type Ingredients []string

func (in *Ingredients) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*in = Ingredients{}
		return nil
	}

	switch data[0] {
	case '[':
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("ingredients: %w", err)
		}
		*in = NormalizeIngredients(list)
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("ingredients: %w", err)
		}
		*in = ParseIngredientText(s)
		return nil
	}

	return fmt.Errorf("ingredients: unsupported JSON value %s", string(data))
}

func (in Ingredients) MarshalJSON() ([]byte, error) {
	if in == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(in))
}

// ParseIngredientText splits a delimited ingredient string into entries.
func ParseIngredientText(s string) Ingredients {
	return NormalizeIngredients(strings.FieldsFunc(s, func(r rune) bool {
		return r == '\n' || r == '\r'
	}))
}

// NormalizeIngredients trims entries and drops empty ones.
func NormalizeIngredients(list []string) Ingredients {
	out := make(Ingredients, 0, len(list))
	for _, item := range list {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// StubCard is the placeholder shown when a URL could not be resolved.
func StubCard(url string) RecipeCard {
	return RecipeCard{
		RecipeID:     url,
		Name:         "Recipe: " + url,
		Description:  "Swipe to like or skip.",
		Image:        "",
		Ingredients:  Ingredients{},
		Instructions: []InstructionStep{},
		Nutrition:    map[string]string{},
		ExternalURL:  url,
	}
}

// RecipeDraft is the normalized result of structured-data extraction.
type RecipeDraft struct {
	Title        string            `json:"title"`
	Images       []string          `json:"images"`
	Ingredients  []string          `json:"ingredients"`
	Instructions []string          `json:"instructions"`
	PrepTime     string            `json:"prep_time"`
	CookTime     string            `json:"cook_time"`
	TotalTime    string            `json:"total_time"`
	ServingSize  string            `json:"serving_size"`
	Nutrition    map[string]string `json:"nutrition"`
}

// CardFromDraft builds the swipe card for an extracted draft.
func CardFromDraft(url string, draft *RecipeDraft) RecipeCard {
	card := RecipeCard{
		RecipeID:     url,
		Name:         draft.Title,
		PrepTime:     draft.PrepTime,
		CookTime:     draft.CookTime,
		TotalTime:    draft.TotalTime,
		ServingSize:  draft.ServingSize,
		Ingredients:  NormalizeIngredients(draft.Ingredients),
		Instructions: []InstructionStep{},
		Nutrition:    draft.Nutrition,
		ExternalURL:  url,
	}
	if len(draft.Images) > 0 {
		card.Image = draft.Images[0]
	}
	if len(draft.Instructions) > 0 {
		card.Instructions = []InstructionStep{{Text: strings.Join(draft.Instructions, "\n")}}
	}
	if card.Nutrition == nil {
		card.Nutrition = map[string]string{}
	}
	return card
}
