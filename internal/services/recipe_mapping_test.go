package services

import (
	"testing"

	"kitchenswipe/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCookingMinutes(t *testing.T) {
	tests := []struct {
		input string
		want  *int
	}{
		{"30", intPtr(30)},
		{"45 mins", intPtr(45)},
		{"  20 minutes", intPtr(20)},
		{"PT30M", intPtr(30)},
		{"PT1H15M", intPtr(75)},
		{"pt2h", intPtr(120)},
		{"P1DT2H", intPtr(1560)},
		{"PT45M30S", intPtr(45)},
		{"", nil},
		{"about an hour", nil},
		{"PT", nil},
		{"P", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseCookingMinutes(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestCreateRecipeFromCard(t *testing.T) {
	card := models.RecipeCard{
		RecipeID:     "https://x/soup",
		Name:         "Tomato Soup",
		CookTime:     "25 min",
		Difficulty:   "easy",
		Ingredients:  models.Ingredients{"4 tomatoes", "1 onion"},
		Instructions: []models.InstructionStep{{Text: "Chop."}, {Text: "Simmer."}},
		ExternalURL:  "https://x/soup",
	}

	req := CreateRecipeFromCard(card)

	assert.Equal(t, "Tomato Soup", req.Name)
	assert.Equal(t, "Chop.\nSimmer.", req.Instructions)
	require.NotNil(t, req.CookingTime)
	assert.Equal(t, 25, *req.CookingTime)
	require.NotNil(t, req.Difficulty)
	assert.Equal(t, "easy", *req.Difficulty)
	require.NotNil(t, req.URL)
	assert.Equal(t, "https://x/soup", *req.URL)
	assert.Equal(t, []models.CreateIngredientRequest{
		{IngredientName: "4 tomatoes", Quantity: 1},
		{IngredientName: "1 onion", Quantity: 1},
	}, req.Ingredients)
}

func TestCreateRecipeFromStubCard(t *testing.T) {
	req := CreateRecipeFromCard(models.StubCard("https://x/unknown"))

	assert.Equal(t, "Recipe: https://x/unknown", req.Name)
	assert.Empty(t, req.Instructions)
	assert.Nil(t, req.CookingTime)
	assert.Nil(t, req.Difficulty)
	assert.Empty(t, req.Ingredients)
}

func intPtr(v int) *int { return &v }
