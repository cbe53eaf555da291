package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"kitchenswipe/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Recipe{}, &models.RecipeIngredient{}, &models.SwipeHistory{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestSwipeHistoryLatestBySession(t *testing.T) {
	repo := NewSwipeHistoryRepository(setupTestDB(t))
	ctx := context.Background()

	entries := []models.SwipeHistory{
		{SessionID: "s1", RecipeID: "https://a", Action: models.SwipeActionSkip},
		{SessionID: "s2", RecipeID: "https://other", Action: models.SwipeActionLike},
		{SessionID: "s1", RecipeID: "https://b", Action: models.SwipeActionLike},
	}
	for i := range entries {
		require.NoError(t, repo.Create(ctx, &entries[i]))
		assert.NotZero(t, entries[i].ID)
	}

	latest, err := repo.FindLatestBySession(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "https://b", latest.RecipeID)
	assert.Equal(t, models.SwipeActionLike, latest.Action)

	other, err := repo.FindLatestBySession(ctx, "s2")
	require.NoError(t, err)
	require.NotNil(t, other)
	assert.Equal(t, "https://other", other.RecipeID)
}

func TestSwipeHistoryNoRows(t *testing.T) {
	repo := NewSwipeHistoryRepository(setupTestDB(t))

	latest, err := repo.FindLatestBySession(context.Background(), "empty")
	assert.NoError(t, err)
	assert.Nil(t, latest)
}

func TestSwipeHistoryDeleteRemovesOnlyLatest(t *testing.T) {
	repo := NewSwipeHistoryRepository(setupTestDB(t))
	ctx := context.Background()

	first := &models.SwipeHistory{SessionID: "s1", RecipeID: "https://a", Action: models.SwipeActionSkip}
	second := &models.SwipeHistory{SessionID: "s1", RecipeID: "https://b", Action: models.SwipeActionSkip}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	require.NoError(t, repo.Delete(ctx, second.ID))

	latest, err := repo.FindLatestBySession(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, first.ID, latest.ID)

	assert.ErrorIs(t, repo.Delete(ctx, second.ID), gorm.ErrRecordNotFound)
}

func TestRecipeCreateWithIngredients(t *testing.T) {
	repo := NewRecipeRepository(setupTestDB(t))
	ctx := context.Background()

	cookingTime := 25
	url := "https://allrecipes.com/b"
	recipe, err := repo.Create(ctx, &models.CreateRecipeRequest{
		Name:         "Vegan Tacos",
		Instructions: "Warm tortillas.\nFill.",
		CookingTime:  &cookingTime,
		URL:          &url,
		Ingredients: []models.CreateIngredientRequest{
			{IngredientName: "tortillas", Quantity: 1},
			{IngredientName: "beans", Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.NotZero(t, recipe.ID)

	found, err := repo.FindByID(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "Vegan Tacos", found.Name)
	assert.Equal(t, 25, *found.CookingTime)
	assert.Nil(t, found.Difficulty)
	require.Len(t, found.Ingredients, 2)
	assert.Equal(t, "tortillas", found.Ingredients[0].IngredientName)
	assert.Equal(t, recipe.ID, found.Ingredients[0].RecipeID)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRecipeFindByIDMissing(t *testing.T) {
	repo := NewRecipeRepository(setupTestDB(t))

	_, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
