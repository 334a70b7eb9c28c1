package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/fridgechef/backend/internal/types"
)

// seedGeneration runs a generation for userID and returns the fridge list id
// plus the stored recipes.
func seedGeneration(t *testing.T, db *gorm.DB, userID uuid.UUID, recipes []types.Recipe) (uuid.UUID, []types.Recipe) {
	t.Helper()
	svc := NewGenerateService(db, &fakeLLM{recipes: recipes})
	resp, err := svc.Generate(context.Background(), userID, types.GenerateRecipesRequest{Items: []string{"eggs", "milk"}})
	require.NoError(t, err)
	require.NotNil(t, resp.FridgeListID)
	listID, err := uuid.Parse(*resp.FridgeListID)
	require.NoError(t, err)
	return listID, resp.Recipes
}

func TestListFridgeListsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeService(db)
	userID := uuid.New()

	first, _ := seedGeneration(t, db, userID, twoRecipes())
	second, _ := seedGeneration(t, db, userID, twoRecipes())
	seedGeneration(t, db, uuid.New(), twoRecipes()) // another user's list

	lists, err := svc.ListFridgeLists(userID)
	require.NoError(t, err)
	require.Len(t, lists, 2)
	got := []string{lists[0].ID, lists[1].ID}
	assert.Contains(t, got, first.String())
	assert.Contains(t, got, second.String())
	assert.Equal(t, []string{"eggs", "milk"}, lists[0].Items)
}

func TestListRecipesAppliesFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeService(db)
	userID := uuid.New()
	listID, _ := seedGeneration(t, db, userID, sampleRecipes())

	all, err := svc.ListRecipes(userID, listID, types.DefaultFilters())
	require.NoError(t, err)
	assert.Len(t, all, 4)
	// default sort: best match first
	assert.Equal(t, "Stir Fry", all[0].Name)

	quick, err := svc.ListRecipes(userID, listID, types.RecipeFilters{MaxTime: 30})
	require.NoError(t, err)
	require.Len(t, quick, 2)
	for _, r := range quick {
		assert.LessOrEqual(t, r.TimeMinutes, 30)
	}

	complete, err := svc.ListRecipes(userID, listID, types.RecipeFilters{OnlyComplete: true})
	require.NoError(t, err)
	for _, r := range complete {
		assert.Empty(t, r.MissingIngredients)
	}
}

func TestListRecipesWrongUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeService(db)
	listID, _ := seedGeneration(t, db, uuid.New(), twoRecipes())

	_, err := svc.ListRecipes(uuid.New(), listID, types.DefaultFilters())
	assert.ErrorIs(t, err, ErrFridgeListNotFound)
}

func TestSaveAndListSaved(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeService(db)
	userID := uuid.New()
	listID, recipes := seedGeneration(t, db, userID, twoRecipes())

	recipeID, err := uuid.Parse(recipes[0].ID)
	require.NoError(t, err)

	require.NoError(t, svc.SaveRecipe(userID, recipeID))
	// idempotent
	require.NoError(t, svc.SaveRecipe(userID, recipeID))

	saved, err := svc.ListSaved(userID)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, recipes[0].ID, saved[0].ID)
	assert.True(t, saved[0].Saved)

	listed, err := svc.ListRecipes(userID, listID, types.DefaultFilters())
	require.NoError(t, err)
	for _, r := range listed {
		assert.Equal(t, r.ID == recipes[0].ID, r.Saved)
	}
}

func TestUnsaveRecipe(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeService(db)
	userID := uuid.New()
	_, recipes := seedGeneration(t, db, userID, twoRecipes())

	recipeID, err := uuid.Parse(recipes[0].ID)
	require.NoError(t, err)

	require.NoError(t, svc.SaveRecipe(userID, recipeID))
	require.NoError(t, svc.UnsaveRecipe(userID, recipeID))
	// unsaving twice is fine
	require.NoError(t, svc.UnsaveRecipe(userID, recipeID))

	saved, err := svc.ListSaved(userID)
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestSaveRecipeNotOwned(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeService(db)
	_, recipes := seedGeneration(t, db, uuid.New(), twoRecipes())

	recipeID, err := uuid.Parse(recipes[0].ID)
	require.NoError(t, err)

	err = svc.SaveRecipe(uuid.New(), recipeID)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}
