package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fridgechef/backend/internal/types"
)

func sampleRecipes() []types.Recipe {
	return []types.Recipe{
		{ID: "1", Name: "Pasta", Cuisine: "Italian", TimeMinutes: 25, Difficulty: "easy", MatchScore: 90, MissingIngredients: nil},
		{ID: "2", Name: "Curry", Cuisine: "Indian", TimeMinutes: 45, Difficulty: "medium", MatchScore: 80, MissingIngredients: []string{"garam masala"}},
		{ID: "3", Name: "Stir Fry", Cuisine: "Chinese", TimeMinutes: 15, Difficulty: "easy", MatchScore: 95, MissingIngredients: []string{"soy sauce", "sesame oil"}},
		{ID: "4", Name: "Ratatouille", Cuisine: "French", TimeMinutes: 60, Difficulty: "hard", MatchScore: 70, MissingIngredients: nil},
	}
}

func ids(recipes []types.Recipe) []string {
	out := make([]string, len(recipes))
	for i, r := range recipes {
		out[i] = r.ID
	}
	return out
}

func TestViewRecipesNoFilters(t *testing.T) {
	got := ViewRecipes(sampleRecipes(), types.DefaultFilters())
	// default sort is match score descending
	assert.Equal(t, []string{"3", "1", "2", "4"}, ids(got))
}

func TestViewRecipesMaxTime(t *testing.T) {
	got := ViewRecipes(sampleRecipes(), types.RecipeFilters{MaxTime: 30, SortBy: types.SortByMatch})
	assert.Equal(t, []string{"3", "1"}, ids(got))
}

func TestViewRecipesDifficultyCaseInsensitive(t *testing.T) {
	got := ViewRecipes(sampleRecipes(), types.RecipeFilters{Difficulty: []string{"EASY"}})
	assert.Equal(t, []string{"3", "1"}, ids(got))
}

func TestViewRecipesCuisine(t *testing.T) {
	got := ViewRecipes(sampleRecipes(), types.RecipeFilters{Cuisine: []string{"italian", "french"}})
	assert.Equal(t, []string{"1", "4"}, ids(got))
}

func TestViewRecipesOnlyComplete(t *testing.T) {
	got := ViewRecipes(sampleRecipes(), types.RecipeFilters{OnlyComplete: true})
	assert.Equal(t, []string{"1", "4"}, ids(got))
}

func TestViewRecipesSortByTime(t *testing.T) {
	got := ViewRecipes(sampleRecipes(), types.RecipeFilters{SortBy: types.SortByTime})
	assert.Equal(t, []string{"3", "1", "2", "4"}, ids(got))
}

func TestViewRecipesSortByMissing(t *testing.T) {
	got := ViewRecipes(sampleRecipes(), types.RecipeFilters{SortBy: types.SortByMissing})
	// stable: ties keep input order
	assert.Equal(t, []string{"1", "4", "2", "3"}, ids(got))
}

func TestViewRecipesConjunctiveFilters(t *testing.T) {
	got := ViewRecipes(sampleRecipes(), types.RecipeFilters{
		MaxTime:    30,
		Difficulty: []string{"easy"},
		Cuisine:    []string{"chinese"},
	})
	assert.Equal(t, []string{"3"}, ids(got))
}

func TestViewRecipesDoesNotMutateInput(t *testing.T) {
	in := sampleRecipes()
	ViewRecipes(in, types.RecipeFilters{SortBy: types.SortByTime})
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(in))
}
