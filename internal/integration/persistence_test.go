package integration

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fridgechef/backend/internal/models"
	"github.com/fridgechef/backend/internal/service"
	"github.com/fridgechef/backend/internal/testhelpers"
	"github.com/fridgechef/backend/internal/types"
)

type cannedLLM struct {
	recipes []types.Recipe
}

func (c *cannedLLM) GenerateRecipes(context.Context, []string, types.FridgePreferences) ([]types.Recipe, error) {
	return c.recipes, nil
}

// Exercises the full persistence path against real PostgreSQL, including the
// JSONB round trips that sqlite can only approximate.
func TestGenerationPersistenceRoundTrip(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	userID := uuid.New()

	llm := &cannedLLM{recipes: []types.Recipe{
		{
			Name:               "Shakshuka",
			Description:        "Eggs poached in spiced tomato sauce",
			Cuisine:            "Mediterranean",
			TimeMinutes:        35,
			Difficulty:         "medium",
			MatchScore:         88,
			HasIngredients:     []string{"eggs", "canned tomatoes", "onions"},
			MissingIngredients: []string{"paprika"},
			Substitutions:      []types.Substitution{{Missing: "paprika", Options: []string{"chili powder", "cayenne"}}},
			Steps:              []string{"Soften onions", "Add tomatoes", "Poach eggs"},
			Tips:               []string{"Serve with crusty bread"},
			Nutrition:          types.Nutrition{Calories: 320, ProteinG: 16, CarbsG: 18, FatG: 20},
		},
	}}

	svc := service.NewGenerateService(db, llm)
	resp, err := svc.Generate(context.Background(), userID, types.GenerateRecipesRequest{
		Items: []string{"eggs", "canned tomatoes", "onions"},
		Preferences: types.FridgePreferences{
			Dietary:    []string{"vegetarian"},
			SkillLevel: "intermediate",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, resp.FridgeListID)

	var list models.FridgeList
	require.NoError(t, db.First(&list, "id = ?", *resp.FridgeListID).Error)
	assert.Equal(t, models.JSONBStringArray{"eggs", "canned tomatoes", "onions"}, list.Items)
	assert.Equal(t, []string{"vegetarian"}, list.Preferences.Dietary)

	var row models.Recipe
	require.NoError(t, db.First(&row, "id = ?", resp.Recipes[0].ID).Error)
	assert.Equal(t, "Shakshuka", row.Name)
	assert.Equal(t, models.JSONBStringArray{"paprika"}, row.MissingIngredients)
	require.Len(t, row.Substitutions, 1)
	assert.Equal(t, []string{"chili powder", "cayenne"}, row.Substitutions[0].Options)
	assert.Equal(t, 320, row.Nutrition.Calories)

	recipeSvc := service.NewRecipeService(db)
	recipeID, err := uuid.Parse(resp.Recipes[0].ID)
	require.NoError(t, err)
	require.NoError(t, recipeSvc.SaveRecipe(userID, recipeID))

	saved, err := recipeSvc.ListSaved(userID)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "Shakshuka", saved[0].Name)
}
