package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fridgechef/backend/internal/types"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}, &FridgeList{}, &Recipe{}, &RecipeSave{}))
	return db
}

func TestRecipeJSONBRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	recipe := Recipe{
		UserID:             uuid.New(),
		Name:               "Fried Rice",
		TimeMinutes:        20,
		Difficulty:         "easy",
		MatchScore:         85,
		HasIngredients:     JSONBStringArray{"rice", "eggs"},
		MissingIngredients: JSONBStringArray{"soy sauce"},
		Substitutions:      JSONBSubstitutions{{Missing: "soy sauce", Options: []string{"tamari"}}},
		Steps:              JSONBStringArray{"Cook rice", "Fry everything"},
		Nutrition:          JSONBNutrition{Calories: 450, ProteinG: 12, CarbsG: 60, FatG: 14},
	}
	require.NoError(t, db.Create(&recipe).Error)
	assert.NotEqual(t, uuid.Nil, recipe.ID)

	var got Recipe
	require.NoError(t, db.First(&got, "id = ?", recipe.ID).Error)
	assert.Equal(t, JSONBStringArray{"rice", "eggs"}, got.HasIngredients)
	assert.Equal(t, "soy sauce", got.Substitutions[0].Missing)
	assert.Equal(t, 450, got.Nutrition.Calories)
	assert.Nil(t, got.FridgeListID)
}

func TestFridgeListPreferencesRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	list := FridgeList{
		UserID: uuid.New(),
		Title:  "Fridge 9/1/2026",
		Items:  JSONBStringArray{"eggs", "milk"},
		Preferences: JSONBPreferences(types.FridgePreferences{
			Dietary:              []string{"vegan"},
			IncludePantryStaples: true,
			PantryStaples:        []string{"salt"},
		}),
	}
	require.NoError(t, db.Create(&list).Error)

	var got FridgeList
	require.NoError(t, db.First(&got, "id = ?", list.ID).Error)
	assert.Equal(t, []string{"vegan"}, got.Preferences.Dietary)
	assert.True(t, got.Preferences.IncludePantryStaples)
}

func TestRecipeSaveUniquePerUserRecipe(t *testing.T) {
	db := setupTestDB(t)

	userID, recipeID := uuid.New(), uuid.New()
	require.NoError(t, db.Create(&RecipeSave{UserID: userID, RecipeID: recipeID}).Error)

	err := db.Create(&RecipeSave{UserID: userID, RecipeID: recipeID}).Error
	assert.Error(t, err)

	// same recipe, different user is fine
	require.NoError(t, db.Create(&RecipeSave{UserID: uuid.New(), RecipeID: recipeID}).Error)
}
