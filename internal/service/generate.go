package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fridgechef/backend/internal/ingredient"
	"github.com/fridgechef/backend/internal/logger"
	"github.com/fridgechef/backend/internal/models"
	"github.com/fridgechef/backend/internal/types"

	"github.com/google/uuid"
)

// LLMClient is the slice of the AI gateway the generation flow needs.
type LLMClient interface {
	GenerateRecipes(ctx context.Context, items []string, prefs types.FridgePreferences) ([]types.Recipe, error)
}

// GenerateService runs the full generation flow: merge pantry staples, call
// the model, persist the snapshot and the recipe rows, and shape the response.
type GenerateService struct {
	db  *gorm.DB
	llm LLMClient
}

func NewGenerateService(db *gorm.DB, llm LLMClient) *GenerateService {
	return &GenerateService{db: db, llm: llm}
}

// Generate produces recipes for the request. Persistence failures do not fail
// the request: a lost snapshot yields a nil FridgeListID, and lost recipe rows
// are returned with temp-<index> placeholder ids.
func (s *GenerateService) Generate(ctx context.Context, userID uuid.UUID, req types.GenerateRecipesRequest) (*types.GenerateRecipesResponse, error) {
	items := req.Items
	if req.Preferences.IncludePantryStaples {
		staples := req.Preferences.PantryStaples
		if len(staples) == 0 {
			staples = types.DefaultPantryStaples
		}
		items = ingredient.Merge(items, staples)
	} else {
		items = ingredient.Merge(items, nil)
	}

	listID := s.saveFridgeList(userID, items, req.Preferences)

	recipes, err := s.llm.GenerateRecipes(ctx, items, req.Preferences)
	if err != nil {
		return nil, err
	}
	recipes = s.saveRecipes(userID, listID, recipes)

	resp := &types.GenerateRecipesResponse{Recipes: recipes}
	if listID != nil {
		id := listID.String()
		resp.FridgeListID = &id
	}
	return resp, nil
}

func (s *GenerateService) saveFridgeList(userID uuid.UUID, items []string, prefs types.FridgePreferences) *uuid.UUID {
	list := models.FridgeList{
		UserID:      userID,
		Title:       "Fridge " + time.Now().Format("1/2/2006"),
		Items:       models.JSONBStringArray(items),
		Preferences: models.JSONBPreferences(prefs),
	}
	if err := s.db.Create(&list).Error; err != nil {
		logger.L().Warn("failed to save fridge list", zap.Error(err))
		return nil
	}
	return &list.ID
}

func (s *GenerateService) saveRecipes(userID uuid.UUID, listID *uuid.UUID, recipes []types.Recipe) []types.Recipe {
	if len(recipes) == 0 {
		return recipes
	}
	rows := make([]models.Recipe, len(recipes))
	for i, r := range recipes {
		rows[i] = models.Recipe{
			UserID:             userID,
			FridgeListID:       listID,
			Name:               r.Name,
			Description:        r.Description,
			Cuisine:            r.Cuisine,
			TimeMinutes:        r.TimeMinutes,
			Difficulty:         r.Difficulty,
			MatchScore:         r.MatchScore,
			HasIngredients:     models.JSONBStringArray(r.HasIngredients),
			MissingIngredients: models.JSONBStringArray(r.MissingIngredients),
			Substitutions:      models.JSONBSubstitutions(r.Substitutions),
			Steps:              models.JSONBStringArray(r.Steps),
			Tips:               models.JSONBStringArray(r.Tips),
			Nutrition:          models.JSONBNutrition(r.Nutrition),
		}
	}

	if err := s.db.Create(&rows).Error; err != nil {
		logger.L().Warn("failed to save recipes, returning transient ids", zap.Error(err))
		for i := range recipes {
			recipes[i].ID = fmt.Sprintf("temp-%d", i)
		}
		return recipes
	}

	for i := range recipes {
		recipes[i].ID = rows[i].ID.String()
		if listID != nil {
			recipes[i].FridgeListID = listID.String()
		}
	}
	return recipes
}
