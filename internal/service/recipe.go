package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fridgechef/backend/internal/models"
	"github.com/fridgechef/backend/internal/types"
)

var (
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrFridgeListNotFound = errors.New("fridge list not found")
)

// RecipeService serves a user's persisted fridge lists and recipes.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// ListFridgeLists returns the user's generation snapshots, newest first.
func (s *RecipeService) ListFridgeLists(userID uuid.UUID) ([]types.FridgeListSummary, error) {
	var lists []models.FridgeList
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&lists).Error; err != nil {
		return nil, err
	}

	out := make([]types.FridgeListSummary, len(lists))
	for i, l := range lists {
		out[i] = types.FridgeListSummary{
			ID:          l.ID.String(),
			Title:       l.Title,
			Items:       []string(l.Items),
			Preferences: types.FridgePreferences(l.Preferences),
			CreatedAt:   l.CreatedAt,
		}
	}
	return out, nil
}

// ListRecipes returns the recipes of one of the user's fridge lists, with
// filters and sorting applied and saved flags resolved.
func (s *RecipeService) ListRecipes(userID, fridgeListID uuid.UUID, filters types.RecipeFilters) ([]types.Recipe, error) {
	var list models.FridgeList
	err := s.db.Where("id = ? AND user_id = ?", fridgeListID, userID).First(&list).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFridgeListNotFound
	}
	if err != nil {
		return nil, err
	}

	var rows []models.Recipe
	if err := s.db.Where("fridge_list_id = ? AND user_id = ?", fridgeListID, userID).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	saved, err := s.savedSet(userID)
	if err != nil {
		return nil, err
	}

	recipes := make([]types.Recipe, len(rows))
	for i, r := range rows {
		recipes[i] = toAPIRecipe(r, saved)
	}
	return ViewRecipes(recipes, filters), nil
}

// SaveRecipe marks one of the user's recipes as saved. Saving an already
// saved recipe is a no-op.
func (s *RecipeService) SaveRecipe(userID, recipeID uuid.UUID) error {
	var recipe models.Recipe
	err := s.db.Where("id = ? AND user_id = ?", recipeID, userID).First(&recipe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecipeNotFound
	}
	if err != nil {
		return err
	}

	save := models.RecipeSave{UserID: userID, RecipeID: recipeID}
	return s.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).FirstOrCreate(&save).Error
}

// UnsaveRecipe removes a saved mark. Unsaving a recipe that was never saved
// is a no-op.
func (s *RecipeService) UnsaveRecipe(userID, recipeID uuid.UUID) error {
	return s.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(&models.RecipeSave{}).Error
}

// ListSaved returns the user's saved recipes, most recently saved first.
func (s *RecipeService) ListSaved(userID uuid.UUID) ([]types.Recipe, error) {
	var saves []models.RecipeSave
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&saves).Error; err != nil {
		return nil, err
	}
	if len(saves) == 0 {
		return []types.Recipe{}, nil
	}

	ids := make([]uuid.UUID, len(saves))
	for i, sv := range saves {
		ids[i] = sv.RecipeID
	}

	var rows []models.Recipe
	if err := s.db.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]models.Recipe, len(rows))
	for _, r := range rows {
		byID[r.ID] = r
	}

	out := make([]types.Recipe, 0, len(saves))
	for _, sv := range saves {
		r, ok := byID[sv.RecipeID]
		if !ok {
			continue
		}
		api := toAPIRecipe(r, nil)
		api.Saved = true
		out = append(out, api)
	}
	return out, nil
}

func (s *RecipeService) savedSet(userID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	var saves []models.RecipeSave
	if err := s.db.Where("user_id = ?", userID).Find(&saves).Error; err != nil {
		return nil, err
	}
	set := make(map[uuid.UUID]struct{}, len(saves))
	for _, sv := range saves {
		set[sv.RecipeID] = struct{}{}
	}
	return set, nil
}

func toAPIRecipe(r models.Recipe, saved map[uuid.UUID]struct{}) types.Recipe {
	api := types.Recipe{
		ID:                 r.ID.String(),
		Name:               r.Name,
		Description:        r.Description,
		Cuisine:            r.Cuisine,
		TimeMinutes:        r.TimeMinutes,
		Difficulty:         r.Difficulty,
		MatchScore:         r.MatchScore,
		HasIngredients:     []string(r.HasIngredients),
		MissingIngredients: []string(r.MissingIngredients),
		Substitutions:      []types.Substitution(r.Substitutions),
		Steps:              []string(r.Steps),
		Tips:               []string(r.Tips),
		Nutrition:          types.Nutrition(r.Nutrition),
	}
	if r.FridgeListID != nil {
		api.FridgeListID = r.FridgeListID.String()
	}
	if saved != nil {
		_, api.Saved = saved[r.ID]
	}
	return api
}
