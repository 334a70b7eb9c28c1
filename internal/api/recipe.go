package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fridgechef/backend/internal/service"
	"github.com/fridgechef/backend/internal/types"
)

// RecipeHandler serves fridge lists, recipe browsing, and saves.
type RecipeHandler struct {
	recipeService *service.RecipeService
}

func NewRecipeHandler(recipeService *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// RegisterRoutes registers the recipe routes on an authenticated group.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/fridge-lists", h.ListFridgeLists)
	router.GET("/fridge-lists/:id/recipes", h.ListRecipes)
	router.POST("/recipes/:id/save", h.SaveRecipe)
	router.DELETE("/recipes/:id/save", h.UnsaveRecipe)
	router.GET("/recipes/saved", h.ListSaved)
}

func (h *RecipeHandler) ListFridgeLists(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	lists, err := h.recipeService.ListFridgeLists(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list fridge lists"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"fridge_lists": lists})
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fridge list id"})
		return
	}

	filters := types.DefaultFilters()
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter parameters"})
		return
	}
	if filters.SortBy == "" {
		filters.SortBy = types.SortByMatch
	}

	recipes, err := h.recipeService.ListRecipes(userID, listID, filters)
	if err != nil {
		if errors.Is(err, service.ErrFridgeListNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fridge list not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list recipes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) SaveRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe id"})
		return
	}

	if err := h.recipeService.SaveRecipe(userID, recipeID); err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save recipe"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}

func (h *RecipeHandler) UnsaveRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe id"})
		return
	}

	if err := h.recipeService.UnsaveRecipe(userID, recipeID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unsave recipe"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": false})
}

func (h *RecipeHandler) ListSaved(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	recipes, err := h.recipeService.ListSaved(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list saved recipes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}
