package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fridgechef/backend/internal/logger"
	"github.com/fridgechef/backend/internal/service"
	"github.com/fridgechef/backend/internal/types"
)

// GenerateHandler handles recipe generation requests.
type GenerateHandler struct {
	generateService *service.GenerateService
}

func NewGenerateHandler(generateService *service.GenerateService) *GenerateHandler {
	return &GenerateHandler{generateService: generateService}
}

func (h *GenerateHandler) Generate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.GenerateRecipesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Items array is required"})
		return
	}

	resp, err := h.generateService.Generate(c.Request.Context(), userID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// writeError maps generation failures onto the API error surface. Upstream
// rate-limit and quota statuses pass through with friendly messages; every
// other failure is a 500.
func (h *GenerateHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limited. Please try again in a moment."})
	case errors.Is(err, service.ErrQuotaExceeded):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "Usage limit reached. Please try again later."})
	case errors.Is(err, service.ErrParseRecipes):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate recipes"})
	case errors.Is(err, service.ErrNotConfigured):
		logger.L().Error("generation requested without a configured gateway key")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate recipes"})
	default:
		logger.L().Error("recipe generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate recipes"})
	}
}
