// Package router assembles the gin engine: middleware chain, public routes,
// and the authenticated API surface.
package router

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fridgechef/backend/internal/api"
	"github.com/fridgechef/backend/internal/database"
	"github.com/fridgechef/backend/internal/middleware"
	"github.com/fridgechef/backend/internal/service"
)

// Deps carries everything the router wires together. RateLimiter may be nil
// when Redis is unavailable; generation then runs unthrottled.
type Deps struct {
	DB              *gorm.DB
	AuthService     *service.AuthService
	GenerateService *service.GenerateService
	RecipeService   *service.RecipeService
	RateLimiter     *middleware.RateLimiter
}

// New builds the HTTP routing tree.
func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	r.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(c.Request.Context(), deps.DB); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := middleware.AuthMiddleware(deps.AuthService)

	generateHandler := api.NewGenerateHandler(deps.GenerateService)
	generate := []gin.HandlerFunc{auth}
	if deps.RateLimiter != nil {
		generate = append(generate, deps.RateLimiter.Middleware())
	}
	generate = append(generate, generateHandler.Generate)
	r.POST("/generate-recipes", generate...)

	v1 := r.Group("/api/v1")
	api.NewAuthHandler(deps.AuthService).RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(auth)
	api.NewRecipeHandler(deps.RecipeService).RegisterRoutes(protected)

	return r
}
