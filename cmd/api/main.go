package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/fridgechef/backend/config"
	"github.com/fridgechef/backend/internal/database"
	"github.com/fridgechef/backend/internal/logger"
	"github.com/fridgechef/backend/internal/middleware"
	"github.com/fridgechef/backend/internal/router"
	"github.com/fridgechef/backend/internal/server"
	"github.com/fridgechef/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	if cfg.LLM.APIKey == "" {
		logger.L().Warn("LLM_API_KEY not set, recipe generation will fail")
	}

	db, err := database.New(cfg)
	if err != nil {
		logger.L().Fatal("failed to connect to database", zap.Error(err))
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		redisClient, err := database.NewRedisClient(cfg)
		if err != nil {
			logger.L().Warn("redis unavailable, rate limiting disabled", zap.Error(err))
		} else {
			limiter = middleware.NewGenerationRateLimiter(redisClient, cfg.RateLimit.Requests, cfg.RateLimit.Window)
		}
	}

	authService := service.NewAuthService(db, cfg.JWT.Secret, cfg.JWT.TTL)
	llmService := service.NewLLMService(cfg.LLM)
	generateService := service.NewGenerateService(db, llmService)
	recipeService := service.NewRecipeService(db)

	engine := router.New(router.Deps{
		DB:              db,
		AuthService:     authService,
		GenerateService: generateService,
		RecipeService:   recipeService,
		RateLimiter:     limiter,
	})

	srv := server.New(cfg.Server, engine)

	errChan := make(chan error, 1)
	go func() {
		logger.L().Info("starting server", zap.String("addr", srv.Addr()))
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.L().Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.L().Info("received signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Fatal("server shutdown error", zap.Error(err))
	}
	logger.L().Info("server stopped")
}
