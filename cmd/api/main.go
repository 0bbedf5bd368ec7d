package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/recipebox/backend/config"
	"github.com/recipebox/backend/internal/api"
	"github.com/recipebox/backend/internal/database"
	"github.com/recipebox/backend/internal/middleware"
	"github.com/recipebox/backend/internal/router"
	"github.com/recipebox/backend/internal/server"
	"github.com/recipebox/backend/internal/service"
)

func main() {
	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
	if config.IsProduction() {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	db, err := database.New(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("failed to migrate database")
	}

	// Rate limiting is optional: without redis the API runs unthrottled.
	var uploadLimiter *middleware.RateLimiter
	if cfg.RedisAddr != "" {
		redisClient, err := database.NewRedisClient(cfg)
		if err != nil {
			log.WithError(err).Warn("redis unavailable, rate limiting disabled")
		} else {
			uploadLimiter = middleware.NewUploadRateLimiter(redisClient)
		}
	}

	var storage service.ImageStorage
	s3Config, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		log.WithError(err).Warn("S3 unavailable, image uploads disabled")
	} else {
		storage = service.NewS3ImageStorage(s3Config)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)

	authHandler := api.NewAuthHandler(authService)
	recipeHandler := api.NewRecipeHandler(service.NewRecipeService(db), storage, uploadLimiter)
	tagHandler := api.NewTagHandler(service.NewTagService(db))
	ingredientHandler := api.NewIngredientHandler(service.NewIngredientService(db))

	engine := router.Setup(log, authHandler, recipeHandler, tagHandler, ingredientHandler, authService)
	srv := server.New(cfg, engine, log)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.WithError(err).Fatal("server error")
		}
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("server shutdown error")
	}
	log.Info("server stopped")
}
