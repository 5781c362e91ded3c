package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/scheffer1/CVFast-sub000/config"
	_ "github.com/scheffer1/CVFast-sub000/docs" // Important for Swagger
	v1 "github.com/scheffer1/CVFast-sub000/internal/delivery/http/v1"
	"github.com/scheffer1/CVFast-sub000/internal/events"
	"github.com/scheffer1/CVFast-sub000/internal/migrations"
	"github.com/scheffer1/CVFast-sub000/internal/repository/postgres"
	"github.com/scheffer1/CVFast-sub000/internal/usecase"
	"github.com/scheffer1/CVFast-sub000/pkg/auth"
	"github.com/scheffer1/CVFast-sub000/pkg/clock"
	"github.com/scheffer1/CVFast-sub000/pkg/database"
	"github.com/scheffer1/CVFast-sub000/pkg/hashgen"
	"github.com/scheffer1/CVFast-sub000/pkg/logger"
	"github.com/scheffer1/CVFast-sub000/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           CVFast API
// @version         1.0
// @description     Résumé management and short-link sharing service.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting cvfast api", "port", cfg.Port)

	// 3. Setup Database
	ctx := context.Background()
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := migrations.Run(cfg.DBUrl); err != nil {
		logger.Log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// 4. Setup Redis (rate limiting degrades to in-memory when absent)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	} else {
		defer redis.Close()
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	curriculumRepo := postgres.NewCurriculumRepository(dbPool)
	sectionRepo := postgres.NewSectionRepository(dbPool)
	shortLinkRepo := postgres.NewShortLinkRepository(dbPool)
	accessLogRepo := postgres.NewAccessLogRepository(dbPool)

	// 6. Setup shared services
	validate := validator.New()
	clk := clock.System()
	generator := hashgen.New()
	tokens := auth.NewManager(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.TokenTTLMin)*time.Minute)

	// Section writes bump the parent's updated_at through the event bus.
	bus := events.NewBus()
	bus.SubscribeTouched(func(ctx context.Context, evt events.CurriculumTouched) {
		if err := curriculumRepo.Touch(ctx, evt.CurriculumID, evt.At); err != nil {
			logger.Log.Error("Failed to touch curriculum", "curriculum_id", evt.CurriculumID, "error", err)
		}
	})

	// 7. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo, tokens, validate, clk)
	curriculumUC := usecase.NewCurriculumUsecase(curriculumRepo, generator, validate, clk, cfg.HashMaxRetries)
	sectionUC := usecase.NewSectionUsecase(sectionRepo, curriculumRepo, bus, validate, clk)
	shortLinkUC := usecase.NewShortLinkUsecase(shortLinkRepo, accessLogRepo, curriculumRepo, generator, validate, clk, cfg.HashMaxRetries)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:       authUC,
		CurriculumUC: curriculumUC,
		SectionUC:    sectionUC,
		ShortLinkUC:  shortLinkUC,
		Tokens:       tokens,
		Config:       cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
