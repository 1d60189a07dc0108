package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-course-advisor-backend/config"
	_ "go-course-advisor-backend/docs" // Important for Swagger
	v1 "go-course-advisor-backend/internal/delivery/http/v1"
	"go-course-advisor-backend/internal/repository/jsoncatalog"
	"go-course-advisor-backend/internal/usecase"
	"go-course-advisor-backend/pkg/gemini"
	"go-course-advisor-backend/pkg/logger"
	"go-course-advisor-backend/pkg/redis"
)

// @title           Course Advisor Backend API
// @version         1.0
// @description     Course recommendation backend matching student profiles against a static catalog, with Gemini-generated advice.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting course advisor backend", "port", cfg.Port)

	// 3. Load Course Catalog
	catalogStore := jsoncatalog.NewStore(cfg.CatalogPath)
	if catalogStore.Count() == 0 {
		logger.Log.Warn("Catalog is empty - all searches will return no results", "path", cfg.CatalogPath)
	} else {
		logger.Log.Info("Course catalog loaded", "courses", catalogStore.Count())
	}

	// 4. Setup Redis (optional, backs rate limiting)
	if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable - rate limiting uses in-memory fallback", "error", err)
	}
	defer redis.Close()

	// 5. Setup Gemini Client
	generator, err := gemini.NewClient(context.Background(), cfg)
	if err != nil {
		logger.Log.Error("Failed to create Gemini client", "error", err)
		os.Exit(1)
	}
	if !generator.IsConfigured() {
		logger.Log.Warn("GEMINI_API_KEY not set - advisor responses will use fallback text")
	}

	// 6. Setup UseCases
	profileUC := usecase.NewProfileUsecase()
	recommendUC := usecase.NewRecommendationUsecase(catalogStore)
	advisorUC := usecase.NewAdvisorUsecase(catalogStore, recommendUC, profileUC, generator)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AdvisorUC:   advisorUC,
		RecommendUC: recommendUC,
		ProfileUC:   profileUC,
		CourseRepo:  catalogStore,
		Generator:   generator,
		Config:      cfg,
	})

	// 8. Start Server
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
