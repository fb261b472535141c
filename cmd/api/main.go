// Wellness Check-In API
//
// REST API for daily wellness check-ins, scores, streaks, and advice.
//
//	@title			Wellness Check-In API
//	@version		1.0
//	@description	Three-slot daily check-ins with wellness scoring, factor analysis, streaks, weekly trends, and a wellness coach.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			checkins
//	@tag.description	Daily check-in endpoints
//
//	@tag.name			stats
//	@tag.description	Streak and trend endpoints
//
//	@tag.name			advice
//	@tag.description	Wellness coach endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/wellnest/wellness-checkin/internal/api"
	"github.com/wellnest/wellness-checkin/internal/api/handler"
	"github.com/wellnest/wellness-checkin/internal/config"
	"github.com/wellnest/wellness-checkin/internal/domain"
	"github.com/wellnest/wellness-checkin/internal/llm"
	"github.com/wellnest/wellness-checkin/internal/repository"
	"github.com/wellnest/wellness-checkin/internal/seed"
	"github.com/wellnest/wellness-checkin/internal/service"
	"github.com/wellnest/wellness-checkin/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	ctx := context.Background()

	// Initialize tracing (no-op when no OTLP endpoint is configured)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "wellness-checkin-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Failed to shut down tracer: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}, &domain.HistoryEntry{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Connect to Redis (current-day check-in state)
	rdb, err := config.NewRedis(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	stateRepo := repository.NewCheckInStateRepository(rdb)

	// Initialize external text generators (unconfigured providers are skipped)
	openaiProvider := llm.NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIAdviceModel)
	if openaiProvider == nil {
		log.Println("Warning: OpenAI API key not configured")
	}
	cohereProvider := llm.NewCohereProvider(cfg.CohereAPIKey)
	if cohereProvider == nil {
		log.Println("Warning: Cohere API key not configured")
	}
	chain := llm.NewChain(openaiProvider, cohereProvider, llm.NewHuggingFaceProvider(cfg.HuggingFaceURL))

	// Initialize services
	userService := service.NewUserService(userRepo)
	checkInService := service.NewCheckInService(stateRepo, historyRepo, userRepo)
	statsService := service.NewStatsService(historyRepo, userRepo)
	adviceService := service.NewAdviceService(checkInService, chain)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	checkInHandler := handler.NewCheckInHandler(checkInService)
	statsHandler := handler.NewStatsHandler(statsService)
	adviceHandler := handler.NewAdviceHandler(adviceService)

	// Setup router
	router := api.NewRouter(userHandler, checkInHandler, statsHandler, adviceHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
