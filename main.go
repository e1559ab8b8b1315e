package main

import (
	"log"

	api "wellness-backend/cmd/api"
	authRepo "wellness-backend/internal/auth/repository"
	authUsecase "wellness-backend/internal/auth/usecase"
	wellnessDomain "wellness-backend/internal/wellness/domain"
	wellnessUsecase "wellness-backend/internal/wellness/usecase"
	"wellness-backend/pkg/config"
	"wellness-backend/pkg/existapi"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.ExistClientID == "" && cfg.ExistAPIKey == "" {
		log.Printf("[WARN] no Exist.io client ID or API key configured; data endpoints will return errors until one is set")
	}

	// Single-slot session token store, shared by the OAuth flow and the
	// credential resolver
	tokenRepo := authRepo.NewTokenRepository()

	// Upstream client
	existClient := existapi.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(tokenRepo, cfg)
	wellnessUsecaseInstance := wellnessUsecase.NewWellnessUsecase(authUsecaseInstance, existClient, wellnessDomain.DefaultMetricMappings())

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, wellnessUsecaseInstance, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("API endpoint: http://localhost:%s/api/wellness-data", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
