package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopassist/backend/config"
	httpDelivery "github.com/shopassist/backend/internal/delivery/http"
	"github.com/shopassist/backend/internal/infrastructure/catalog"
	"github.com/shopassist/backend/internal/infrastructure/gemini"
	"github.com/shopassist/backend/internal/usecase"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting ShopAssist Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Load the catalog before accepting any request; it is immutable
	// process-wide state for the lifetime of the process
	store, err := catalog.Load(cfg.Catalog.ShopsPath, cfg.Catalog.ProductsPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("Catalog loaded: %d shops, %d products", len(store.Shops()), len(store.Products()))

	geminiClient, err := gemini.NewClient(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}
	log.Printf("Gemini model: %s (timeout %s)", cfg.Gemini.Model, cfg.Gemini.Timeout)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" && cfg.Debug.Logging {
		geminiClient.SetDebug(true)
		log.Printf("Gemini client debug mode enabled")
	}

	// Initialize usecase layer
	matcher := usecase.NewMatcher(store, usecase.MatcherConfig{
		EnableDebugLogging: cfg.Debug.Logging,
	})

	recommendations := usecase.NewRecommendationService(
		matcher,
		geminiClient,
		usecase.RecommendationServiceConfig{
			LLMTimeout:         cfg.Gemini.Timeout,
			EnableDebugLogging: cfg.Debug.Logging,
		},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(recommendations)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
