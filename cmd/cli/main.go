package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopassist/backend/config"
	"github.com/shopassist/backend/internal/infrastructure/catalog"
	"github.com/shopassist/backend/internal/infrastructure/gemini"
	"github.com/shopassist/backend/internal/usecase"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store, err := catalog.Load(cfg.Catalog.ShopsPath, cfg.Catalog.ProductsPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	geminiClient, err := gemini.NewClient(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}

	matcher := usecase.NewMatcher(store, usecase.MatcherConfig{})
	recommendations := usecase.NewRecommendationService(matcher, geminiClient, usecase.RecommendationServiceConfig{
		LLMTimeout: cfg.Gemini.Timeout,
	})

	fmt.Println("Welcome to the Intelligent Shop & Product Recommender!")
	fmt.Print("Type your shopping query:\n> ")

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return
	}
	query := strings.TrimSpace(scanner.Text())
	if query == "" {
		fmt.Println("Query must not be empty.")
		os.Exit(1)
	}

	result, err := recommendations.Recommend(context.Background(), query)
	if err != nil {
		log.Fatalf("Recommendation failed: %v", err)
	}

	fmt.Printf("\nMatched Shops (%d):\n", len(result.MatchedShops))
	for _, s := range result.MatchedShops {
		fmt.Printf("- %s (%s)\n", s.Name, s.Category)
	}

	fmt.Printf("\nMatched Products (%d):\n", len(result.MatchedProducts))
	for _, p := range result.MatchedProducts {
		fmt.Printf("- %s (%s) ₹%s\n", p.Name, p.Category, strconv.FormatFloat(p.Price, 'f', -1, 64))
	}

	fmt.Printf("\nRecommendation:\n\n%s\n", result.Recommendation)
}
