package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/shopassist/backend/internal/domain"
)

// FallbackResponse is returned as the recommendation text when the model
// call fails. The request itself still succeeds: a degraded answer beats a
// hard failure for this endpoint.
const FallbackResponse = "Failed to fetch response from Gemini."

// RecommendationServiceConfig holds configuration for the recommendation service
type RecommendationServiceConfig struct {
	LLMTimeout         time.Duration
	EnableDebugLogging bool
}

// RecommendationService composes keyword extraction, catalog matching,
// prompt assembly, and the model call into a single operation
type RecommendationService struct {
	matcher            *Matcher
	llm                domain.LLMClient
	llmTimeout         time.Duration
	enableDebugLogging bool
}

// NewRecommendationService creates a recommendation service with dependencies
func NewRecommendationService(
	matcher *Matcher,
	llm domain.LLMClient,
	config RecommendationServiceConfig,
) *RecommendationService {
	llmTimeout := config.LLMTimeout
	if llmTimeout <= 0 {
		llmTimeout = 30 * time.Second
	}

	return &RecommendationService{
		matcher:            matcher,
		llm:                llm,
		llmTimeout:         llmTimeout,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Recommend processes one shopping query.
// Flow: validate -> extract keywords -> match catalog -> build prompt ->
// generate recommendation. A provider failure degrades to FallbackResponse
// rather than failing the request.
func (s *RecommendationService) Recommend(ctx context.Context, query string) (*domain.Recommendation, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrInvalidQuery
	}

	keywords := ExtractKeywords(query)
	if s.enableDebugLogging {
		log.Printf("[EXTRACT] query=%q keywords=%v", query, keywords)
	}

	matches := s.matcher.Match(keywords)

	prompt := BuildPrompt(query, matches.Shops, matches.Products)

	llmCtx, cancel := context.WithTimeout(ctx, s.llmTimeout)
	defer cancel()

	recommendation, err := s.llm.Generate(llmCtx, prompt)
	if err != nil {
		log.Printf("[RECOMMEND] model call failed, using fallback: %v", err)
		recommendation = FallbackResponse
	}

	return &domain.Recommendation{
		MatchedShops:    matches.Shops,
		MatchedProducts: matches.Products,
		Recommendation:  recommendation,
	}, nil
}
