package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopassist/backend/internal/domain"
)

// stubLLM records calls and returns a canned response or error
type stubLLM struct {
	response   string
	err        error
	calls      int
	lastPrompt string
}

func (s *stubLLM) Generate(ctx context.Context, prompt string) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func newTestService(llm *stubLLM) *RecommendationService {
	matcher := NewMatcher(newTestCatalog(), MatcherConfig{})
	return NewRecommendationService(matcher, llm, RecommendationServiceConfig{
		LLMTimeout: 5 * time.Second,
	})
}

func TestRecommend(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects blank query before any processing", func(t *testing.T) {
		llm := &stubLLM{response: "unused"}
		svc := newTestService(llm)

		for _, query := range []string{"", "   ", "\t\n"} {
			_, err := svc.Recommend(ctx, query)
			if !errors.Is(err, domain.ErrInvalidQuery) {
				t.Errorf("Recommend(%q) error = %v, want ErrInvalidQuery", query, err)
			}
		}
		if llm.calls != 0 {
			t.Errorf("LLM called %d times for invalid queries, want 0", llm.calls)
		}
	})

	t.Run("end to end shoe query", func(t *testing.T) {
		llm := &stubLLM{response: "Try the Running Shoes from SoleMate."}
		svc := newTestService(llm)

		result, err := svc.Recommend(ctx, "find good shoe shop near me")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// "shoe" is the only surviving keyword; it matches two shops
		// (name + address) and one product
		if len(result.MatchedShops) != 2 {
			t.Errorf("len(MatchedShops) = %d, want 2", len(result.MatchedShops))
		}
		if len(result.MatchedProducts) != 1 || result.MatchedProducts[0].Name != "Running Shoes" {
			t.Errorf("MatchedProducts = %v, want Running Shoes only", result.MatchedProducts)
		}
		if result.Recommendation != "Try the Running Shoes from SoleMate." {
			t.Errorf("Recommendation = %q, want stub response", result.Recommendation)
		}

		if !strings.Contains(llm.lastPrompt, `User asked: "find good shoe shop near me"`) {
			t.Errorf("prompt sent to LLM missing quoted query:\n%s", llm.lastPrompt)
		}
		if !strings.Contains(llm.lastPrompt, "Running Shoes") {
			t.Errorf("prompt sent to LLM missing matched product:\n%s", llm.lastPrompt)
		}
	})

	t.Run("provider failure degrades to fallback text", func(t *testing.T) {
		llm := &stubLLM{err: domain.ErrGeminiAPIFailure}
		svc := newTestService(llm)

		result, err := svc.Recommend(ctx, "wireless earbuds")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Recommendation != FallbackResponse {
			t.Errorf("Recommendation = %q, want fallback %q", result.Recommendation, FallbackResponse)
		}
		// matches still returned alongside the fallback
		if len(result.MatchedProducts) != 1 {
			t.Errorf("MatchedProducts = %v, want the earbuds", result.MatchedProducts)
		}
	})

	t.Run("query with no matches still calls LLM with placeholders", func(t *testing.T) {
		llm := &stubLLM{response: "Nothing in the catalog fits."}
		svc := newTestService(llm)

		result, err := svc.Recommend(ctx, "quantum telescope")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.MatchedShops) != 0 || len(result.MatchedProducts) != 0 {
			t.Errorf("result = %+v, want empty match lists", result)
		}
		if !strings.Contains(llm.lastPrompt, "No relevant shops found.") ||
			!strings.Contains(llm.lastPrompt, "No matching products found.") {
			t.Errorf("prompt missing placeholders:\n%s", llm.lastPrompt)
		}
	})
}

func TestNewRecommendationService(t *testing.T) {
	t.Run("uses default timeout when zero", func(t *testing.T) {
		svc := NewRecommendationService(NewMatcher(newTestCatalog(), MatcherConfig{}), &stubLLM{}, RecommendationServiceConfig{})
		if svc.llmTimeout != 30*time.Second {
			t.Errorf("llmTimeout = %v, want 30s (default)", svc.llmTimeout)
		}
	})

	t.Run("applies timeout to the LLM context", func(t *testing.T) {
		llm := &deadlineCapturingLLM{}
		matcher := NewMatcher(newTestCatalog(), MatcherConfig{})
		svc := NewRecommendationService(matcher, llm, RecommendationServiceConfig{LLMTimeout: time.Second})

		if _, err := svc.Recommend(context.Background(), "shoes"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !llm.hadDeadline {
			t.Error("LLM context had no deadline, want one from LLMTimeout")
		}
	})
}

type deadlineCapturingLLM struct {
	hadDeadline bool
}

func (l *deadlineCapturingLLM) Generate(ctx context.Context, prompt string) (string, error) {
	_, l.hadDeadline = ctx.Deadline()
	return "ok", nil
}
