package gemini

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopassist/backend/internal/domain"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const maxAttempts = 3

// Client handles communication with the Gemini API
type Client struct {
	genaiClient *genai.Client
	model       string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new Gemini client. The API key is required; its
// absence is a configuration error, not a per-request failure.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.5-pro"
	}

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	// Stay well under the free-tier request quota; burst absorbs short spikes
	limiter := rate.NewLimiter(rate.Limit(2), 4)

	return &Client{
		genaiClient: genaiClient,
		model:       model,
		rateLimiter: limiter,
	}, nil
}

// SetDebug enables or disables debug logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Generate sends the prompt to the model and returns the generated text.
// Transient failures are retried up to maxAttempts with exponential backoff.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.genaiClient.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
		if err != nil {
			if c.debug {
				log.Printf("[GEMINI] request error (attempt %d): %v", attempt, err)
			}
			lastErr = fmt.Errorf("%w: %v", domain.ErrGeminiAPIFailure, err)
			if ctx.Err() != nil {
				return "", lastErr
			}
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		text := resp.Text()
		if text == "" {
			lastErr = fmt.Errorf("%w: empty response text", domain.ErrGeminiAPIFailure)
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		if c.debug {
			log.Printf("[GEMINI] got %d chars from %s (attempt %d)", len(text), c.model, attempt)
		}
		return text, nil
	}

	return "", lastErr
}

// exponentialBackoff returns the wait before the next attempt: 500ms, 1s, 2s
func exponentialBackoff(attempt int) time.Duration {
	return 500 * time.Millisecond << (attempt - 1)
}
