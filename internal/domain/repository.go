package domain

import "context"

// CatalogStore defines read-only access to the shop and product catalog.
// The catalog is loaded once at startup and never mutated, so concurrent
// reads need no coordination.
type CatalogStore interface {
	Shops() []Shop
	Products() []Product
}

// LLMClient defines the interface for the external text-generation model.
// The wire contract with the provider is opaque: prompt text in, generated
// text out.
type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
