package usecase

import (
	"log"
	"strings"

	"github.com/shopassist/backend/internal/domain"
)

// MatcherConfig holds configuration for the matcher
type MatcherConfig struct {
	EnableDebugLogging bool
}

// Matcher filters the catalog against extracted keywords.
// Matching is substring-based rather than whole-word: keyword "shoe" matches
// "Shoes" and "Shoemaker". Low precision, high recall - suited to a small
// curated catalog.
type Matcher struct {
	catalog            domain.CatalogStore
	enableDebugLogging bool
}

// NewMatcher creates a matcher over the given catalog
func NewMatcher(catalog domain.CatalogStore, config MatcherConfig) *Matcher {
	return &Matcher{
		catalog:            catalog,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Match returns the shops and products matching any of the keywords,
// preserving catalog order. An empty keyword set matches nothing.
func (m *Matcher) Match(keywords []string) domain.MatchResult {
	result := domain.MatchResult{
		Shops:    []domain.Shop{},
		Products: []domain.Product{},
	}

	if len(keywords) == 0 {
		return result
	}

	for _, shop := range m.catalog.Shops() {
		if shopMatches(shop, keywords) {
			result.Shops = append(result.Shops, shop)
		}
	}

	for _, product := range m.catalog.Products() {
		if productMatches(product, keywords) {
			result.Products = append(result.Products, product)
		}
	}

	if m.enableDebugLogging {
		log.Printf("[MATCH] keywords=%v shops=%d products=%d", keywords, len(result.Shops), len(result.Products))
	}

	return result
}

// shopMatches reports whether any keyword is a case-insensitive substring of
// the shop's name, address, or category
func shopMatches(shop domain.Shop, keywords []string) bool {
	name := strings.ToLower(shop.Name)
	address := strings.ToLower(shop.Address)
	category := strings.ToLower(shop.Category)

	for _, kw := range keywords {
		if strings.Contains(name, kw) || strings.Contains(address, kw) || strings.Contains(category, kw) {
			return true
		}
	}
	return false
}

// productMatches reports whether any keyword is a case-insensitive substring
// of the product's name, category, or any benefits entry
func productMatches(product domain.Product, keywords []string) bool {
	name := strings.ToLower(product.Name)
	category := strings.ToLower(product.Category)

	for _, kw := range keywords {
		if strings.Contains(name, kw) || strings.Contains(category, kw) {
			return true
		}
		for _, benefit := range product.Benefits {
			if strings.Contains(strings.ToLower(benefit), kw) {
				return true
			}
		}
	}
	return false
}
