package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopassist/backend/internal/domain"
)

// Placeholder lines substituted when a match list is empty. The model is
// instructed to recommend only from the listed entries, so an explicit
// "nothing found" beats an empty section.
const (
	noShopsPlaceholder    = "No relevant shops found."
	noProductsPlaceholder = "No matching products found."
)

// promptTemplate is the fixed shape of the prompt sent to the model. The
// exact wording and layout are load-bearing: the numbered instructions drive
// the structure of the generated recommendation.
const promptTemplate = `
You are a smart shopping assistant.
User asked: "%s"

Nearby Relevant Shops:
%s

Matching Products:
%s

IMPORTANT:
- ONLY use the shops and products listed above.
- Do NOT invent new shop names or products.
- Recommend from the provided list only.

Now:
1. Recommend best matching shops.
2. Suggest top product(s).
3. Recommend a smart upsell combo if applicable.
Respond in a helpful, human tone.
`

// BuildPrompt renders the original query and the matched catalog entries
// into the single text block handed to the model
func BuildPrompt(query string, shops []domain.Shop, products []domain.Product) string {
	shopText := formatShops(shops)
	if shopText == "" {
		shopText = noShopsPlaceholder
	}

	productText := formatProducts(products)
	if productText == "" {
		productText = noProductsPlaceholder
	}

	return fmt.Sprintf(promptTemplate, query, shopText, productText)
}

// formatShops renders one line per shop: "- Name (Category) at Address, rated R/5"
func formatShops(shops []domain.Shop) string {
	lines := make([]string, 0, len(shops))
	for _, s := range shops {
		lines = append(lines, fmt.Sprintf("- %s (%s) at %s, rated %s/5",
			s.Name, s.Category, s.Address, formatNumber(s.Rating)))
	}
	return strings.Join(lines, "\n")
}

// formatProducts renders one block per product: a "- Name [Category] – ₹Price"
// line followed by indented Benefits and Upsell lines. Empty benefits/upsell
// lists render as an empty string after the label.
func formatProducts(products []domain.Product) string {
	blocks := make([]string, 0, len(products))
	for _, p := range products {
		blocks = append(blocks, fmt.Sprintf("- %s [%s] – ₹%s\n  Benefits: %s\n  Upsell: %s",
			p.Name, p.Category, formatNumber(p.Price),
			strings.Join(p.Benefits, ", "), strings.Join(p.Upsell, ", ")))
	}
	return strings.Join(blocks, "\n")
}

// formatNumber renders a rating or price with the fewest digits needed,
// so 4 stays "4" and 4.5 stays "4.5"
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
