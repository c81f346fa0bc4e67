package domain

// Shop represents a single shop record from the static catalog
type Shop struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Address  string  `json:"address"`
	Rating   float64 `json:"rating"` // 0-5 scale
}

// Product represents a single product record from the static catalog
type Product struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Price    float64  `json:"price"`
	Benefits []string `json:"benefits"`
	Upsell   []string `json:"upsell"` // names of related products to suggest together
}

// MatchResult holds the shops and products that matched a keyword set,
// in catalog order
type MatchResult struct {
	Shops    []Shop    `json:"matchedShops"`
	Products []Product `json:"matchedProducts"`
}

// Recommendation is the full response for one query: the matched catalog
// entries plus the generated recommendation text
type Recommendation struct {
	MatchedShops    []Shop    `json:"matchedShops"`
	MatchedProducts []Product `json:"matchedProducts"`
	Recommendation  string    `json:"recommendation"`
}
