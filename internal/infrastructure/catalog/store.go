package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopassist/backend/internal/domain"
)

// Store holds the immutable in-memory catalog of shops and products.
// It is loaded once at startup and never mutated, so concurrent readers
// need no locking.
type Store struct {
	shops    []domain.Shop
	products []domain.Product
}

// Load reads and validates the shop and product datasets from the given
// JSON files. Malformed or invalid records abort the load: the process
// must not serve traffic over a broken catalog.
func Load(shopsPath, productsPath string) (*Store, error) {
	shops, err := loadShops(shopsPath)
	if err != nil {
		return nil, err
	}

	products, err := loadProducts(productsPath)
	if err != nil {
		return nil, err
	}

	return &Store{shops: shops, products: products}, nil
}

// Shops returns the full shop catalog in load order
func (s *Store) Shops() []domain.Shop {
	return s.shops
}

// Products returns the full product catalog in load order
func (s *Store) Products() []domain.Product {
	return s.products
}

func loadShops(path string) ([]domain.Shop, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shops file: %w", err)
	}

	var shops []domain.Shop
	if err := json.Unmarshal(data, &shops); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", domain.ErrInvalidCatalog, path, err)
	}

	for i, shop := range shops {
		if shop.Name == "" {
			return nil, fmt.Errorf("%w: shop at index %d has empty name", domain.ErrInvalidCatalog, i)
		}
		if shop.Rating < 0 || shop.Rating > 5 {
			return nil, fmt.Errorf("%w: shop %q has rating %v, want 0-5", domain.ErrInvalidCatalog, shop.Name, shop.Rating)
		}
	}

	return shops, nil
}

func loadProducts(path string) ([]domain.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read products file: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", domain.ErrInvalidCatalog, path, err)
	}

	for i, product := range products {
		if product.Name == "" {
			return nil, fmt.Errorf("%w: product at index %d has empty name", domain.ErrInvalidCatalog, i)
		}
		if product.Price < 0 {
			return nil, fmt.Errorf("%w: product %q has negative price %v", domain.ErrInvalidCatalog, product.Name, product.Price)
		}
	}

	return products, nil
}
