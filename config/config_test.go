package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("SHOPASSIST_SERVER_PORT")
		os.Unsetenv("SHOPASSIST_SERVER_ENVIRONMENT")
		os.Unsetenv("SHOPASSIST_GEMINI_API_KEY")
		os.Unsetenv("SHOPASSIST_GEMINI_MODEL")
		os.Unsetenv("SHOPASSIST_GEMINI_TIMEOUT")
		os.Unsetenv("SHOPASSIST_CATALOG_SHOPS_PATH")
		os.Unsetenv("SHOPASSIST_CATALOG_PRODUCTS_PATH")
		os.Unsetenv("SHOPASSIST_DEBUG_LOGGING")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		// Set required API key
		os.Setenv("SHOPASSIST_GEMINI_API_KEY", "test-key")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Gemini.Model != "gemini-2.5-pro" {
			t.Errorf("Gemini.Model = %s, want gemini-2.5-pro", cfg.Gemini.Model)
		}
		if cfg.Gemini.Timeout != 30*time.Second {
			t.Errorf("Gemini.Timeout = %v, want 30s", cfg.Gemini.Timeout)
		}
		if cfg.Catalog.ShopsPath != "./data/shops.json" {
			t.Errorf("Catalog.ShopsPath = %s, want ./data/shops.json", cfg.Catalog.ShopsPath)
		}
		if cfg.Catalog.ProductsPath != "./data/products.json" {
			t.Errorf("Catalog.ProductsPath = %s, want ./data/products.json", cfg.Catalog.ProductsPath)
		}
		if cfg.Debug.Logging {
			t.Error("Debug.Logging = true, want false by default")
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("SHOPASSIST_GEMINI_API_KEY", "custom-key")
		os.Setenv("SHOPASSIST_SERVER_PORT", "9090")
		os.Setenv("SHOPASSIST_GEMINI_MODEL", "gemini-2.5-flash")
		os.Setenv("SHOPASSIST_GEMINI_TIMEOUT", "10s")
		os.Setenv("SHOPASSIST_DEBUG_LOGGING", "true")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Gemini.APIKey != "custom-key" {
			t.Errorf("Gemini.APIKey = %s, want custom-key", cfg.Gemini.APIKey)
		}
		if cfg.Gemini.Model != "gemini-2.5-flash" {
			t.Errorf("Gemini.Model = %s, want gemini-2.5-flash", cfg.Gemini.Model)
		}
		if cfg.Gemini.Timeout != 10*time.Second {
			t.Errorf("Gemini.Timeout = %v, want 10s", cfg.Gemini.Timeout)
		}
		if !cfg.Debug.Logging {
			t.Error("Debug.Logging = false, want true")
		}
	})

	t.Run("fails without Gemini API key", func(t *testing.T) {
		cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Fatal("Load() error = nil, want error for missing API key")
		}
	})
}
