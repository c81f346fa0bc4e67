package domain

import "errors"

var (
	// ErrInvalidQuery is returned when the query is missing or blank after trimming
	ErrInvalidQuery = errors.New("invalid or missing query")

	// ErrGeminiAPIFailure is returned when the Gemini API request fails
	ErrGeminiAPIFailure = errors.New("Gemini API request failed")

	// ErrInvalidCatalog is returned when catalog data fails validation at load time
	ErrInvalidCatalog = errors.New("invalid catalog data")
)
