package domain

import "errors"

var (
	// ErrMissingAPIKey is returned at startup when no LLM API key is configured
	ErrMissingAPIKey = errors.New("llm api key not configured")

	// ErrCatalogUnavailable is returned when the product API is unreachable or
	// answers with a non-success status
	ErrCatalogUnavailable = errors.New("product catalog unavailable")

	// ErrCatalogMalformed is returned when the product API response is not
	// valid JSON or records are missing required fields
	ErrCatalogMalformed = errors.New("product catalog response malformed")

	// ErrSummaryUnavailable is returned when the LLM completion call fails
	ErrSummaryUnavailable = errors.New("summary generation failed")

	// ErrEmptyQuery is returned when the user query is blank
	ErrEmptyQuery = errors.New("query must not be empty")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
