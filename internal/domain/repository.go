package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// CatalogClient defines the interface for fetching products from the remote
// catalog API
type CatalogClient interface {
	FetchProducts(ctx context.Context) ([]Product, error)
}

// Completer defines the interface to the language-model completion API. It is
// the only non-deterministic dependency of the assistant, kept behind an
// interface so tests can stub it out.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
