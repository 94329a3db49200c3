package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/shoplens/backend/internal/domain"
)

// catalogCacheKey is the cache key under which the fetched catalog is stored
const catalogCacheKey = "catalog:all"

// AssistantConfig holds configuration for the assistant service
type AssistantConfig struct {
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

// AssistantService orchestrates one query end to end: load the catalog
// (cache first), interpret the query, filter the catalog, and ask the
// language model for a grounded summary of the matches.
type AssistantService struct {
	cache       domain.CacheRepository
	catalog     domain.CatalogClient
	llm         domain.Completer
	interpreter *Interpreter
	cacheTTL    time.Duration
	debug       bool
}

// NewAssistantService creates a new assistant service with dependencies
func NewAssistantService(
	cache domain.CacheRepository,
	catalog domain.CatalogClient,
	llm domain.Completer,
	config AssistantConfig,
) *AssistantService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 5 * time.Minute
	}

	return &AssistantService{
		cache:       cache,
		catalog:     catalog,
		llm:         llm,
		interpreter: NewInterpreter(config.EnableDebugLogging),
		cacheTTL:    cacheTTL,
		debug:       config.EnableDebugLogging,
	}
}

// Ask answers a free-text query.
// Flow: load catalog -> interpret -> filter -> summarize.
//
// When only the summary call fails, the returned result still carries the
// deterministic matches together with an error wrapping
// domain.ErrSummaryUnavailable, so callers can show the matches without the
// summary as a degraded fallback.
func (s *AssistantService) Ask(ctx context.Context, query string) (*domain.AssistantResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrEmptyQuery
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	filter := s.interpreter.Interpret(query)
	matches := FilterProducts(catalog, filter)

	if s.debug {
		log.Printf("[ASSISTANT] Query %q matched %d of %d products", query, len(matches), len(catalog))
	}

	result := &domain.AssistantResult{
		Query:   query,
		Filter:  filter,
		Matches: matches,
	}

	system, user := BuildSummaryPrompt(query, catalog, matches)
	summary, err := s.llm.Complete(ctx, system, user)
	if err != nil {
		return result, fmt.Errorf("%w: %v", domain.ErrSummaryUnavailable, err)
	}

	result.Summary = strings.TrimSpace(summary)
	return result, nil
}

// Products returns the full catalog, serving from cache when fresh
func (s *AssistantService) Products(ctx context.Context) ([]domain.Product, error) {
	return s.loadCatalog(ctx)
}

// loadCatalog fetches the catalog from cache, falling back to the remote API.
// One remote fetch serves every query within the cache TTL, which keeps the
// interactive loop to a single catalog download.
func (s *AssistantService) loadCatalog(ctx context.Context) ([]domain.Product, error) {
	if value, err := s.cache.Get(ctx, catalogCacheKey); err == nil {
		if catalog, ok := value.([]domain.Product); ok {
			return catalog, nil
		}
	}

	catalog, err := s.catalog.FetchProducts(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, catalogCacheKey, catalog, s.cacheTTL); err != nil {
		log.Printf("[ASSISTANT] Failed to cache catalog: %v", err)
	}

	return catalog, nil
}
