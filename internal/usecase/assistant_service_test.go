package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shoplens/backend/internal/domain"
	"github.com/shoplens/backend/internal/infrastructure/cache"
)

type stubCatalog struct {
	products []domain.Product
	err      error
	calls    int
}

func (s *stubCatalog) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.products, nil
}

type stubCompleter struct {
	response   string
	err        error
	lastSystem string
	lastUser   string
}

func (s *stubCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	s.lastSystem = systemPrompt
	s.lastUser = userPrompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func newTestService(catalog *stubCatalog, completer *stubCompleter) *AssistantService {
	return NewAssistantService(cache.NewMemoryCache(), catalog, completer, AssistantConfig{})
}

func TestAsk_EmptyQuery(t *testing.T) {
	svc := newTestService(&stubCatalog{}, &stubCompleter{})

	for _, query := range []string{"", "   "} {
		_, err := svc.Ask(context.Background(), query)
		if !errors.Is(err, domain.ErrEmptyQuery) {
			t.Errorf("Ask(%q) error = %v, want ErrEmptyQuery", query, err)
		}
	}
}

func TestAsk_CatalogErrorPropagates(t *testing.T) {
	catalog := &stubCatalog{err: fmt.Errorf("%w: connection refused", domain.ErrCatalogUnavailable)}
	svc := newTestService(catalog, &stubCompleter{})

	result, err := svc.Ask(context.Background(), "chairs")
	if !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Errorf("error = %v, want ErrCatalogUnavailable", err)
	}
	if result != nil {
		t.Errorf("result = %v, want nil", result)
	}
}

func TestAsk_Success(t *testing.T) {
	catalog := &stubCatalog{products: []domain.Product{
		{Name: "Chair A", Price: 150},
		{Name: "Lamp B", Price: 250},
	}}
	completer := &stubCompleter{response: "  Chair A at $150 fits your budget.  "}
	svc := newTestService(catalog, completer)

	result, err := svc.Ask(context.Background(), "Show me chairs under $200")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Matches) != 1 || result.Matches[0].Name != "Chair A" {
		t.Errorf("Matches = %v, want [Chair A]", result.Matches)
	}
	if !result.Filter.HasMaxPrice() || *result.Filter.MaxPrice != 200 {
		t.Errorf("Filter.MaxPrice = %v, want 200", result.Filter.MaxPrice)
	}
	if result.Summary != "Chair A at $150 fits your budget." {
		t.Errorf("Summary = %q, want trimmed stub response", result.Summary)
	}
	if !strings.Contains(completer.lastUser, "Chair A") {
		t.Error("prompt does not contain the matched product")
	}
}

func TestAsk_SummaryFailureReturnsMatches(t *testing.T) {
	catalog := &stubCatalog{products: []domain.Product{
		{Name: "Chair A", Price: 150},
	}}
	completer := &stubCompleter{err: errors.New("api timeout")}
	svc := newTestService(catalog, completer)

	result, err := svc.Ask(context.Background(), "chairs")
	if !errors.Is(err, domain.ErrSummaryUnavailable) {
		t.Fatalf("error = %v, want ErrSummaryUnavailable", err)
	}
	if result == nil {
		t.Fatal("result is nil, want degraded result with matches")
	}
	if len(result.Matches) != 1 {
		t.Errorf("len(Matches) = %d, want 1", len(result.Matches))
	}
	if result.Summary != "" {
		t.Errorf("Summary = %q, want empty", result.Summary)
	}
}

func TestAsk_CatalogFetchedOncePerTTL(t *testing.T) {
	catalog := &stubCatalog{products: []domain.Product{{Name: "Chair A", Price: 150}}}
	svc := newTestService(catalog, &stubCompleter{response: "ok"})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.Ask(ctx, "chairs"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if catalog.calls != 1 {
		t.Errorf("catalog fetches = %d, want 1 (served from cache)", catalog.calls)
	}
}

func TestAsk_EmptyMatchesPromptStatesNoMatches(t *testing.T) {
	catalog := &stubCatalog{products: []domain.Product{{Name: "Chair A", Price: 150}}}
	completer := &stubCompleter{response: "No matching products found."}
	svc := newTestService(catalog, completer)

	result, err := svc.Ask(context.Background(), "hovercraft under $1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Matches) != 0 {
		t.Fatalf("len(Matches) = %d, want 0", len(result.Matches))
	}
	if !strings.Contains(completer.lastUser, "No matching products were found") {
		t.Error("prompt does not state that nothing matched")
	}
}

func TestProducts_ServesFromCache(t *testing.T) {
	catalog := &stubCatalog{products: []domain.Product{{Name: "Chair A", Price: 150}}}
	svc := newTestService(catalog, &stubCompleter{})
	ctx := context.Background()

	first, err := svc.Products(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Products(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != 1 || len(second) != 1 {
		t.Errorf("catalog lengths = %d, %d, want 1, 1", len(first), len(second))
	}
	if catalog.calls != 1 {
		t.Errorf("catalog fetches = %d, want 1", catalog.calls)
	}
}
