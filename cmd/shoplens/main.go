package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shoplens/backend/config"
	"github.com/shoplens/backend/internal/domain"
	"github.com/shoplens/backend/internal/infrastructure/cache"
	"github.com/shoplens/backend/internal/infrastructure/catalog"
	"github.com/shoplens/backend/internal/infrastructure/llm"
	"github.com/shoplens/backend/internal/usecase"
)

func main() {
	root := &cobra.Command{
		Use:          "shoplens",
		Short:        "AI shopping assistant over a remote product catalog",
		SilenceUsage: true,
	}

	ask := &cobra.Command{
		Use:   "ask \"query\"",
		Short: "Answer a single free-text shopping query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildService()
			if err != nil {
				return err
			}
			return runQuery(cmd.Context(), svc, strings.Join(args, " "))
		},
	}

	chat := &cobra.Command{
		Use:   "chat",
		Short: "Interactive query loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildService()
			if err != nil {
				return err
			}
			return runChat(cmd.Context(), svc)
		},
	}

	var limit int
	products := &cobra.Command{
		Use:   "products",
		Short: "Print the product catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildService()
			if err != nil {
				return err
			}
			list, err := svc.Products(cmd.Context())
			if err != nil {
				return fmt.Errorf("could not retrieve products: %w", err)
			}
			printProducts(list, limit)
			return nil
		},
	}
	products.Flags().IntVar(&limit, "limit", 10, "maximum products to print (0 = all)")

	root.AddCommand(ask, chat, products)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildService wires config, cache, catalog client and LLM client into an
// assistant service. A missing API key fails here, before any network call.
func buildService() (*usecase.AssistantService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Timeout)
	catalogClient.SetDebug(cfg.Assistant.EnableDebugLogging)

	llmClient := llm.NewClient(llm.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		Timeout:     cfg.LLM.Timeout,
	})

	return usecase.NewAssistantService(
		cache.NewMemoryCache(),
		catalogClient,
		llmClient,
		usecase.AssistantConfig{
			CacheTTL:           cfg.Cache.TTL,
			EnableDebugLogging: cfg.Assistant.EnableDebugLogging,
		},
	), nil
}

// runQuery answers one query and prints the result. When only the summary
// call failed, the deterministic matches are printed anyway and the error is
// still returned so the process exits non-zero.
func runQuery(ctx context.Context, svc *usecase.AssistantService, query string) error {
	result, err := svc.Ask(ctx, query)
	if err != nil {
		if errors.Is(err, domain.ErrSummaryUnavailable) && result != nil {
			fmt.Println(usecase.FormatMatches(result.Matches))
			fmt.Fprintln(os.Stderr, "warning: could not generate summary")
			return err
		}
		return fmt.Errorf("could not retrieve products: %w", err)
	}

	fmt.Println(usecase.FormatMatches(result.Matches))
	fmt.Println("\nAI Summary:")
	fmt.Println(result.Summary)
	return nil
}

// runChat runs the interactive loop: fetch the catalog once, then answer
// queries until exit/quit or EOF
func runChat(ctx context.Context, svc *usecase.AssistantService) error {
	fmt.Println("Fetching products...")
	list, err := svc.Products(ctx)
	if err != nil {
		return fmt.Errorf("could not retrieve products: %w", err)
	}
	fmt.Printf("Products fetched: %d\n\n", len(list))

	fmt.Println("Type queries like:")
	fmt.Println("  - Show me products under $300")
	fmt.Println("  - Find chairs under 200")
	fmt.Println("  - Find blue lamp")
	fmt.Println("Type 'exit' to quit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Your query: ")
		if !scanner.Scan() {
			break
		}

		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if query == "exit" || query == "quit" {
			fmt.Println("Goodbye!")
			break
		}

		fmt.Println("\n" + strings.Repeat("=", 60) + "\n")
		if err := runQuery(ctx, svc, query); err != nil && !errors.Is(err, domain.ErrSummaryUnavailable) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		fmt.Println("\n" + strings.Repeat("=", 60) + "\n")
	}

	return scanner.Err()
}

// printProducts pretty-prints the catalog, truncating long descriptions
func printProducts(products []domain.Product, limit int) {
	if limit <= 0 || limit > len(products) {
		limit = len(products)
	}

	for i, p := range products[:limit] {
		fmt.Printf("%d. %s — $%.2f\n", i+1, p.Name, p.Price)
		if p.Category != "" {
			fmt.Printf("   Category: %s\n", p.Category)
		}
		if p.Description != "" {
			desc := p.Description
			if len(desc) > 120 {
				desc = desc[:120] + "..."
			}
			fmt.Printf("   %s\n", desc)
		}
		fmt.Println()
	}
}
