package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shoplens/backend/internal/domain"
)

// fallbackSampleSize caps the catalog sample shown to the model when nothing
// matched the filter
const fallbackSampleSize = 10

// summarySystemPrompt pins the model to the product list we hand it
const summarySystemPrompt = "You are a helpful shopping assistant that only uses the provided product list."

// promptProduct is the compact product shape embedded in the prompt
type promptProduct struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	ID          string  `json:"id,omitempty"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
}

// BuildSummaryPrompt constructs the system and user messages for the summary
// request. The matched products are embedded as a JSON array so the model can
// quote exact names and prices. When nothing matched, the prompt says so
// explicitly and offers a small catalog sample as context for alternatives,
// so the model never fabricates matches.
func BuildSummaryPrompt(query string, catalog, matches []domain.Product) (system, user string) {
	var b strings.Builder

	b.WriteString("You are a shopping assistant. You MUST answer only using the product list provided. ")
	b.WriteString("Do NOT invent products or prices. If nothing matches, say: 'No matching products found.'\n\n")

	b.WriteString("User query:\n")
	b.WriteString(query)
	b.WriteString("\n\n")

	items := matches
	if len(matches) == 0 {
		b.WriteString("No matching products were found for this query. ")
		b.WriteString("Tell the user that no matching products were found. ")
		b.WriteString("The products below are a sample of the catalog they could consider instead.\n\n")
		items = catalog
		if len(items) > fallbackSampleSize {
			items = items[:fallbackSampleSize]
		}
	}

	b.WriteString("Products (JSON array):\n")
	b.WriteString(marshalPromptProducts(items))
	b.WriteString("\n\nAnswer concisely and refer to product names and exact prices from the list above.")

	return summarySystemPrompt, b.String()
}

// marshalPromptProducts renders products as indented JSON for the prompt
func marshalPromptProducts(products []domain.Product) string {
	items := make([]promptProduct, 0, len(products))
	for _, p := range products {
		items = append(items, promptProduct{
			Name:        p.Name,
			Price:       p.Price,
			ID:          p.ID,
			Category:    p.Category,
			Description: p.Description,
		})
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		// promptProduct contains only marshalable fields; this path is unreachable
		return "[]"
	}
	return string(data)
}

// FormatMatches renders the deterministic match listing shown to the user
// alongside (or instead of) the generated summary
func FormatMatches(matches []domain.Product) string {
	if len(matches) == 0 {
		return "No matching products found (based on exact filter)."
	}

	var b strings.Builder
	b.WriteString("MATCHING PRODUCTS:\n")
	for _, p := range matches {
		b.WriteString(fmt.Sprintf("- %s: $%.2f", p.Name, p.Price))
		if p.Category != "" {
			b.WriteString(" — " + p.Category)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
