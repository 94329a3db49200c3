package usecase

import (
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/shoplens/backend/internal/domain"
)

// Compiled regex patterns for query interpretation
var (
	// Matches price ceilings like "under $200", "below 150", "less than 99.50", "<= 300"
	priceCeilingPattern = regexp.MustCompile(`(?:under|below|less than|<=|<)\s*\$?\s*([0-9]+(?:\.[0-9]+)?)`)

	// Fallback for a bare dollar amount like "$300"
	dollarAmountPattern = regexp.MustCompile(`\$\s*([0-9]+(?:\.[0-9]+)?)`)

	// Dollar amounts stripped from the text before keyword extraction
	dollarStripPattern = regexp.MustCompile(`\$\s*[0-9]+(?:\.[0-9]+)?`)

	// Characters that are neither word characters, whitespace nor hyphens
	queryPunctuationPattern = regexp.MustCompile(`[^\w\s\-]`)

	// Multiple spaces cleanup
	querySpacePattern = regexp.MustCompile(`\s+`)
)

// queryStopWords are filler and price-phrase words removed before the
// remaining text becomes the keyword
var queryStopWords = map[string]bool{
	// Price phrases
	"under": true, "below": true, "less": true, "than": true,
	"cheaper": true, "max": true, "maximum": true,

	// Request filler
	"find": true, "show": true, "me": true, "for": true,
	"i": true, "want": true, "need": true, "looking": true,
	"get": true, "give": true, "please": true,

	// Articles and connectives
	"a": true, "an": true, "the": true, "in": true, "with": true,
	"and": true, "or": true, "to": true, "of": true, "some": true,

	// Generic catalog terms that never narrow anything down
	"product": true, "products": true, "item": true, "items": true,
	"thing": true, "things": true, "something": true,
}

// Interpreter derives a structured QueryFilter from free-text queries.
// Interpretation is best-effort: input that yields neither a price nor a
// keyword produces the empty filter, which matches the whole catalog.
type Interpreter struct {
	enableDebugLogging bool
}

// NewInterpreter creates a new query interpreter
func NewInterpreter(enableDebugLogging bool) *Interpreter {
	return &Interpreter{
		enableDebugLogging: enableDebugLogging,
	}
}

// Interpret extracts a max price and a keyword from a free-text query.
// Examples handled:
//   - "Show me products under $300"  -> max price 300
//   - "Find chairs under 200"        -> max price 200, keyword "chair"
//   - "Find me a blue lamp"          -> keyword "blue lamp"
//   - "chairs"                       -> keyword "chair"
//
// The first price pattern in the text wins; later numbers are ignored.
func (i *Interpreter) Interpret(query string) domain.QueryFilter {
	q := strings.ToLower(strings.TrimSpace(query))

	var filter domain.QueryFilter
	if price, ok := extractMaxPrice(q); ok {
		filter.MaxPrice = &price
	}
	filter.Keyword = extractKeyword(q)

	if i.enableDebugLogging {
		log.Printf("[INTERPRET] Input: %q -> MaxPrice: %v, Keyword: %q",
			query, filter.MaxPrice, filter.Keyword)
	}

	return filter
}

// extractMaxPrice scans for the first number adjacent to a price-ceiling word
// or, failing that, the first bare dollar amount. Absence means no ceiling,
// never zero.
func extractMaxPrice(q string) (float64, bool) {
	match := priceCeilingPattern.FindStringSubmatch(q)
	if match == nil {
		match = dollarAmountPattern.FindStringSubmatch(q)
	}
	if match == nil {
		return 0, false
	}

	price, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}
	return price, true
}

// extractKeyword strips dollar amounts, stop words, standalone numbers and
// punctuation from the query; whatever phrase remains is the keyword. Tokens
// are lightly singularized so "chairs" still matches "Chair A".
func extractKeyword(q string) string {
	cleaned := dollarStripPattern.ReplaceAllString(q, " ")
	cleaned = queryPunctuationPattern.ReplaceAllString(cleaned, " ")

	var kept []string
	for _, word := range strings.Fields(cleaned) {
		if queryStopWords[word] {
			continue
		}
		// Numbers left over after price extraction carry no keyword meaning
		if isNumeric(word) {
			continue
		}
		kept = append(kept, singularize(word))
	}

	keyword := querySpacePattern.ReplaceAllString(strings.Join(kept, " "), " ")
	return strings.TrimSpace(keyword)
}

// singularize trims a plural "s" so keyword substring matching works against
// singular product names. Short words and "-ss" endings are left alone.
func singularize(word string) string {
	if len(word) > 3 && strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") {
		return word[:len(word)-1]
	}
	return word
}

// isNumeric checks if a string contains only digits and decimal points
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && c != '.' {
			return false
		}
	}
	return true
}
