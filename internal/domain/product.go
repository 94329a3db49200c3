package domain

// Product represents a single catalog item fetched from the remote product API
type Product struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
}

// QueryFilter is the structured constraint derived from a free-text query.
// A nil MaxPrice means no price ceiling; an empty Keyword means no keyword
// constraint. The zero value matches every product.
type QueryFilter struct {
	MaxPrice *float64 `json:"maxPrice,omitempty"`
	Keyword  string   `json:"keyword,omitempty"`
}

// HasMaxPrice reports whether the filter carries a price ceiling
func (f QueryFilter) HasMaxPrice() bool {
	return f.MaxPrice != nil
}

// HasKeyword reports whether the filter carries a keyword constraint
func (f QueryFilter) HasKeyword() bool {
	return f.Keyword != ""
}

// IsEmpty reports whether the filter constrains nothing
func (f QueryFilter) IsEmpty() bool {
	return !f.HasMaxPrice() && !f.HasKeyword()
}

// AssistantResult is the outcome of one assistant query: the filter derived
// from the query text, the catalog products that matched it (in catalog
// order), and the generated summary. Summary is empty when the model call
// failed and the caller degraded to the deterministic matches.
type AssistantResult struct {
	Query   string      `json:"query"`
	Filter  QueryFilter `json:"filter"`
	Matches []Product   `json:"matches"`
	Summary string      `json:"summary,omitempty"`
}
