package usecase

import (
	"strings"

	"github.com/shoplens/backend/internal/domain"
)

// FilterProducts applies a QueryFilter to a catalog and returns the matching
// products in their original catalog order. A product matches when its price
// is at or under the ceiling (if one is set) and the keyword (if one is set)
// appears case-insensitively in its name or description.
//
// Pure function: single pass, no side effects, never mutates the catalog.
func FilterProducts(catalog []domain.Product, filter domain.QueryFilter) []domain.Product {
	matches := make([]domain.Product, 0, len(catalog))
	keyword := strings.ToLower(filter.Keyword)

	for _, p := range catalog {
		if filter.HasMaxPrice() && p.Price > *filter.MaxPrice {
			continue
		}
		if filter.HasKeyword() && !matchesKeyword(p, keyword) {
			continue
		}
		matches = append(matches, p)
	}

	return matches
}

// matchesKeyword reports whether the lowercase keyword appears in the
// product's name or description
func matchesKeyword(p domain.Product, keyword string) bool {
	return strings.Contains(strings.ToLower(p.Name), keyword) ||
		strings.Contains(strings.ToLower(p.Description), keyword)
}
