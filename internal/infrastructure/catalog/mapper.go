package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/shoplens/backend/internal/domain"
)

// wireProduct is the upstream JSON shape. Name and price are pointers so a
// missing field is distinguishable from a zero value.
type wireProduct struct {
	ID          string          `json:"_id"`
	Name        *string         `json:"name"`
	Price       *float64        `json:"price"`
	Description string          `json:"description"`
	Category    json.RawMessage `json:"category"`
}

// mapProducts converts upstream records to domain products. Every record must
// carry a name and a price; a record missing either makes the whole response
// malformed.
func mapProducts(records []wireProduct) ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(records))

	for i, rec := range records {
		if rec.Name == nil || *rec.Name == "" {
			return nil, fmt.Errorf("%w: record %d missing name", domain.ErrCatalogMalformed, i)
		}
		if rec.Price == nil {
			return nil, fmt.Errorf("%w: record %d (%s) missing price", domain.ErrCatalogMalformed, i, *rec.Name)
		}

		products = append(products, domain.Product{
			ID:          rec.ID,
			Name:        *rec.Name,
			Price:       *rec.Price,
			Category:    categoryName(rec.Category),
			Description: rec.Description,
		})
	}

	return products, nil
}

// categoryName flattens the upstream category field, which is either a plain
// string or an object with a name
func categoryName(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return asString
	}

	var asObject struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &asObject); err == nil {
		return asObject.Name
	}

	return ""
}
