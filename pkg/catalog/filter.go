// Package catalog narrows product listings for the storefront views.
package catalog

import (
	"strings"

	"getsbiplay.ru/store/api/pkg/models"
)

// Query describes the optional catalog filters. Empty fields are no-ops.
type Query struct {
	Category models.Category
	Search   string
}

// Filter returns the products matching the query, preserving the input
// order. Category is an exact match; Search is a case-insensitive substring
// match against name or description. Both compose with logical AND.
func Filter(products []models.Product, q Query) []models.Product {
	matched := make([]models.Product, 0, len(products))
	search := strings.ToLower(q.Search)

	for _, p := range products {
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		matched = append(matched, p)
	}

	return matched
}
