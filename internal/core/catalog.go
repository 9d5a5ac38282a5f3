package core

import (
	"strings"

	"handmade-backend/internal/models"
)

// catalogPageSize is the fixed storefront page size.
const catalogPageSize = 9

// CatalogFilter carries the storefront's search/category/price controls.
type CatalogFilter struct {
	Search      string
	Category    string
	PriceBucket string
	Page        int
}

// CatalogPage is one page of filtered catalog results plus the metadata the
// storefront renders around the grid.
type CatalogPage struct {
	Items      []*models.Product `json:"items"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
	TotalItems int               `json:"totalItems"`
	Categories []string          `json:"categories"`
}

// filterProducts applies the catalog filters in order: case-insensitive
// substring match on name, exact category match, price bucket membership.
// Products with an unparseable price are excluded by any bucket but pass
// when no bucket is selected.
func filterProducts(products []*models.Product, filter CatalogFilter) []*models.Product {
	result := make([]*models.Product, 0, len(products))
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if !matchesBucket(p.NumericPrice, filter.PriceBucket) {
			continue
		}
		result = append(result, p)
	}
	return result
}

// distinctCategories returns the non-empty categories in first-seen order.
func distinctCategories(products []*models.Product) []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}

// paginate slices one page out of the filtered list. Pages are requested per
// call and clamped into range, so changing a filter can never leave a client
// stranded on a page that no longer exists.
func paginate(products []*models.Product, page int) (items []*models.Product, clampedPage, totalPages int) {
	totalPages = (len(products) + catalogPageSize - 1) / catalogPageSize
	if totalPages == 0 {
		return []*models.Product{}, 1, 0
	}
	clampedPage = page
	if clampedPage < 1 {
		clampedPage = 1
	}
	if clampedPage > totalPages {
		clampedPage = totalPages
	}
	start := (clampedPage - 1) * catalogPageSize
	end := start + catalogPageSize
	if end > len(products) {
		end = len(products)
	}
	return products[start:end], clampedPage, totalPages
}
