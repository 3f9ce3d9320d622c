package persistence

import (
	"strings"
)

// ValidateSortOrder normalizes the sort order to ASC or DESC, defaulting to DESC
func ValidateSortOrder(orderDir string) string {
	if strings.ToUpper(strings.TrimSpace(orderDir)) == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField returns sortField when whitelisted, else defaultField
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CategoryProductSortFields are the sort_by values of a category product listing
var CategoryProductSortFields = map[string]bool{
	"name":             true,
	"price":            true,
	"created_at":       true,
	"popularity_score": true,
}

// PostSortFields are the order_by values of a post search
var PostSortFields = map[string]bool{
	"created_at":   true,
	"published_at": true,
	"views_count":  true,
	"likes_count":  true,
	"title":        true,
}

// CatalogSorts maps catalog listing sorts to ORDER BY clauses
var CatalogSorts = map[string]string{
	"name":          "catalogs.name ASC",
	"name_asc":      "catalogs.name ASC",
	"name_desc":     "catalogs.name DESC",
	"newest":        "catalogs.created_at DESC",
	"popular":       "COALESCE(pc.product_count, 0) DESC, catalogs.name ASC",
	"product_count": "COALESCE(pc.product_count, 0) DESC, catalogs.name ASC",
}
