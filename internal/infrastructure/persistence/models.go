package persistence

import (
	"github.com/doorshop/backend/internal/domain/analytics"
	"github.com/doorshop/backend/internal/domain/blog"
	"github.com/doorshop/backend/internal/domain/catalog"
)

// AllModels lists every persisted entity in dependency order.
// The SQL migrations own the production schema; AutoMigrate over this list is used by tests.
func AllModels() []any {
	return []any{
		&catalog.Brand{},
		&catalog.Category{},
		&catalog.Catalog{},
		&catalog.CatalogImage{},
		&catalog.Product{},
		&catalog.ProductImage{},
		&catalog.Video{},
		&catalog.Banner{},
		&catalog.Promotion{},
		&catalog.Tip{},
		&blog.Author{},
		&blog.Tag{},
		&blog.Post{},
		&blog.Media{},
		&blog.PostView{},
		&blog.PostLike{},
		&analytics.Event{},
		&analytics.Session{},
		&analytics.DailySummary{},
		&analytics.Ranking{},
	}
}
