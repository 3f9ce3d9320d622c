package persistence

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/doorshop/backend/internal/domain/analytics"
	"github.com/doorshop/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory SQLite database with the full schema.
// A single connection keeps every query on the same in-memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(AllModels()...))
	return db
}

// newMockDB creates a GORM postgres connection backed by sqlmock
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

type productOption func(*catalog.Product)

func withPrice(price string) productOption {
	return func(p *catalog.Product) { p.Price = decimal.RequireFromString(price) }
}

func withDiscount(price string) productOption {
	return func(p *catalog.Product) {
		d := decimal.RequireFromString(price)
		p.DiscountPrice = &d
	}
}

func withBrand(b *catalog.Brand) productOption {
	return func(p *catalog.Product) { p.BrandID = &b.ID }
}

func withCategory(c *catalog.Category) productOption {
	return func(p *catalog.Product) { p.CategoryID = &c.ID }
}

func withCatalog(c *catalog.Catalog) productOption {
	return func(p *catalog.Product) { p.CatalogID = &c.ID }
}

func withPopularity(score float64) productOption {
	return func(p *catalog.Product) { p.PopularityScore = score }
}

func inactive() productOption {
	return func(p *catalog.Product) { p.IsActive = false }
}

func createdAt(t time.Time) productOption {
	return func(p *catalog.Product) { p.CreatedAt = t.UTC() }
}

func createProduct(t *testing.T, db *gorm.DB, name string, opts ...productOption) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(name, "", decimal.NewFromInt(100))
	require.NoError(t, err)
	for _, opt := range opts {
		opt(p)
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func createBrand(t *testing.T, db *gorm.DB, name string) *catalog.Brand {
	t.Helper()
	b, err := catalog.NewBrand(name, "")
	require.NoError(t, err)
	require.NoError(t, db.Create(b).Error)
	return b
}

func createCategory(t *testing.T, db *gorm.DB, name string, parent *catalog.Category) *catalog.Category {
	t.Helper()
	var (
		c   *catalog.Category
		err error
	)
	if parent != nil {
		c, err = catalog.NewChildCategory(parent, name, "")
	} else {
		c, err = catalog.NewCategory(name, "")
	}
	require.NoError(t, err)
	require.NoError(t, db.Create(c).Error)
	return c
}

func createRanking(t *testing.T, db *gorm.DB, productID uuid.UUID, score float64, mutate ...func(*analytics.Ranking)) *analytics.Ranking {
	t.Helper()
	r := analytics.NewRanking(productID)
	r.RankingScore = score
	for _, m := range mutate {
		m(r)
	}
	require.NoError(t, db.Create(r).Error)
	return r
}
