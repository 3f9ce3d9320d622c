package persistence

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/doorshop/backend/internal/domain/analytics"
	"github.com/doorshop/backend/internal/domain/catalog"
	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func productNames(products []catalog.Product) []string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	return names
}

func TestGormProductRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	brand := createBrand(t, db, "Torex")
	doors := createCategory(t, db, "Entrance Doors", nil)
	other := createCategory(t, db, "Locks", nil)

	base := time.Now().UTC().Add(-time.Hour)
	alpha := createProduct(t, db, "Alpha Door", withBrand(brand), withCategory(doors), withPrice("300"), withPopularity(10), createdAt(base))
	beta := createProduct(t, db, "Beta Door", withCategory(doors), withPrice("150"), withPopularity(50), createdAt(base.Add(time.Minute)))
	gamma := createProduct(t, db, "Gamma Lock", withCategory(other), withPrice("50"), withPopularity(5), createdAt(base.Add(2*time.Minute)))
	createProduct(t, db, "Hidden Door", withCategory(doors), inactive())

	// gamma is linked to the doors category through product_categories
	require.NoError(t, db.Model(gamma).Association("Categories").Append(doors))

	createRanking(t, db, alpha.ID, 90)
	createRanking(t, db, beta.ID, 20)

	t.Run("smart sort orders by ranking score then popularity", func(t *testing.T) {
		products, total, err := repo.List(ctx, catalog.ProductListFilter{
			Filter: shared.Filter{Page: 1, PageSize: 12},
			Sort:   catalog.SortSmart,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Equal(t, []string{"Alpha Door", "Beta Door", "Gamma Lock"}, productNames(products))
	})

	t.Run("category slug matches primary and linked categories", func(t *testing.T) {
		products, total, err := repo.List(ctx, catalog.ProductListFilter{
			Filter:       shared.Filter{Page: 1, PageSize: 12},
			CategorySlug: doors.Slug,
			Sort:         catalog.SortPriceAsc,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Equal(t, []string{"Gamma Lock", "Beta Door", "Alpha Door"}, productNames(products))
	})

	t.Run("brand slug and price bounds", func(t *testing.T) {
		minPrice := decimal.NewFromInt(100)
		products, total, err := repo.List(ctx, catalog.ProductListFilter{
			Filter:    shared.Filter{Page: 1, PageSize: 12},
			BrandSlug: brand.Slug,
			MinPrice:  &minPrice,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, products, 1)
		assert.Equal(t, alpha.ID, products[0].ID)
		require.NotNil(t, products[0].Brand)
		assert.Equal(t, "Torex", products[0].Brand.Name)
	})

	t.Run("search matches name", func(t *testing.T) {
		products, total, err := repo.List(ctx, catalog.ProductListFilter{
			Filter: shared.Filter{Page: 1, PageSize: 12, Search: "lock"},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, []string{"Gamma Lock"}, productNames(products))
	})

	t.Run("pagination keeps the total", func(t *testing.T) {
		products, total, err := repo.List(ctx, catalog.ProductListFilter{
			Filter: shared.Filter{Page: 2, PageSize: 2},
			Sort:   catalog.SortNewest,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Equal(t, []string{"Alpha Door"}, productNames(products))
	})
}

func TestGormProductRepository_Featured(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	top := createProduct(t, db, "Top Scored")
	pinned := createProduct(t, db, "Pinned")
	flagged := createProduct(t, db, "Flagged")
	expired := createProduct(t, db, "Expired Pin")
	createProduct(t, db, "Plain", withPopularity(99))

	createRanking(t, db, top.ID, 80)
	createRanking(t, db, pinned.ID, 2, func(r *analytics.Ranking) {
		until := time.Now().UTC().Add(24 * time.Hour)
		r.PriorityUntil = &until
	})
	createRanking(t, db, flagged.ID, 1, func(r *analytics.Ranking) { r.IsFeatured = true })
	createRanking(t, db, expired.ID, 50, func(r *analytics.Ranking) {
		until := time.Now().UTC().Add(-time.Hour)
		r.PriorityUntil = &until
	})

	var queries []string
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:capture_sql", func(tx *gorm.DB) {
		queries = append(queries, tx.Statement.SQL.String())
	}))

	products, err := repo.Featured(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, []string{"Pinned", "Flagged", "Top Scored", "Expired Pin", "Plain"}, productNames(products))

	var ordered bool
	for _, q := range queries {
		ordered = ordered || strings.Contains(q, "ORDER BY CASE WHEN pr.is_featured")
	}
	assert.True(t, ordered, "promotion term missing from %v", queries)
}

func TestGormProductRepository_FindBySlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	p := createProduct(t, db, "Steel Door")
	require.NoError(t, db.Create(&catalog.ProductImage{
		BaseEntity: shared.NewBaseEntity(), ProductID: p.ID, URL: "/media/a.jpg", SortOrder: 2,
	}).Error)
	require.NoError(t, db.Create(&catalog.ProductImage{
		BaseEntity: shared.NewBaseEntity(), ProductID: p.ID, URL: "/media/b.jpg", SortOrder: 1,
	}).Error)
	hidden := createProduct(t, db, "Retired Door", inactive())

	t.Run("loads gallery in sort order", func(t *testing.T) {
		found, err := repo.FindBySlug(ctx, p.Slug)
		require.NoError(t, err)
		require.Len(t, found.Images, 2)
		assert.Equal(t, "/media/b.jpg", found.Images[0].URL)
		assert.Equal(t, "/media/b.jpg", found.MainImage())
	})

	t.Run("inactive products are not found", func(t *testing.T) {
		_, err := repo.FindBySlug(ctx, hidden.Slug)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("unknown slug", func(t *testing.T) {
		_, err := repo.FindBySlug(ctx, "nope")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormProductRepository_PriceRangeAndDiscounts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	t.Run("empty assortment", func(t *testing.T) {
		pr, err := repo.PriceRange(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), pr.Count)
	})

	createProduct(t, db, "Cheap", withPrice("49.90"), withDiscount("39.90"))
	createProduct(t, db, "Pricey", withPrice("1200"))
	createProduct(t, db, "Fake Discount", withPrice("100"), withDiscount("150"))
	createProduct(t, db, "Gone", withPrice("9999"), inactive())

	t.Run("bounds over active products", func(t *testing.T) {
		pr, err := repo.PriceRange(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), pr.Count)
		assert.True(t, pr.Min.Equal(decimal.RequireFromString("49.90")), pr.Min.String())
		assert.True(t, pr.Max.Equal(decimal.NewFromInt(1200)), pr.Max.String())
	})

	t.Run("only real discounts", func(t *testing.T) {
		products, err := repo.Discounted(ctx, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"Cheap"}, productNames(products))
	})
}

func TestGormProductRepository_DiscountedFiltersAndLimitsInQuery(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	createProduct(t, db, "Three Percent", withPrice("100"), withDiscount("97"))
	createProduct(t, db, "Ten Percent", withPrice("100"), withDiscount("90"))
	createProduct(t, db, "Half Off", withPrice("100"), withDiscount("50"))
	createProduct(t, db, "Quarter Off", withPrice("200"), withDiscount("150"))
	createProduct(t, db, "Full Price", withPrice("100"))

	t.Run("min percent is applied in SQL", func(t *testing.T) {
		products, err := repo.Discounted(ctx, 5, 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"Half Off", "Quarter Off", "Ten Percent"}, productNames(products))
	})

	t.Run("limit keeps the best deals", func(t *testing.T) {
		products, err := repo.Discounted(ctx, 0, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"Half Off", "Quarter Off"}, productNames(products))
	})

	t.Run("boundary percent is inclusive", func(t *testing.T) {
		products, err := repo.Discounted(ctx, 25, 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"Half Off", "Quarter Off"}, productNames(products))
	})
}

func TestGormProductRepository_Counts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	brand := createBrand(t, db, "Stalnye")
	doors := createCategory(t, db, "Doors", nil)
	handles := createCategory(t, db, "Handles", nil)

	a := createProduct(t, db, "A", withBrand(brand), withCategory(doors))
	createProduct(t, db, "B", withBrand(brand), withCategory(handles))
	createProduct(t, db, "C", withBrand(brand), withCategory(doors), inactive())
	require.NoError(t, db.Model(a).Association("Categories").Append(doors, handles))

	byBrand, err := repo.CountByBrand(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), byBrand[brand.ID])

	byCategory, err := repo.CountByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), byCategory[doors.ID], "direct and linked rows for one product count once")
	assert.Equal(t, int64(2), byCategory[handles.ID])

	exists, err := repo.ExistsByID(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormProductRepository_ListByCategory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	doors := createCategory(t, db, "Doors", nil)
	createProduct(t, db, "Zeta", withCategory(doors), withPrice("10"))
	createProduct(t, db, "Eta", withCategory(doors), withPrice("30"))
	createProduct(t, db, "Theta", withPrice("20"))

	t.Run("defaults to name ascending", func(t *testing.T) {
		products, total, err := repo.ListByCategory(ctx, doors.ID, shared.Filter{Page: 1, PageSize: 20})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Equal(t, []string{"Eta", "Zeta"}, productNames(products))
	})

	t.Run("unknown sort field falls back to name", func(t *testing.T) {
		products, _, err := repo.ListByCategory(ctx, doors.ID, shared.Filter{Page: 1, PageSize: 20, OrderBy: "id; DROP TABLE products", OrderDir: "desc"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Zeta", "Eta"}, productNames(products))
	})

	t.Run("price descending", func(t *testing.T) {
		products, _, err := repo.ListByCategory(ctx, doors.ID, shared.Filter{Page: 1, PageSize: 20, OrderBy: "price", OrderDir: "desc"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Eta", "Zeta"}, productNames(products))
	})
}

func TestGormProductRepository_Suggest(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	createProduct(t, db, "Oak Door", withPopularity(1))
	createProduct(t, db, "Oak Panel", withPopularity(9))
	createProduct(t, db, "Pine Door")

	products, err := repo.Suggest(ctx, "oak", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"Oak Panel", "Oak Door"}, productNames(products))
}

func TestGormProductRepository_SuggestMatchesWildcardsLiterally(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	createProduct(t, db, "Oak Door")
	createProduct(t, db, "Door 50% Off")
	createProduct(t, db, "Frame_Kit")

	for _, tt := range []struct {
		query string
		want  []string
	}{
		{"_", []string{"Frame_Kit"}},
		{"%", []string{"Door 50% Off"}},
		{`\`, []string{}},
		{"50%", []string{"Door 50% Off"}},
	} {
		products, err := repo.Suggest(ctx, tt.query, 5)
		require.NoError(t, err, tt.query)
		assert.Equal(t, tt.want, productNames(products), tt.query)
	}
}
