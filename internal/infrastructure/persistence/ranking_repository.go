package persistence

import (
	"context"
	"errors"

	"github.com/doorshop/backend/internal/domain/analytics"
	"github.com/doorshop/backend/internal/domain/catalog"
	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const rankingInsertBatchSize = 200

// GormRankingRepository implements RankingRepository using GORM
type GormRankingRepository struct {
	db *gorm.DB
}

// NewGormRankingRepository creates a new GormRankingRepository
func NewGormRankingRepository(db *gorm.DB) *GormRankingRepository {
	return &GormRankingRepository{db: db}
}

// FindByProductID finds the ranking record of a product
func (r *GormRankingRepository) FindByProductID(ctx context.Context, productID uuid.UUID) (*analytics.Ranking, error) {
	var ranking analytics.Ranking
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&ranking).Error; err != nil {
		return nil, translateError(err)
	}
	return &ranking, nil
}

// FindOrCreate returns the product's ranking record locked for the rest of the transaction,
// inserting a neutral one if none exists
func (r *GormRankingRepository) FindOrCreate(ctx context.Context, productID uuid.UUID) (*analytics.Ranking, error) {
	db := r.db.WithContext(ctx)
	ranking, err := r.findLocked(db, productID)
	if !errors.Is(err, shared.ErrNotFound) {
		return ranking, err
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}},
		DoNothing: true,
	}).Create(analytics.NewRanking(productID)).Error; err != nil {
		return nil, err
	}
	return r.findLocked(db, productID)
}

func (r *GormRankingRepository) findLocked(db *gorm.DB, productID uuid.UUID) (*analytics.Ranking, error) {
	var ranking analytics.Ranking
	if err := lockForUpdate(db).Where("product_id = ?", productID).First(&ranking).Error; err != nil {
		return nil, translateError(err)
	}
	return &ranking, nil
}

// Save updates a ranking record
func (r *GormRankingRepository) Save(ctx context.Context, ranking *analytics.Ranking) error {
	return r.db.WithContext(ctx).Save(ranking).Error
}

// ForEachBatch walks all ranking records ordered by primary key
func (r *GormRankingRepository) ForEachBatch(ctx context.Context, size int, fn func(rankings []analytics.Ranking) error) error {
	var batch []analytics.Ranking
	return r.db.WithContext(ctx).FindInBatches(&batch, size, func(tx *gorm.DB, _ int) error {
		return fn(batch)
	}).Error
}

// CreateMissing inserts a neutral ranking record for every product without one
func (r *GormRankingRepository) CreateMissing(ctx context.Context) (int64, error) {
	var productIDs []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&catalog.Product{}).
		Where("NOT EXISTS (SELECT 1 FROM product_rankings pr WHERE pr.product_id = products.id)").
		Pluck("products.id", &productIDs).Error; err != nil {
		return 0, err
	}
	if len(productIDs) == 0 {
		return 0, nil
	}

	rankings := make([]*analytics.Ranking, 0, len(productIDs))
	for _, id := range productIDs {
		rankings = append(rankings, analytics.NewRanking(id))
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "product_id"}}, DoNothing: true}).
		CreateInBatches(rankings, rankingInsertBatchSize)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// StockStatus reads in_stock for the given products
func (r *GormRankingRepository) StockStatus(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	out := make(map[uuid.UUID]bool, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		ID      uuid.UUID
		InStock bool
	}
	if err := r.db.WithContext(ctx).Model(&catalog.Product{}).
		Select("id, in_stock").
		Where("id IN ?", productIDs).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ID] = row.InStock
	}
	return out, nil
}

// SyncPopularity mirrors a ranking score into products.popularity_score
func (r *GormRankingRepository) SyncPopularity(ctx context.Context, productID uuid.UUID, score float64) error {
	return r.db.WithContext(ctx).Model(&catalog.Product{}).
		Where("id = ?", productID).
		UpdateColumn("popularity_score", score).Error
}

// Ensure GormRankingRepository implements RankingRepository
var _ analytics.RankingRepository = (*GormRankingRepository)(nil)
