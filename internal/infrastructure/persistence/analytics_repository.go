package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/doorshop/backend/internal/domain/analytics"
	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const eventInsertBatchSize = 100

// GormEventRepository implements EventRepository using GORM
type GormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates a new GormEventRepository
func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// SaveBatch inserts events in chunks
func (r *GormEventRepository) SaveBatch(ctx context.Context, events []*analytics.Event) error {
	if len(events) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(events, eventInsertBatchSize).Error
}

// CountByProduct counts a product's events per type since the given time
func (r *GormEventRepository) CountByProduct(ctx context.Context, productID uuid.UUID, since time.Time) (map[analytics.EventType]int64, error) {
	var rows []struct {
		EventType analytics.EventType
		Count     int64
	}
	err := r.db.WithContext(ctx).Model(&analytics.Event{}).
		Select("event_type, COUNT(*) AS count").
		Where("product_id = ? AND created_at >= ?", productID, since.UTC()).
		Group("event_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[analytics.EventType]int64, len(rows))
	for _, row := range rows {
		out[row.EventType] = row.Count
	}
	return out, nil
}

// Ensure GormEventRepository implements EventRepository
var _ analytics.EventRepository = (*GormEventRepository)(nil)

// GormSessionRepository implements SessionRepository using GORM
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GormSessionRepository
func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// FindBySessionID finds a session by its client key
func (r *GormSessionRepository) FindBySessionID(ctx context.Context, sessionID string) (*analytics.Session, error) {
	var session analytics.Session
	if err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&session).Error; err != nil {
		return nil, translateError(err)
	}
	return &session, nil
}

// FindOrCreate inserts candidate unless a session with its key exists, then returns the stored
// row locked for the rest of the transaction
func (r *GormSessionRepository) FindOrCreate(ctx context.Context, candidate *analytics.Session) (*analytics.Session, error) {
	db := r.db.WithContext(ctx)
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoNothing: true,
	}).Create(candidate).Error; err != nil {
		return nil, err
	}
	var session analytics.Session
	if err := lockForUpdate(db).Where("session_id = ?", candidate.SessionID).First(&session).Error; err != nil {
		return nil, translateError(err)
	}
	return &session, nil
}

// Save inserts or updates a session
func (r *GormSessionRepository) Save(ctx context.Context, session *analytics.Session) error {
	return r.db.WithContext(ctx).Save(session).Error
}

// Ensure GormSessionRepository implements SessionRepository
var _ analytics.SessionRepository = (*GormSessionRepository)(nil)

// GormSummaryRepository implements SummaryRepository using GORM
type GormSummaryRepository struct {
	db *gorm.DB
}

// NewGormSummaryRepository creates a new GormSummaryRepository
func NewGormSummaryRepository(db *gorm.DB) *GormSummaryRepository {
	return &GormSummaryRepository{db: db}
}

// FindOrCreate returns the summary of a product's UTC day locked for the rest of the
// transaction, inserting an empty one if none exists
func (r *GormSummaryRepository) FindOrCreate(ctx context.Context, productID uuid.UUID, day time.Time) (*analytics.DailySummary, error) {
	date := analytics.Day(day)
	db := r.db.WithContext(ctx)

	summary, err := r.findLocked(db, productID, date)
	if !errors.Is(err, shared.ErrNotFound) {
		return summary, err
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "date"}},
		DoNothing: true,
	}).Create(analytics.NewDailySummary(productID, date)).Error; err != nil {
		return nil, err
	}
	// a concurrent writer may have won the insert
	return r.findLocked(db, productID, date)
}

func (r *GormSummaryRepository) findLocked(db *gorm.DB, productID uuid.UUID, date time.Time) (*analytics.DailySummary, error) {
	var summary analytics.DailySummary
	if err := lockForUpdate(db).Where("product_id = ? AND date = ?", productID, date).First(&summary).Error; err != nil {
		return nil, translateError(err)
	}
	return &summary, nil
}

// Save updates a summary
func (r *GormSummaryRepository) Save(ctx context.Context, summary *analytics.DailySummary) error {
	return r.db.WithContext(ctx).Save(summary).Error
}

// ListByProduct finds a product's summaries on or after since, newest first
func (r *GormSummaryRepository) ListByProduct(ctx context.Context, productID uuid.UUID, since time.Time) ([]analytics.DailySummary, error) {
	var summaries []analytics.DailySummary
	if err := r.db.WithContext(ctx).
		Where("product_id = ? AND date >= ?", productID, analytics.Day(since)).
		Order("date DESC").
		Find(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

// ListSince finds every summary on or after since grouped by product
func (r *GormSummaryRepository) ListSince(ctx context.Context, since time.Time) (map[uuid.UUID][]analytics.DailySummary, error) {
	var summaries []analytics.DailySummary
	if err := r.db.WithContext(ctx).
		Where("date >= ?", analytics.Day(since)).
		Order("product_id, date DESC").
		Find(&summaries).Error; err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID][]analytics.DailySummary)
	for _, s := range summaries {
		out[s.ProductID] = append(out[s.ProductID], s)
	}
	return out, nil
}

// Ensure GormSummaryRepository implements SummaryRepository
var _ analytics.SummaryRepository = (*GormSummaryRepository)(nil)
