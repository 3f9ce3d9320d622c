package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventRepository stores raw analytics events
type EventRepository interface {
	SaveBatch(ctx context.Context, events []*Event) error
	CountByProduct(ctx context.Context, productID uuid.UUID, since time.Time) (map[EventType]int64, error)
}

// SessionRepository persists browsing sessions
type SessionRepository interface {
	// FindBySessionID returns shared.ErrNotFound when the session is unknown
	FindBySessionID(ctx context.Context, sessionID string) (*Session, error)
	// FindOrCreate stores candidate unless its session key exists and returns the stored row
	FindOrCreate(ctx context.Context, candidate *Session) (*Session, error)
	Save(ctx context.Context, session *Session) error
}

// SummaryRepository persists daily product summaries
type SummaryRepository interface {
	// FindOrCreate returns the row for (productID, day), inserting an empty one if needed
	FindOrCreate(ctx context.Context, productID uuid.UUID, day time.Time) (*DailySummary, error)
	Save(ctx context.Context, summary *DailySummary) error
	// ListByProduct returns the product's rows on or after since, newest first
	ListByProduct(ctx context.Context, productID uuid.UUID, since time.Time) ([]DailySummary, error)
	// ListSince returns all rows on or after since grouped by product
	ListSince(ctx context.Context, since time.Time) (map[uuid.UUID][]DailySummary, error)
}

// RankingRepository persists ranking records
type RankingRepository interface {
	// FindByProductID returns shared.ErrNotFound when the product has no record
	FindByProductID(ctx context.Context, productID uuid.UUID) (*Ranking, error)
	// FindOrCreate returns the product's record, inserting a neutral one if needed
	FindOrCreate(ctx context.Context, productID uuid.UUID) (*Ranking, error)
	Save(ctx context.Context, ranking *Ranking) error
	// ForEachBatch walks every record in batches ordered by id
	ForEachBatch(ctx context.Context, size int, fn func(rankings []Ranking) error) error
	// CreateMissing inserts records for products that have none and returns how many were created
	CreateMissing(ctx context.Context) (int64, error)
	// StockStatus returns in_stock for the given products
	StockStatus(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]bool, error)
	// SyncPopularity copies a score into products.popularity_score
	SyncPopularity(ctx context.Context, productID uuid.UUID, score float64) error
}
